// Package appctx provides the application context that holds all runtime dependencies.
package appctx

import (
	"video-proxy-go/pkg/config"
	"video-proxy-go/pkg/logging"
	"video-proxy-go/pkg/services"
)

// Version is reported by /api/info and the version command.
const Version = "1.0.0"

// Context holds all application runtime dependencies.
// Pass this single struct to components instead of individual parameters.
type Context struct {
	Config       *config.Config
	Log          *logging.Logger
	MediaService *services.MediaService
}

// New creates a new application context.
func New(cfg *config.Config, log *logging.Logger) *Context {
	return &Context{
		Config: cfg,
		Log:    log,
	}
}

// WithMediaService sets the media service.
func (c *Context) WithMediaService(ms *services.MediaService) *Context {
	c.MediaService = ms
	return c
}
