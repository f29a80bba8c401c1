// Package app provides the main application setup and dependency injection.
package app

import (
	"video-proxy-go/pkg/appctx"
	"video-proxy-go/pkg/config"
	"video-proxy-go/pkg/extractors"
	"video-proxy-go/pkg/fetcher"
	"video-proxy-go/pkg/flaresolverr"
	"video-proxy-go/pkg/handlers/api"
	"video-proxy-go/pkg/handlers/streams"
	"video-proxy-go/pkg/httpclient"
	"video-proxy-go/pkg/logging"
	"video-proxy-go/pkg/registry"
	"video-proxy-go/pkg/server"
	"video-proxy-go/pkg/services"
)

// App is the main application container.
type App struct {
	Ctx    *appctx.Context
	Server *server.Server
}

// New creates and initializes the application.
func New(cfg *config.Config) (*App, error) {
	// Initialize logger
	log := logging.New(cfg.LogLevel, cfg.LogJSON, nil)
	log.Debug("initializing video proxy", "port", cfg.Port, "log_level", cfg.LogLevel)

	// Create application context
	ctx := appctx.New(cfg, log)

	// Create HTTP client
	httpClient := httpclient.New(cfg, log)

	// Initialize extractor registry
	extractorReg := registry.NewExtractorRegistry()
	registerExtractors(extractorReg, log)

	// Page fetcher, optionally backed by FlareSolverr
	pageFetcher := fetcher.New(httpClient, log)
	if cfg.FlareSolverrURL != "" {
		pageFetcher.WithFallback(flaresolverr.NewClient(cfg.FlareSolverrURL, cfg.FlareSolverrTimeout, log))
		log.Info("FlareSolverr fallback enabled", "url", cfg.FlareSolverrURL)
	}

	relay := streams.NewRelay(httpClient, log)

	// Create media service
	mediaService := services.NewMediaService(cfg, log, pageFetcher, relay, extractorReg)
	ctx.WithMediaService(mediaService)

	// Create HTTP server
	srv := server.New(cfg, log)

	// Create API handlers
	handlers := api.NewHandlers(ctx)
	handlers.RegisterRoutes(srv.Router())

	return &App{
		Ctx:    ctx,
		Server: srv,
	}, nil
}

// Run starts the application.
func (a *App) Run() error {
	a.Ctx.Log.Info("starting video proxy server", "port", a.Ctx.Config.Port)
	return a.Server.Start()
}

// registerExtractors registers all platform extractors.
// Add new extractors here by:
// 1. Creating a new extractor in pkg/extractors/
// 2. Registering it below
func registerExtractors(reg *registry.ExtractorRegistry, log *logging.Logger) {
	reg.Register(extractors.NewFacebookExtractor())
	reg.Register(extractors.NewInstagramExtractor())
	reg.Register(extractors.NewTikTokExtractor())
	reg.Register(extractors.NewTwitterExtractor())

	log.Info("registered extractors", "platforms", reg.Platforms())
}
