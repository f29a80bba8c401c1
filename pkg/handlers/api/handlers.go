// Package api provides HTTP handlers for the proxy API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"video-proxy-go/pkg/appctx"
	"video-proxy-go/pkg/logging"
	"video-proxy-go/pkg/services"
	"video-proxy-go/pkg/types"
)

const usage = `Social video proxy

  GET /api/fetch?url=<post url>     raw post HTML
  GET /api/extract?url=<post url>   media URLs as JSON
  GET /api/download?url=<media url> stream the media file (Range supported)
  GET /api/info                     server status

Supported: Facebook, Instagram, TikTok, Twitter/X (public posts only)
`

// Handlers contains all API handlers.
type Handlers struct {
	ctx *appctx.Context
	log *logging.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(ctx *appctx.Context) *Handlers {
	return &Handlers{
		ctx: ctx,
		log: ctx.Log.WithComponent("api"),
	}
}

// RegisterRoutes registers all API routes.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /api/info", h.handleAPIInfo)

	mux.HandleFunc("GET /api/fetch", h.handleFetch)
	mux.HandleFunc("GET /api/extract", h.handleExtract)
	mux.HandleFunc("GET /api/download", h.handleDownload)
}

// handleIndex serves the usage banner.
func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, usage)
}

// handleAPIInfo returns server status as JSON.
func (h *Handlers) handleAPIInfo(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "running",
		"version":   appctx.Version,
		"platforms": h.ctx.MediaService.Platforms(),
	})
}

// handleFetch returns the raw HTML of a post page.
func (h *Handlers) handleFetch(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" {
		h.writeError(w, http.StatusBadRequest, "No url query provided")
		return
	}

	html, err := h.ctx.MediaService.FetchRaw(r.Context(), target)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrInvalidURL):
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrUpstream):
		h.requestLog(r).WithURL(target).WithError(err).Warn("fetch failed")
		h.writeText(w, http.StatusBadGateway, "Upstream returned an error page or required login.")
		return
	default:
		h.requestLog(r).WithURL(target).WithError(err).Error("fetch failed")
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, html)
}

// extractResponse is the /api/extract success payload.
type extractResponse struct {
	OK bool `json:"ok"`
	*types.ExtractionResult
}

// handleExtract returns the media URLs found on a post page.
func (h *Handlers) handleExtract(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" {
		h.writeExtractError(w, http.StatusBadRequest, "No url query provided")
		return
	}

	result, err := h.ctx.MediaService.Extract(r.Context(), target)
	if err != nil {
		status, message := extractErrorStatus(err)
		if status >= http.StatusInternalServerError {
			h.requestLog(r).WithURL(target).WithError(err).Warn("extract failed", "status", status)
		}
		h.writeExtractError(w, status, message)
		return
	}

	h.writeJSON(w, http.StatusOK, extractResponse{OK: true, ExtractionResult: result})
}

// extractErrorStatus maps service errors to a status and client message.
func extractErrorStatus(err error) (int, string) {
	var hostErr *services.UnsupportedHostError
	switch {
	case errors.As(err, &hostErr):
		return http.StatusBadRequest, hostErr.Error()
	case errors.Is(err, services.ErrInvalidURL):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrNoMedia):
		return http.StatusNotFound, "No downloadable video found (public posts only)"
	case errors.Is(err, services.ErrUpstream):
		return http.StatusBadGateway, "Upstream error or login required"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// handleDownload relays a media file to the client.
func (h *Handlers) handleDownload(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" {
		h.writeText(w, http.StatusBadRequest, "Missing url")
		return
	}

	resp, err := h.ctx.MediaService.Download(r.Context(), target, r.Header.Get("Range"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidURL) {
			h.writeText(w, http.StatusBadRequest, "Invalid url")
			return
		}
		h.requestLog(r).WithURL(target).WithError(err).Error("download failed")
		h.writeText(w, http.StatusInternalServerError, "Download failed")
		return
	}

	h.writeStreamResponse(w, resp)
}

// Helper methods

// requestLog prefers the request-scoped logger set by the logging middleware.
func (h *Handlers) requestLog(r *http.Request) *logging.Logger {
	if l, ok := logging.Lookup(r.Context()); ok {
		return l.WithComponent("api")
	}
	return h.log
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *Handlers) writeExtractError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]interface{}{"ok": false, "error": message})
}

func (h *Handlers) writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, message)
}

func (h *Handlers) writeStreamResponse(w http.ResponseWriter, resp *types.StreamResponse) {
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}

	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}

	w.WriteHeader(resp.StatusCode)

	if resp.Body != nil {
		defer resp.Body.Close()
		if _, err := io.Copy(w, resp.Body); err != nil {
			h.log.Debug("stream copy ended", "error", err)
		}
	}
}
