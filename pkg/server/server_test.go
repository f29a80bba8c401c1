package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"video-proxy-go/pkg/config"
	"video-proxy-go/pkg/logging"
)

func TestServer_Handler(t *testing.T) {
	srv := New(&config.Config{Port: 3000}, logging.New("error", false, io.Discard))
	srv.Router().HandleFunc("GET /boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	srv.Router().HandleFunc("GET /ok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	tests := []struct {
		path   string
		status int
	}{
		{"/ok", http.StatusOK},
		{"/boom", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Error("missing X-Request-ID")
			}
			if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
				t.Error("missing CORS header")
			}
		})
	}
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	srv := New(&config.Config{}, logging.New("error", false, io.Discard))
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() = %v", err)
	}
}
