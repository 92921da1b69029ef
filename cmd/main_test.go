package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"videotube-server/internal/handler"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func (okPinger) Ping(context.Context) error { return nil }

func passThrough(next http.Handler) http.Handler { return next }

func TestSetupRoutes_HealthUnderBasePath(t *testing.T) {
	router := chi.NewRouter()
	setupRoutes(router, "/api/v1", handlers{
		auth:   &handler.AuthenticationHandler{},
		users:  &handler.UserHandler{},
		videos: &handler.VideoHandler{},
		health: handler.NewHealthHandler(okPinger{}, okPinger{}),
	}, passThrough, passThrough)

	tests := []struct {
		path   string
		status int
	}{
		{"/api/v1/healthz", http.StatusOK},
		{"/healthz", http.StatusNotFound},
		{"/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
