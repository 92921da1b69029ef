package handler

import (
	"context"
	"net/http"
	"time"

	"videotube-server/internal/model/requestresponse"
)

type databasePinger interface {
	PingContext(ctx context.Context) error
}

type cachePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    databasePinger
	cache cachePinger
}

func NewHealthHandler(db databasePinger, cache cachePinger) *HealthHandler {
	return &HealthHandler{db, cache}
}

// Health godoc
// @Summary Проверка состояния
// @Tags Health
// @Produce json
// @Success 200 {object} requestresponse.HealthResponse
// @Failure 503 {object} requestresponse.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := requestresponse.HealthResponse{Status: "ok", Database: "ok", Redis: "ok"}
	statusCode := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		resp.Database = err.Error()
		resp.Status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}
	if err := h.cache.Ping(ctx); err != nil {
		resp.Redis = err.Error()
		resp.Status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, resp)
}
