package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var Health = "GET /healthz"

type healthHandler struct {
	logs    *zap.SugaredLogger
	db      Pinger
	timeout time.Duration
}

func NewHealthHandler(logger *zap.SugaredLogger, db Pinger) *healthHandler {
	return &healthHandler{
		logs:    logger,
		db:      db,
		timeout: 2 * time.Second,
	}
}

// HandleHealth reports whether the database still answers.
func (h *healthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")
	if err := h.db.Ping(ctx); err != nil {
		h.logs.Errorw("health check failed", "error", err, "request_id", requestID(r))
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"unavailable"}`))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
