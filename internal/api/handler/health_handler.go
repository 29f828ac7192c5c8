package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"todo_api/internal/common"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health reports liveness plus a database ping.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			common.RespondWithJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unhealthy"})
			return
		}
	}
	common.RespondWithJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
