package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/klemart/markd/internal/httpserver/deps"
	"github.com/klemart/markd/internal/logger"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

// Readyz reports readiness. The service is ready when the database answers.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if d.DB != nil {
			if err := d.DB.PingContext(ctx); err != nil {
				d.Logger.Warn("readiness check failed", logger.Error(err))
				writeJSON(w, http.StatusServiceUnavailable, readyzResponse{Ready: false})
				return
			}
		}
		writeJSON(w, http.StatusOK, readyzResponse{Ready: true})
	}
}
