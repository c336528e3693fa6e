package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/klemart/markd/internal/domain"
	"github.com/klemart/markd/internal/httpserver/deps"
	"github.com/klemart/markd/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps service errors onto HTTP statuses. Authorization
// failures and their not-found twins are one 403; anything unclassified is a
// store fault and surfaces as 500 with no retry.
func writeDomainError(w http.ResponseWriter, d deps.Deps, err error) {
	switch {
	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrBadCredentials):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		d.Logger.Error("request failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
