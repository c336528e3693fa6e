package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/klemart/markd/internal/auth"
	"github.com/klemart/markd/internal/httpserver/deps"
	"github.com/klemart/markd/internal/users"
)

type editUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func Me(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := auth.RequirePrincipal(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		u, err := d.Users.Me(r.Context(), p.ID)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

func EditUser(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := auth.RequirePrincipal(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req editUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Email != nil && !strings.Contains(*req.Email, "@") {
			writeError(w, http.StatusBadRequest, "email is invalid")
			return
		}

		u, err := d.Users.Edit(r.Context(), p.ID, users.EditInput{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}
