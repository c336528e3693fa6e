package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/klemart/markd/internal/httpserver/deps"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *credentialsRequest) validate() string {
	c.Email = strings.TrimSpace(c.Email)
	if c.Email == "" {
		return "email is required"
	}
	if !strings.Contains(c.Email, "@") {
		return "email is invalid"
	}
	if c.Password == "" {
		return "password is required"
	}
	return ""
}

func Signup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		token, err := d.Auth.Signup(r.Context(), req.Email, req.Password)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusCreated, tokenResponse{AccessToken: token})
	}
}

func Signin(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		token, err := d.Auth.Signin(r.Context(), req.Email, req.Password)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token})
	}
}
