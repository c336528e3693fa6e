package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/klemart/markd/internal/httpserver/deps"
	"github.com/klemart/markd/internal/httpserver/handlers"
	"github.com/klemart/markd/internal/httpserver/mw"
)

func init() { Register(registerUsers) }

func registerUsers(r chi.Router, d deps.Deps) {
	sub := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger), mw.Auth(d.JWTSecret, d.Logger))
	sub.Get("/users/me", handlers.Me(d))
	sub.Patch("/users", handlers.EditUser(d))
}
