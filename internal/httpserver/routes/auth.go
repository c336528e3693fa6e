package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/klemart/markd/internal/httpserver/deps"
	"github.com/klemart/markd/internal/httpserver/handlers"
	"github.com/klemart/markd/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	sub := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	sub.Post("/auth/signup", handlers.Signup(d))
	sub.Post("/auth/signin", handlers.Signin(d))
}
