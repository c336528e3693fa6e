package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/klemart/markd/internal/httpserver/deps"
	"github.com/klemart/markd/internal/httpserver/handlers"
	"github.com/klemart/markd/internal/httpserver/mw"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	sub := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger), mw.Auth(d.JWTSecret, d.Logger))
	sub.Get("/bookmarks", handlers.ListBookmarks(d))
	sub.Get("/bookmarks/{id}", handlers.GetBookmark(d))
	sub.Post("/bookmarks", handlers.CreateBookmark(d))
	sub.Patch("/bookmarks/{id}", handlers.EditBookmark(d))
	sub.Delete("/bookmarks/{id}", handlers.DeleteBookmark(d))
}
