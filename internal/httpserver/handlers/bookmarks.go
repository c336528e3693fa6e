package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/klemart/markd/internal/auth"
	"github.com/klemart/markd/internal/bookmarks"
	"github.com/klemart/markd/internal/httpserver/deps"
)

type createBookmarkRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type editBookmarkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

// bookmarkID parses the {id} route parameter. Returns ok=false after writing
// a 400 when the parameter is not a number.
func bookmarkID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bookmark id")
		return 0, false
	}
	return id, true
}

func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := auth.RequirePrincipal(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		list, err := d.Bookmarks.ListForOwner(r.Context(), p.ID)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GetBookmark looks the bookmark up by id only. Unlike edit/delete, reads
// are not scoped to the caller.
func GetBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := auth.RequirePrincipal(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		id, ok := bookmarkID(w, r)
		if !ok {
			return
		}

		bm, err := d.Bookmarks.GetByID(r.Context(), p.ID, id)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		// A miss is not an error: respond 200 with a JSON null body.
		writeJSON(w, http.StatusOK, bm)
	}
}

func CreateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := auth.RequirePrincipal(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req createBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Title) == "" {
			writeError(w, http.StatusBadRequest, "title is required")
			return
		}
		if strings.TrimSpace(req.Link) == "" {
			writeError(w, http.StatusBadRequest, "link is required")
			return
		}

		created, err := d.Bookmarks.Create(r.Context(), p.ID, bookmarks.CreateInput{
			Title:       req.Title,
			Description: req.Description,
			Link:        req.Link,
		})
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func EditBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := auth.RequirePrincipal(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		id, ok := bookmarkID(w, r)
		if !ok {
			return
		}

		var req editBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		updated, err := d.Bookmarks.EditByID(r.Context(), p.ID, id, bookmarks.EditInput{
			Title:       req.Title,
			Description: req.Description,
			Link:        req.Link,
		})
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := auth.RequirePrincipal(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		id, ok := bookmarkID(w, r)
		if !ok {
			return
		}

		if err := d.Bookmarks.DeleteByID(r.Context(), p.ID, id); err != nil {
			writeDomainError(w, d, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
