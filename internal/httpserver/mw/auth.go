package mw

import (
	"net/http"

	"github.com/klemart/markd/internal/auth"
	"github.com/klemart/markd/internal/logger"
)

// Auth validates the Bearer JWT on each request and injects the resulting
// principal into the request context. Requests without a valid token get 401.
func Auth(secret string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := auth.ParseBearer(r.Header.Get("Authorization"), secret)
			if err != nil {
				log.Debug("rejected unauthenticated request",
					logger.String("path", r.URL.Path),
					logger.Error(err))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}
