package mw

import (
	"net/http"

	"github.com/klemart/markd/internal/logger"
	"github.com/klemart/markd/internal/utils"
)

// AllowOnlyCIDRS allows only specific IPs/CIDRs. If the list is empty, it does NOT filter (passthrough).
// trustProxy should be true when running behind a trusted reverse proxy/tunnel.
func AllowOnlyCIDRS(allowed []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	m := utils.NewIPMatcher(allowed)
	if m.IsEmpty() {
		log.Debug("AllowOnlyCIDRS: empty matcher, passthrough mode")
		return func(next http.Handler) http.Handler { return next }
	}

	log.Debugf("AllowOnlyCIDRS: initialized with %d rules, trustProxy=%v", len(allowed), trustProxy)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, trustProxy)
			if !m.Allow(ip) {
				log.Debugf("AllowOnlyCIDRS: IP %s REJECTED", ip)
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
