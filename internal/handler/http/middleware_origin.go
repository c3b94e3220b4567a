package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
)

// withOriginCheck refuses requests whose Origin header names a site outside
// cfg.AllowedOrigins. Requests without an Origin come from non-browser
// clients and pass.
func (h *Handler) withOriginCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if !h.originAllowed(origin) {
			logger.FromRequest(r).Warn().Str("origin", origin).Msg("request from foreign origin refused")
			writeError(w, r, ErrForeignOrigin)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// originAllowed matches origin the way the CORS layer does: "*" allows any
// origin, and one "*" inside a pattern matches any run of characters.
func (h *Handler) originAllowed(origin string) bool {
	if origin == "" {
		return true
	}

	origin = strings.ToLower(origin)
	for _, allowed := range h.cfg.AllowedOrigins {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed == "*" || allowed == origin {
			return true
		}
		if prefix, suffix, ok := strings.Cut(allowed, "*"); ok &&
			len(origin) >= len(prefix)+len(suffix) &&
			strings.HasPrefix(origin, prefix) && strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	return false
}
