package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/internal/utils"
)

// requireSession rejects requests with 401 while the holder has no signed-in
// identity, and otherwise stores the user id in the request context. The
// holder is the only source of the identity; requests carry no credentials of
// their own.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap := h.holder.Snapshot()
		if !snap.Authenticated() {
			logger.FromRequest(r).Debug().Str("state", string(snap.State)).Msg("request without session")
			writeError(w, r, session.ErrNotAuthenticated)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), snap.UserID())))
	})
}
