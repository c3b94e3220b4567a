package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-journal-keeper/internal/adapter"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is matched top to bottom. Gateway and session sentinels come
// before the adapter ones they may wrap, so a sign-out failure stays a 502
// whatever remote class caused it.
var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrMissingPicture, http.StatusBadRequest},
	{ErrForeignOrigin, http.StatusForbidden},

	{session.ErrRemoteSignOut, http.StatusBadGateway},
	{session.ErrNotAuthenticated, http.StatusUnauthorized},
	{session.ErrNotOwner, http.StatusForbidden},

	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrNoUserID, http.StatusBadRequest},
	{service.ErrProfileNotFound, http.StatusNotFound},
	{service.ErrEntryNotFound, http.StatusNotFound},

	{adapter.ErrBadRequest, http.StatusBadRequest},
	{adapter.ErrUnauthorized, http.StatusUnauthorized},
	{adapter.ErrForbidden, http.StatusForbidden},
	{adapter.ErrNotFound, http.StatusNotFound},
	{adapter.ErrConflict, http.StatusConflict},
	{adapter.ErrBadGateway, http.StatusBadGateway},
	{adapter.ErrRemote, http.StatusBadGateway},
	{adapter.ErrInternalServerError, http.StatusInternalServerError},
}

// statusFromError maps err to the status of the first sentinel it wraps.
func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
