// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the journal keeper client from its configuration and
// holds the human-readable messages shown for failed operations.
package app

import (
	"errors"

	"github.com/MKhiriev/go-journal-keeper/internal/adapter"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
)

const (
	// MsgInvalidDataProvided is shown when input fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is shown when sign-in is refused.
	MsgInvalidLoginPassword = "invalid email/password"

	// MsgNotSignedIn is shown for user-scoped commands without a session.
	MsgNotSignedIn = "you are not signed in"

	// MsgAccessDenied is shown when an entry belongs to another user.
	MsgAccessDenied = "access denied"

	// MsgEmailAlreadyExists is shown when sign-up hits a taken email.
	MsgEmailAlreadyExists = "an account with this email already exists"

	// MsgDataNotFound is shown when an entry or profile does not exist.
	MsgDataNotFound = "data not found"

	// MsgSignedOutLocally is shown when the remote sessions could not be
	// revoked but the local sign-out went through.
	MsgSignedOutLocally = "signed out on this device, other sessions may still be active"

	// MsgBackendUnavailable is shown for transport and unexpected remote
	// failures.
	MsgBackendUnavailable = "backend unavailable, try again later"

	// MsgInternalError is shown for anything else.
	MsgInternalError = "internal error"
)

var messages = []struct {
	target error
	msg    string
}{
	// order matters: the most specific sentinel comes first
	{session.ErrRemoteSignOut, MsgSignedOutLocally},
	{session.ErrNotAuthenticated, MsgNotSignedIn},
	{session.ErrNotOwner, MsgAccessDenied},
	{service.ErrValidation, MsgInvalidDataProvided},
	{service.ErrProfileNotFound, MsgDataNotFound},
	{service.ErrEntryNotFound, MsgDataNotFound},
	{adapter.ErrUnauthorized, MsgInvalidLoginPassword},
	{adapter.ErrForbidden, MsgAccessDenied},
	{adapter.ErrConflict, MsgEmailAlreadyExists},
	{adapter.ErrNotFound, MsgDataNotFound},
	{adapter.ErrBadRequest, MsgInvalidDataProvided},
	{adapter.ErrRemote, MsgBackendUnavailable},
	{adapter.ErrBadGateway, MsgBackendUnavailable},
}

// Message returns the user-facing message for err, or "" for nil.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}
	return MsgInternalError
}
