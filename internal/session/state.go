// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the signed-in identity and its profile for one
// client and drives the Unknown → Checking → Authenticated | Anonymous state
// machine. The [Holder] is the single writer of that state; presentation code
// reads snapshots and triggers changes through the Holder operations, every
// one of which returns a [models.Result].
package session

import "github.com/MKhiriev/go-journal-keeper/models"

// State is a step of the session state machine.
type State string

const (
	StateUnknown       State = "unknown"
	StateChecking      State = "checking"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Snapshot is a copy of the holder state at one point in time.
type Snapshot struct {
	State   State            `json:"state"`
	User    *models.Identity `json:"user,omitempty"`
	Profile *models.Profile  `json:"profile,omitempty"`
}

// Authenticated reports whether the snapshot has a signed-in identity.
func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated && s.User != nil
}

// UserID returns the signed-in identity id, or "".
func (s Snapshot) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}
