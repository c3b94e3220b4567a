// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence used next to the remote backends:
// PostgreSQL accounts and Redis sessions of the self-hosted identity service,
// the MongoDB and GCS connection helpers, and the on-device SQLite cache of
// the session secret.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-journal-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists self-hosted identity accounts.
type AccountRepository interface {
	// Create inserts account and returns it with CreatedAt filled in.
	// Returns [ErrAccountAlreadyExists] when the email is taken.
	Create(ctx context.Context, account models.Account) (models.Account, error)

	// GetByEmail returns the account registered under email.
	// Returns [ErrAccountNotFound] when there is none.
	GetByEmail(ctx context.Context, email string) (models.Account, error)

	// GetByID returns the account with the given id.
	// Returns [ErrAccountNotFound] when there is none.
	GetByID(ctx context.Context, id string) (models.Account, error)
}

// SessionStore tracks the live sessions of self-hosted identities.
type SessionStore interface {
	// Save registers key as a session of userID for ttl.
	Save(ctx context.Context, userID, key string, ttl time.Duration) error

	// Get returns the user owning key. Returns [ErrSessionNotFound] when the
	// key is unknown or expired.
	Get(ctx context.Context, key string) (string, error)

	// DeleteAll drops every session of userID.
	DeleteAll(ctx context.Context, userID string) error
}

// LocalSessionCache keeps the session secret of this device between runs.
type LocalSessionCache interface {
	// Load returns the cached secret. Returns [ErrLocalSessionNotFound] when
	// nothing is cached.
	Load(ctx context.Context) (string, error)

	// Save replaces the cached secret.
	Save(ctx context.Context, secret string) error

	// Clear removes the cached secret. Clearing an empty cache is not an
	// error.
	Clear(ctx context.Context) error
}
