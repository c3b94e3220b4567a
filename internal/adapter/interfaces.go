// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the remote collaborators of the journal keeper:
// a schemaless document store, an object store for profile pictures and an
// identity service for accounts and sessions.
//
// Three backends implement the contracts:
//   - Appwrite over REST ([NewAppwriteBackend]);
//   - self-hosted: MongoDB documents, Cloudinary or GCS objects, PostgreSQL
//     accounts and Redis sessions ([NewMongoDocumentStore],
//     [NewCloudinaryObjectStore], [NewGCSObjectStore], [NewSelfHostedIdentity]);
//   - in-process memory ([NewMemoryBackend]).
//
// Every backend maps its failures to the sentinel errors of errors.go so the
// service layer can use [errors.Is] without knowing the transport (e.g.
// [ErrNotFound] for a missing document, [ErrUnauthorized] for a guest).
package adapter

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-journal-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DocumentStore keeps flat documents grouped in collections.
type DocumentStore interface {
	// Get returns the document stored under id. Returns [ErrNotFound]
	// (wrapped) when it does not exist.
	Get(ctx context.Context, collection, id string) (models.Document, error)

	// Create writes a new document under id and returns it as stored.
	// Returns [ErrConflict] (wrapped) when id is taken.
	Create(ctx context.Context, collection, id string, fields models.Fields) (models.Document, error)

	// Update merges fields into the existing document and returns the
	// result. Returns [ErrNotFound] (wrapped) when it does not exist.
	Update(ctx context.Context, collection, id string, fields models.Fields) (models.Document, error)

	// Delete removes the document. Returns [ErrNotFound] (wrapped) when it
	// does not exist.
	Delete(ctx context.Context, collection, id string) error

	// List returns the documents matching every query. Ordering queries are
	// applied in the order given.
	List(ctx context.Context, collection string, queries ...Query) ([]models.Document, error)
}

// ObjectStore keeps binary files grouped in buckets.
type ObjectStore interface {
	// Create uploads file under fileID.
	Create(ctx context.Context, bucket, fileID string, file models.File) (models.StoredFile, error)

	// Delete removes the file. Returns [ErrNotFound] (wrapped) when it does
	// not exist.
	Delete(ctx context.Context, bucket, fileID string) error

	// ViewURL returns the public URL of the file. It is deterministic and
	// performs no I/O.
	ViewURL(bucket, fileID string) string
}

// IdentityService manages accounts and the session of the current client.
type IdentityService interface {
	// Current returns the identity owning the active session. Returns
	// [ErrUnauthorized] (wrapped) when there is none.
	Current(ctx context.Context) (models.Identity, error)

	// CreateAccount registers a new account. It does not start a session.
	CreateAccount(ctx context.Context, email, password, name string) (models.Identity, error)

	// CreateSession signs in with email and password and makes the new
	// session the active one.
	CreateSession(ctx context.Context, email, password string) (models.Session, error)

	// DeleteAllSessions signs the current identity out everywhere and drops
	// the active session.
	DeleteAllSessions(ctx context.Context) error

	// SetSecret restores a previously issued session secret.
	SetSecret(secret string)

	// Secret returns the active session secret, or "" when signed out.
	Secret() string
}

// Backend bundles the three collaborators of one backend kind together with
// whatever must be released on shutdown.
type Backend struct {
	Documents DocumentStore
	Objects   ObjectStore
	Identity  IdentityService

	closers []func(context.Context) error
}

// NewBackend assembles a [Backend] from its parts.
func NewBackend(documents DocumentStore, objects ObjectStore, identity IdentityService, closers ...func(context.Context) error) *Backend {
	return &Backend{Documents: documents, Objects: objects, Identity: identity, closers: closers}
}

// OnClose registers fn to run on [Backend.Close].
func (b *Backend) OnClose(fn func(context.Context) error) {
	b.closers = append(b.closers, fn)
}

// Close releases the backend resources in reverse registration order and
// joins their errors.
func (b *Backend) Close(ctx context.Context) error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}
