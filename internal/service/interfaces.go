// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-journal-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ProfileService maps profiles between their nested and flat forms and keeps
// the profile picture and the profile document consistent.
type ProfileService interface {
	// Get returns the profile of userID. Returns [ErrProfileNotFound]
	// (wrapping adapter.ErrNotFound) when none exists.
	Get(ctx context.Context, userID string) (models.Profile, error)

	// Create writes a new profile keyed by userID.
	Create(ctx context.Context, userID string, draft models.ProfileDraft) (models.Profile, error)

	// Update writes the non-nil fields of update. A missing profile is
	// created from the supplied fields instead.
	Update(ctx context.Context, userID string, update models.ProfileUpdate) (models.Profile, error)

	// UpdatePicture uploads file, links it to the profile and then deletes
	// oldFileID when given. A failed link removes the upload again.
	UpdatePicture(ctx context.Context, userID string, file models.File, oldFileID string) (models.Profile, error)

	// RemovePicture unlinks the picture from the profile and then deletes
	// fileID.
	RemovePicture(ctx context.Context, userID, fileID string) (models.Profile, error)
}

// JournalService manages journal entries. Every method is a single remote
// call after validation.
type JournalService interface {
	Create(ctx context.Context, userID string, draft models.JournalEntryDraft) (models.JournalEntry, error)
	Update(ctx context.Context, entryID string, update models.JournalEntryUpdate) (models.JournalEntry, error)
	Delete(ctx context.Context, entryID string) error
	GetByID(ctx context.Context, entryID string) (models.JournalEntry, error)

	// ListByUser returns the entries of userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error)

	// SearchByTitle returns the entries of userID whose title matches term,
	// newest first.
	SearchByTitle(ctx context.Context, userID, term string) ([]models.JournalEntry, error)

	// ListByMood returns the entries of userID tagged with mood, newest first.
	ListByMood(ctx context.Context, userID string, mood models.Mood) ([]models.JournalEntry, error)
}

// PictureNormalizer prepares a picture before upload.
type PictureNormalizer interface {
	Normalize(file models.File) (models.File, error)
}

// IDGenerator produces fresh document or file keys.
type IDGenerator interface {
	Generate() string
}
