package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-journal-keeper/models"
)

// JournalValidator checks journal entries and profile changes.
//
// Supported types:
//   - models.JournalEntryDraft / *models.JournalEntryDraft: title, content
//     and mood (empty mood is allowed and means neutral);
//   - models.JournalEntryUpdate / *models.JournalEntryUpdate: at least one
//     field, and every present field as for a draft;
//   - models.Preferences / *models.Preferences: theme and privacy within
//     their enumerations;
//   - models.ProfileUpdate / *models.ProfileUpdate: at least one field, and
//     preferences when present.
type JournalValidator struct{}

// NewJournalValidator returns a [JournalValidator] as a [Validator].
func NewJournalValidator() Validator {
	return &JournalValidator{}
}

func (v *JournalValidator) Validate(_ context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.JournalEntryDraft:
		return validateDraft(value)
	case *models.JournalEntryDraft:
		return validateDraft(*value)

	case models.JournalEntryUpdate:
		return validateEntryUpdate(value)
	case *models.JournalEntryUpdate:
		return validateEntryUpdate(*value)

	case models.Preferences:
		return validatePreferences(value)
	case *models.Preferences:
		return validatePreferences(*value)

	case models.ProfileUpdate:
		return validateProfileUpdate(value)
	case *models.ProfileUpdate:
		return validateProfileUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func validateDraft(d models.JournalEntryDraft) error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(d.Content) == "" {
		return ErrEmptyContent
	}
	if !d.Mood.OrDefault().Valid() {
		return ErrInvalidMood
	}
	return nil
}

func validateEntryUpdate(u models.JournalEntryUpdate) error {
	if u.Title == nil && u.Content == nil && u.Mood == nil && u.Tags == nil && u.IsPrivate == nil {
		return ErrNoFieldsToUpdate
	}
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return ErrEmptyTitle
	}
	if u.Content != nil && strings.TrimSpace(*u.Content) == "" {
		return ErrEmptyContent
	}
	if u.Mood != nil && !u.Mood.OrDefault().Valid() {
		return ErrInvalidMood
	}
	return nil
}

func validatePreferences(p models.Preferences) error {
	if !p.Theme.Valid() {
		return ErrInvalidTheme
	}
	if !p.Privacy.Valid() {
		return ErrInvalidPrivacy
	}
	return nil
}

func validateProfileUpdate(u models.ProfileUpdate) error {
	if u.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if u.Preferences != nil {
		return validatePreferences(*u.Preferences)
	}
	return nil
}
