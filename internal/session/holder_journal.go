package session

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/adapter"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// CreateEntry adds an entry for the signed-in user.
func (h *Holder) CreateEntry(ctx context.Context, draft models.JournalEntryDraft) models.Result[models.JournalEntry] {
	userID, err := h.currentUser()
	if err != nil {
		return models.Fail[models.JournalEntry](err)
	}
	entry, err := h.journals.Create(ctx, userID, draft)
	return models.NewResult(entry, err)
}

// GetEntry returns an entry of the signed-in user.
func (h *Holder) GetEntry(ctx context.Context, entryID string) models.Result[models.JournalEntry] {
	entry, err := h.ownedEntry(ctx, entryID)
	if err != nil {
		return models.Fail[models.JournalEntry](err)
	}
	return models.Ok(entry)
}

// UpdateEntry changes an entry of the signed-in user.
func (h *Holder) UpdateEntry(ctx context.Context, entryID string, update models.JournalEntryUpdate) models.Result[models.JournalEntry] {
	if _, err := h.ownedEntry(ctx, entryID); err != nil {
		return models.Fail[models.JournalEntry](err)
	}
	entry, err := h.journals.Update(ctx, entryID, update)
	return models.NewResult(entry, err)
}

// DeleteEntry removes an entry of the signed-in user.
func (h *Holder) DeleteEntry(ctx context.Context, entryID string) models.Result[struct{}] {
	if _, err := h.ownedEntry(ctx, entryID); err != nil {
		return models.Fail[struct{}](err)
	}
	return models.NewResult(struct{}{}, h.journals.Delete(ctx, entryID))
}

// ListEntries returns the entries of the signed-in user, newest first.
func (h *Holder) ListEntries(ctx context.Context) models.Result[[]models.JournalEntry] {
	userID, err := h.currentUser()
	if err != nil {
		return models.Fail[[]models.JournalEntry](err)
	}
	entries, err := h.journals.ListByUser(ctx, userID)
	return models.NewResult(entries, err)
}

// SearchEntries returns the entries of the signed-in user whose title
// matches term.
func (h *Holder) SearchEntries(ctx context.Context, term string) models.Result[[]models.JournalEntry] {
	userID, err := h.currentUser()
	if err != nil {
		return models.Fail[[]models.JournalEntry](err)
	}
	entries, err := h.journals.SearchByTitle(ctx, userID, term)
	return models.NewResult(entries, err)
}

// EntriesByMood returns the entries of the signed-in user tagged with mood.
func (h *Holder) EntriesByMood(ctx context.Context, mood models.Mood) models.Result[[]models.JournalEntry] {
	userID, err := h.currentUser()
	if err != nil {
		return models.Fail[[]models.JournalEntry](err)
	}
	entries, err := h.journals.ListByMood(ctx, userID, mood)
	return models.NewResult(entries, err)
}

// ownedEntry loads entryID and checks it belongs to the signed-in user.
func (h *Holder) ownedEntry(ctx context.Context, entryID string) (models.JournalEntry, error) {
	userID, err := h.currentUser()
	if err != nil {
		return models.JournalEntry{}, err
	}

	entry, err := h.journals.GetByID(ctx, entryID)
	if err != nil {
		return models.JournalEntry{}, err
	}
	if entry.UserID != userID {
		h.logger.Warn().Str("func", "*Holder.ownedEntry").Str("entry_id", entryID).Str("user_id", userID).Msg("access to foreign entry refused")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrNotOwner, adapter.ErrForbidden)
	}
	return entry, nil
}
