package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-journal-keeper/models"
)

// listEntries returns the entries of the signed-in user. "search" filters by
// title, "mood" by mood; search wins when both are given.
func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	switch {
	case query.Has("search"):
		writeResult(w, r, h.holder.SearchEntries(ctx, query.Get("search")), http.StatusOK)
	case query.Has("mood"):
		writeResult(w, r, h.holder.EntriesByMood(ctx, models.Mood(query.Get("mood"))), http.StatusOK)
	default:
		writeResult(w, r, h.holder.ListEntries(ctx), http.StatusOK)
	}
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	var draft models.JournalEntryDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, h.holder.CreateEntry(r.Context(), draft), http.StatusCreated)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.holder.GetEntry(r.Context(), chi.URLParam(r, "entryID")), http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	var update models.JournalEntryUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, h.holder.UpdateEntry(r.Context(), chi.URLParam(r, "entryID"), update), http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.holder.DeleteEntry(r.Context(), chi.URLParam(r, "entryID")), http.StatusOK)
}
