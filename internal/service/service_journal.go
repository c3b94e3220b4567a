package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/adapter"
	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/utils"
	"github.com/MKhiriev/go-journal-keeper/internal/validators"
	"github.com/MKhiriev/go-journal-keeper/models"
)

type journalService struct {
	documents  adapter.DocumentStore
	collection string

	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewJournalService constructs a [JournalService] over the journals
// collection named in cfg.
func NewJournalService(documents adapter.DocumentStore, cfg config.Adapter, logger *logger.Logger) JournalService {
	return &journalService{
		documents:  documents,
		collection: cfg.JournalsCollectionID,
		validator:  validators.NewJournalValidator(),
		ids:        utils.NewUUIDGenerator(),
		now:        now,
		logger:     logger,
	}
}

func (s *journalService) Create(ctx context.Context, userID string, draft models.JournalEntryDraft) (models.JournalEntry, error) {
	if userID == "" {
		return models.JournalEntry{}, ErrNoUserID
	}
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	doc, err := s.documents.Create(ctx, s.collection, s.ids.Generate(), models.JournalEntryToDocument(userID, draft, s.now()))
	if err != nil {
		s.logger.Err(err).Str("func", "*journalService.Create").Str("user_id", userID).Msg("error creating journal entry")
		return models.JournalEntry{}, err
	}

	return models.JournalEntryFromDocument(doc), nil
}

func (s *journalService) Update(ctx context.Context, entryID string, update models.JournalEntryUpdate) (models.JournalEntry, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	doc, err := s.documents.Update(ctx, s.collection, entryID, models.JournalEntryUpdateToFields(update, s.now()))
	if err != nil {
		return models.JournalEntry{}, s.entryError(err, "*journalService.Update", entryID)
	}

	return models.JournalEntryFromDocument(doc), nil
}

func (s *journalService) Delete(ctx context.Context, entryID string) error {
	if err := s.documents.Delete(ctx, s.collection, entryID); err != nil {
		return s.entryError(err, "*journalService.Delete", entryID)
	}
	return nil
}

func (s *journalService) GetByID(ctx context.Context, entryID string) (models.JournalEntry, error) {
	doc, err := s.documents.Get(ctx, s.collection, entryID)
	if err != nil {
		return models.JournalEntry{}, s.entryError(err, "*journalService.GetByID", entryID)
	}
	return models.JournalEntryFromDocument(doc), nil
}

func (s *journalService) ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	return s.list(ctx, "*journalService.ListByUser", userID)
}

func (s *journalService) SearchByTitle(ctx context.Context, userID, term string) ([]models.JournalEntry, error) {
	return s.list(ctx, "*journalService.SearchByTitle", userID, adapter.QuerySearch(models.FieldTitle, term))
}

func (s *journalService) ListByMood(ctx context.Context, userID string, mood models.Mood) ([]models.JournalEntry, error) {
	if !mood.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidMood)
	}
	return s.list(ctx, "*journalService.ListByMood", userID, adapter.QueryEqual(models.FieldMood, string(mood)))
}

// list returns the entries of userID matching filters, newest first.
func (s *journalService) list(ctx context.Context, funcName, userID string, filters ...adapter.Query) ([]models.JournalEntry, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}

	queries := make([]adapter.Query, 0, len(filters)+2)
	queries = append(queries, adapter.QueryEqual(models.FieldUserID, userID))
	queries = append(queries, filters...)
	queries = append(queries, adapter.QueryOrderDesc(models.FieldCreatedAt))

	docs, err := s.documents.List(ctx, s.collection, queries...)
	if err != nil {
		s.logger.Err(err).Str("func", funcName).Str("user_id", userID).Msg("error listing journal entries")
		return nil, err
	}

	entries := make([]models.JournalEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, models.JournalEntryFromDocument(doc))
	}
	return entries, nil
}

func (s *journalService) entryError(err error, funcName, entryID string) error {
	if errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrEntryNotFound, err)
	}
	s.logger.Err(err).Str("func", funcName).Str("entry_id", entryID).Msg("journal entry call failed")
	return err
}
