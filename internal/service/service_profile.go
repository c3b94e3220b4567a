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

type profileService struct {
	documents adapter.DocumentStore
	objects   adapter.ObjectStore

	collection string
	bucket     string

	normalizer PictureNormalizer
	validator  validators.Validator
	fileIDs    IDGenerator
	now        func() time.Time

	logger *logger.Logger
}

// NewProfileService constructs a [ProfileService] over the profiles
// collection and pictures bucket named in cfg. A nil normalizer uploads
// pictures unchanged.
func NewProfileService(documents adapter.DocumentStore, objects adapter.ObjectStore, cfg config.Adapter, normalizer PictureNormalizer, logger *logger.Logger) ProfileService {
	return &profileService{
		documents:  documents,
		objects:    objects,
		collection: cfg.ProfilesCollectionID,
		bucket:     cfg.PicturesBucketID,
		normalizer: normalizer,
		validator:  validators.NewJournalValidator(),
		fileIDs:    utils.NewFileIDGenerator(),
		now:        now,
		logger:     logger,
	}
}

func (s *profileService) Get(ctx context.Context, userID string) (models.Profile, error) {
	if userID == "" {
		return models.Profile{}, ErrNoUserID
	}

	doc, err := s.documents.Get(ctx, s.collection, userID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.Profile{}, fmt.Errorf("%w: %w", ErrProfileNotFound, err)
		}
		s.logger.Err(err).Str("func", "*profileService.Get").Str("user_id", userID).Msg("error getting profile")
		return models.Profile{}, err
	}

	return models.ProfileFromDocument(doc), nil
}

func (s *profileService) Create(ctx context.Context, userID string, draft models.ProfileDraft) (models.Profile, error) {
	if userID == "" {
		return models.Profile{}, ErrNoUserID
	}
	if draft.Preferences != nil {
		if err := s.validator.Validate(ctx, *draft.Preferences); err != nil {
			return models.Profile{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	doc, err := s.documents.Create(ctx, s.collection, userID, models.ProfileToDocument(userID, draft, s.now()))
	if err != nil {
		s.logger.Err(err).Str("func", "*profileService.Create").Str("user_id", userID).Msg("error creating profile")
		return models.Profile{}, err
	}

	return models.ProfileFromDocument(doc), nil
}

func (s *profileService) Update(ctx context.Context, userID string, update models.ProfileUpdate) (models.Profile, error) {
	if userID == "" {
		return models.Profile{}, ErrNoUserID
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	doc, err := s.documents.Update(ctx, s.collection, userID, models.ProfileUpdateToFields(update, s.now()))
	if err == nil {
		return models.ProfileFromDocument(doc), nil
	}

	if !errors.Is(err, adapter.ErrNotFound) {
		s.logger.Err(err).Str("func", "*profileService.Update").Str("user_id", userID).Msg("error updating profile")
		return models.Profile{}, err
	}

	// the profile was never created: build it from what we were given
	s.logger.Warn().Str("func", "*profileService.Update").Str("user_id", userID).Msg("profile missing on update, creating it")
	return s.Create(ctx, userID, update.Draft())
}

func (s *profileService) UpdatePicture(ctx context.Context, userID string, file models.File, oldFileID string) (models.Profile, error) {
	if userID == "" {
		return models.Profile{}, ErrNoUserID
	}

	if s.normalizer != nil {
		normalized, err := s.normalizer.Normalize(file)
		if err != nil {
			return models.Profile{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		file = normalized
	}

	fileID := s.fileIDs.Generate()
	if _, err := s.objects.Create(ctx, s.bucket, fileID, file); err != nil {
		s.logger.Err(err).Str("func", "*profileService.UpdatePicture").Str("user_id", userID).Msg("error uploading picture")
		return models.Profile{}, fmt.Errorf("error uploading picture: %w", err)
	}

	url := s.objects.ViewURL(s.bucket, fileID)
	profile, err := s.Update(ctx, userID, models.ProfileUpdate{
		ProfilePicture:       &url,
		ProfilePictureFileID: &fileID,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*profileService.UpdatePicture").Str("file_id", fileID).Msg("error linking picture, rolling back upload")
		if delErr := s.objects.Delete(ctx, s.bucket, fileID); delErr != nil {
			s.logger.Err(delErr).Str("func", "*profileService.UpdatePicture").Str("file_id", fileID).Msg("rollback failed, uploaded picture is orphaned")
		}
		return models.Profile{}, fmt.Errorf("error linking picture: %w", err)
	}

	if oldFileID != "" && oldFileID != fileID {
		s.deleteBestEffort(ctx, "*profileService.UpdatePicture", oldFileID)
	}

	return profile, nil
}

func (s *profileService) RemovePicture(ctx context.Context, userID, fileID string) (models.Profile, error) {
	if userID == "" {
		return models.Profile{}, ErrNoUserID
	}

	empty := ""
	profile, err := s.Update(ctx, userID, models.ProfileUpdate{
		ProfilePicture:       &empty,
		ProfilePictureFileID: &empty,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*profileService.RemovePicture").Str("user_id", userID).Msg("error unlinking picture")
		return models.Profile{}, fmt.Errorf("error unlinking picture: %w", err)
	}

	if fileID != "" {
		s.deleteBestEffort(ctx, "*profileService.RemovePicture", fileID)
	}

	return profile, nil
}

// deleteBestEffort removes a picture nothing points at any more. A failure
// leaves an orphaned object behind and is only logged.
func (s *profileService) deleteBestEffort(ctx context.Context, funcName, fileID string) {
	if err := s.objects.Delete(ctx, s.bucket, fileID); err != nil {
		s.logger.Warn().Err(err).Str("func", funcName).Str("file_id", fileID).Msg("could not delete unused picture")
	}
}
