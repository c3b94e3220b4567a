package session

import (
	"context"

	"github.com/MKhiriev/go-journal-keeper/models"
)

// UpdateProfile writes update to the profile of the signed-in user.
func (h *Holder) UpdateProfile(ctx context.Context, update models.ProfileUpdate) models.Result[models.Profile] {
	userID, err := h.currentUser()
	if err != nil {
		return models.Fail[models.Profile](err)
	}

	profile, err := h.profiles.Update(ctx, userID, update)
	if err != nil {
		return models.Fail[models.Profile](err)
	}

	h.storeProfile(userID, profile)
	return models.Ok(profile)
}

// UpdatePicture replaces the profile picture of the signed-in user.
func (h *Holder) UpdatePicture(ctx context.Context, file models.File) models.Result[models.Profile] {
	userID, err := h.currentUser()
	if err != nil {
		return models.Fail[models.Profile](err)
	}

	profile, err := h.profiles.UpdatePicture(ctx, userID, file, h.currentPictureID())
	if err != nil {
		return models.Fail[models.Profile](err)
	}

	h.storeProfile(userID, profile)
	return models.Ok(profile)
}

// RemovePicture removes the profile picture of the signed-in user. Without a
// picture it returns the profile unchanged.
func (h *Holder) RemovePicture(ctx context.Context) models.Result[models.Profile] {
	userID, err := h.currentUser()
	if err != nil {
		return models.Fail[models.Profile](err)
	}

	fileID := h.currentPictureID()
	if fileID == "" {
		if snap := h.Snapshot(); snap.Profile != nil {
			return models.Ok(*snap.Profile)
		}
	}

	profile, err := h.profiles.RemovePicture(ctx, userID, fileID)
	if err != nil {
		return models.Fail[models.Profile](err)
	}

	h.storeProfile(userID, profile)
	return models.Ok(profile)
}

func (h *Holder) currentPictureID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.profile == nil {
		return ""
	}
	return h.profile.ProfilePictureFileID
}
