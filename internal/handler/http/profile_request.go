package http

import "github.com/MKhiriev/go-journal-keeper/models"

// profileUpdateRequest is the PATCH /api/profile body. Preferences is a
// patch: keys the client leaves out keep their current value.
type profileUpdateRequest struct {
	models.ProfileUpdate
	Preferences *models.PreferencesPatch `json:"preferences,omitempty"`
}

// toUpdate merges the preferences patch over current, or over the defaults
// when no profile is loaded.
func (req profileUpdateRequest) toUpdate(current *models.Profile) models.ProfileUpdate {
	update := req.ProfileUpdate
	update.Preferences = nil

	if req.Preferences != nil {
		base := models.DefaultPreferences()
		if current != nil {
			base = current.Preferences
		}
		prefs := req.Preferences.Apply(base)
		update.Preferences = &prefs
	}
	return update
}
