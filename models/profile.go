// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Theme is the colour scheme preferred by the user.
type Theme string

// Privacy controls who may see the user's profile.
type Privacy string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	PrivacyPrivate Privacy = "private"
	PrivacyPublic  Privacy = "public"
)

// Default preference values applied whenever a stored field is missing.
const (
	DefaultTheme         = ThemeLight
	DefaultNotifications = true
	DefaultPrivacy       = PrivacyPrivate
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Valid reports whether p is one of the known privacy levels.
func (p Privacy) Valid() bool {
	return p == PrivacyPrivate || p == PrivacyPublic
}

// Preferences is the nested view of the three flat preference fields
// stored on a profile document.
type Preferences struct {
	Theme         Theme   `json:"theme"`
	Notifications bool    `json:"notifications"`
	Privacy       Privacy `json:"privacy"`
}

// DefaultPreferences returns the preferences a new profile starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         DefaultTheme,
		Notifications: DefaultNotifications,
		Privacy:       DefaultPrivacy,
	}
}

// PreferencesPatch is a partial preferences change as sent by a client.
// Missing fields keep their current value.
type PreferencesPatch struct {
	Theme         *Theme   `json:"theme,omitempty"`
	Notifications *bool    `json:"notifications,omitempty"`
	Privacy       *Privacy `json:"privacy,omitempty"`
}

// Apply returns current with every non-nil field of p written over it.
func (p PreferencesPatch) Apply(current Preferences) Preferences {
	if p.Theme != nil {
		current.Theme = *p.Theme
	}
	if p.Notifications != nil {
		current.Notifications = *p.Notifications
	}
	if p.Privacy != nil {
		current.Privacy = *p.Privacy
	}
	return current
}

// Profile is the user profile as presented to callers. One profile exists per
// identity and is keyed by the identity id.
type Profile struct {
	// UserID equals the identity id and is the document key.
	UserID string `json:"userId"`

	Name        string `json:"name"`
	Email       string `json:"email"`
	Bio         string `json:"bio"`
	DateOfBirth string `json:"dateOfBirth"`

	// ProfilePicture is the resolved view URL, empty when no picture is set.
	ProfilePicture string `json:"profilePicture"`

	// ProfilePictureFileID is the object-store key of the current picture.
	ProfilePictureFileID string `json:"profilePictureFileId"`

	Preferences Preferences `json:"preferences"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasPicture reports whether the profile currently points at a stored picture.
func (p Profile) HasPicture() bool {
	return p.ProfilePictureFileID != ""
}

// ProfileDraft carries the fields used to create a profile document.
// A nil Preferences means defaults.
type ProfileDraft struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Bio         string       `json:"bio,omitempty"`
	DateOfBirth string       `json:"dateOfBirth,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`

	ProfilePicture       string `json:"profilePicture,omitempty"`
	ProfilePictureFileID string `json:"profilePictureFileId,omitempty"`
}

// ProfileUpdate is a partial profile change. Only non-nil fields are written.
type ProfileUpdate struct {
	Name        *string      `json:"name,omitempty"`
	Email       *string      `json:"email,omitempty"`
	Bio         *string      `json:"bio,omitempty"`
	DateOfBirth *string      `json:"dateOfBirth,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`

	ProfilePicture       *string `json:"profilePicture,omitempty"`
	ProfilePictureFileID *string `json:"profilePictureFileId,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Bio == nil && u.DateOfBirth == nil &&
		u.Preferences == nil && u.ProfilePicture == nil && u.ProfilePictureFileID == nil
}

// Draft converts the update into a creation draft. Missing strings become
// empty, which is how a profile created through the repair path looks.
func (u ProfileUpdate) Draft() ProfileDraft {
	return ProfileDraft{
		Name:                 deref(u.Name),
		Email:                deref(u.Email),
		Bio:                  deref(u.Bio),
		DateOfBirth:          deref(u.DateOfBirth),
		Preferences:          u.Preferences,
		ProfilePicture:       deref(u.ProfilePicture),
		ProfilePictureFileID: deref(u.ProfilePictureFileID),
	}
}

// Apply returns p with every non-nil field of u written over it.
func (u ProfileUpdate) Apply(p Profile) Profile {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.DateOfBirth != nil {
		p.DateOfBirth = *u.DateOfBirth
	}
	if u.Preferences != nil {
		p.Preferences = *u.Preferences
	}
	if u.ProfilePicture != nil {
		p.ProfilePicture = *u.ProfilePicture
	}
	if u.ProfilePictureFileID != nil {
		p.ProfilePictureFileID = *u.ProfilePictureFileID
	}
	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ptr returns a pointer to v. Handy for building partial updates.
func Ptr[T any](v T) *T {
	return &v
}
