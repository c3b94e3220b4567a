// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PreferencesToFields flattens p into the three scalar document fields.
func PreferencesToFields(p Preferences) Fields {
	return Fields{
		FieldTheme:         string(p.Theme),
		FieldNotifications: p.Notifications,
		FieldPrivacy:       string(p.Privacy),
	}
}

// PreferencesFromDocument rebuilds the nested preferences from the flat
// fields of doc. Missing or unknown values fall back to their defaults.
func PreferencesFromDocument(doc Document) Preferences {
	prefs := DefaultPreferences()

	if theme := Theme(doc.String(FieldTheme)); theme.Valid() {
		prefs.Theme = theme
	}
	if notifications, ok := doc.Bool(FieldNotifications); ok {
		prefs.Notifications = notifications
	}
	if privacy := Privacy(doc.String(FieldPrivacy)); privacy.Valid() {
		prefs.Privacy = privacy
	}

	return prefs
}

// ProfileToDocument builds the complete flat field set of a new profile
// document from draft. Both timestamps are set to now.
func ProfileToDocument(userID string, draft ProfileDraft, now time.Time) Fields {
	prefs := DefaultPreferences()
	if draft.Preferences != nil {
		prefs = *draft.Preferences
	}

	stamp := FormatTimestamp(now)
	fields := Fields{
		FieldUserID:               userID,
		FieldName:                 draft.Name,
		FieldEmail:                draft.Email,
		FieldBio:                  draft.Bio,
		FieldDateOfBirth:          draft.DateOfBirth,
		FieldProfilePicture:       draft.ProfilePicture,
		FieldProfilePictureFileID: draft.ProfilePictureFileID,
		FieldCreatedAt:            stamp,
		FieldUpdatedAt:            stamp,
	}
	for k, v := range PreferencesToFields(prefs) {
		fields[k] = v
	}

	return fields
}

// ProfileFromDocument reconstructs a [Profile] from a flat profile document.
func ProfileFromDocument(doc Document) Profile {
	userID := doc.String(FieldUserID)
	if userID == "" {
		userID = doc.ID
	}

	return Profile{
		UserID:               userID,
		Name:                 doc.String(FieldName),
		Email:                doc.String(FieldEmail),
		Bio:                  doc.String(FieldBio),
		DateOfBirth:          doc.String(FieldDateOfBirth),
		ProfilePicture:       doc.String(FieldProfilePicture),
		ProfilePictureFileID: doc.String(FieldProfilePictureFileID),
		Preferences:          PreferencesFromDocument(doc),
		CreatedAt:            ParseTimestamp(doc.String(FieldCreatedAt)),
		UpdatedAt:            ParseTimestamp(doc.String(FieldUpdatedAt)),
	}
}

// ProfileUpdateToFields builds the partial field set written by a profile
// update. Preferences are flattened and never stored as a nested object;
// updatedAt is always refreshed.
func ProfileUpdateToFields(u ProfileUpdate, now time.Time) Fields {
	fields := Fields{FieldUpdatedAt: FormatTimestamp(now)}

	if u.Name != nil {
		fields[FieldName] = *u.Name
	}
	if u.Email != nil {
		fields[FieldEmail] = *u.Email
	}
	if u.Bio != nil {
		fields[FieldBio] = *u.Bio
	}
	if u.DateOfBirth != nil {
		fields[FieldDateOfBirth] = *u.DateOfBirth
	}
	if u.ProfilePicture != nil {
		fields[FieldProfilePicture] = *u.ProfilePicture
	}
	if u.ProfilePictureFileID != nil {
		fields[FieldProfilePictureFileID] = *u.ProfilePictureFileID
	}
	if u.Preferences != nil {
		for k, v := range PreferencesToFields(*u.Preferences) {
			fields[k] = v
		}
	}

	return fields
}
