// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Mood is the emotional label attached to a journal entry.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodAngry   Mood = "angry"
	MoodExcited Mood = "excited"
	MoodCalm    Mood = "calm"
	MoodAnxious Mood = "anxious"
	MoodNeutral Mood = "neutral"
)

// DefaultMood is used when an entry is created without a mood.
const DefaultMood = MoodNeutral

// Moods lists every accepted mood in display order.
var Moods = []Mood{MoodHappy, MoodSad, MoodAngry, MoodExcited, MoodCalm, MoodAnxious, MoodNeutral}

// Valid reports whether m is one of [Moods].
func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

// OrDefault returns m, or [DefaultMood] when m is empty.
func (m Mood) OrDefault() Mood {
	if m == "" {
		return DefaultMood
	}
	return m
}

// JournalEntry is a single diary entry owned by a user.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	Tags      []string  `json:"tags"`
	IsPrivate bool      `json:"isPrivate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JournalEntryDraft is the user input for a new entry. Tags is the raw
// comma-separated string typed by the user.
type JournalEntryDraft struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Mood      Mood   `json:"mood,omitempty"`
	Tags      string `json:"tags,omitempty"`
	IsPrivate bool   `json:"isPrivate,omitempty"`
}

// JournalEntryUpdate is a partial change of an entry. Only non-nil fields
// are written.
type JournalEntryUpdate struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Mood      *Mood   `json:"mood,omitempty"`
	Tags      *string `json:"tags,omitempty"`
	IsPrivate *bool   `json:"isPrivate,omitempty"`
}

// ParseTags splits a comma-separated tag string, trims every tag and drops
// the empty ones. The result is never nil.
func ParseTags(raw string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JournalEntryToDocument builds the flat field set of a new entry.
func JournalEntryToDocument(userID string, draft JournalEntryDraft, now time.Time) Fields {
	stamp := FormatTimestamp(now)
	return Fields{
		FieldUserID:    userID,
		FieldTitle:     draft.Title,
		FieldContent:   draft.Content,
		FieldMood:      string(draft.Mood.OrDefault()),
		FieldTags:      ParseTags(draft.Tags),
		FieldIsPrivate: draft.IsPrivate,
		FieldCreatedAt: stamp,
		FieldUpdatedAt: stamp,
	}
}

// JournalEntryUpdateToFields builds the partial field set of an entry
// update. updatedAt is always refreshed.
func JournalEntryUpdateToFields(u JournalEntryUpdate, now time.Time) Fields {
	fields := Fields{FieldUpdatedAt: FormatTimestamp(now)}

	if u.Title != nil {
		fields[FieldTitle] = *u.Title
	}
	if u.Content != nil {
		fields[FieldContent] = *u.Content
	}
	if u.Mood != nil {
		fields[FieldMood] = string(u.Mood.OrDefault())
	}
	if u.Tags != nil {
		fields[FieldTags] = ParseTags(*u.Tags)
	}
	if u.IsPrivate != nil {
		fields[FieldIsPrivate] = *u.IsPrivate
	}

	return fields
}

// JournalEntryFromDocument reconstructs an entry from its document.
func JournalEntryFromDocument(doc Document) JournalEntry {
	isPrivate, _ := doc.Bool(FieldIsPrivate)

	return JournalEntry{
		ID:        doc.ID,
		UserID:    doc.String(FieldUserID),
		Title:     doc.String(FieldTitle),
		Content:   doc.String(FieldContent),
		Mood:      Mood(doc.String(FieldMood)).OrDefault(),
		Tags:      doc.Strings(FieldTags),
		IsPrivate: isPrivate,
		CreatedAt: ParseTimestamp(doc.String(FieldCreatedAt)),
		UpdatedAt: ParseTimestamp(doc.String(FieldUpdatedAt)),
	}
}
