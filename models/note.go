// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	// TitleMaxRunes is the number of content characters kept in a note title.
	TitleMaxRunes = 50

	// TitleEllipsis is appended to a title whose content was truncated.
	TitleEllipsis = "..."

	// TimestampLayout is the ISO-8601 layout used for note timestamps on the
	// wire. Fixed millisecond precision in UTC keeps string order equal to
	// chronological order, which the store relies on for orderDesc.
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

// Note attribute names as stored in the remote collection.
const (
	NoteAttrTitle      = "title"
	NoteAttrContent    = "content"
	NoteAttrUserID     = "userId"
	NoteAttrCreatedAt  = "createdAt"
	NoteAttrUpdatedAt  = "updatedAt"
	NoteAttrIsArchived = "isArchived"
)

// Note is the local shape of a user-authored text item.
type Note struct {
	// ID is the store identifier of the note. Immutable after creation.
	ID string `json:"id"`

	// Content is the free-form note text, the only user-editable field.
	Content string `json:"content"`

	// CreatedAt is set once when the note is created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is set at creation and refreshed on every edit.
	UpdatedAt time.Time `json:"updated_at"`
}

// Title returns the title derived from the current content.
func (n Note) Title() string {
	return NoteTitle(n.Content)
}

// NoteDocument is the wire shape of a note in the remote collection.
//
// It carries the store-only fields (Title, UserID, IsArchived) that the local
// [Note] omits. Use [NoteDocument.ToNote] to cross the boundary.
type NoteDocument struct {
	ID         string `json:"$id,omitempty"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	UserID     string `json:"userId"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
	IsArchived bool   `json:"isArchived"`
}

// NoteUpdate is the partial document sent when a note is edited. createdAt,
// userId and isArchived are deliberately absent so the store keeps them.
type NoteUpdate struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updatedAt"`
}

// NewNoteDocument builds the document persisted for a new note owned by
// userID. Both timestamps are set to now.
func NewNoteDocument(userID, content string, now time.Time) NoteDocument {
	ts := FormatTimestamp(now)
	return NoteDocument{
		Title:      NoteTitle(content),
		Content:    content,
		UserID:     userID,
		CreatedAt:  ts,
		UpdatedAt:  ts,
		IsArchived: false,
	}
}

// NewNoteUpdate builds the partial document for replacing a note's content.
func NewNoteUpdate(content string, now time.Time) NoteUpdate {
	return NoteUpdate{
		Title:     NoteTitle(content),
		Content:   content,
		UpdatedAt: FormatTimestamp(now),
	}
}

// ToNote maps the wire document to the local note shape, dropping title,
// userId and isArchived.
func (d NoteDocument) ToNote() (Note, error) {
	createdAt, err := ParseTimestamp(d.CreatedAt)
	if err != nil {
		return Note{}, fmt.Errorf("note %q createdAt: %w", d.ID, err)
	}
	updatedAt, err := ParseTimestamp(d.UpdatedAt)
	if err != nil {
		return Note{}, fmt.Errorf("note %q updatedAt: %w", d.ID, err)
	}

	return Note{
		ID:        d.ID,
		Content:   d.Content,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// NoteTitle returns content truncated to [TitleMaxRunes] characters, with
// [TitleEllipsis] appended if and only if content is longer than that.
func NoteTitle(content string) string {
	if utf8.RuneCountInString(content) <= TitleMaxRunes {
		return content
	}

	runes := []rune(content)
	return string(runes[:TitleMaxRunes]) + TitleEllipsis
}

// FormatTimestamp renders t in [TimestampLayout].
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses an ISO-8601 timestamp. Any RFC 3339 value is
// accepted, not only [TimestampLayout].
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
