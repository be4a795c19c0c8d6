package models

import "time"

// Note is a user-owned text note with a free-form tag set.
//
// Tags are plain names: the persistence layer maps them to shared tag rows
// through the note_tags association table, but nothing above the store layer
// needs to know tag identifiers.
type Note struct {
	// NoteID is the server-assigned identifier of the note.
	NoteID int64 `json:"id"`

	// UserID references the owning user. Internal only; ownership is
	// always derived from the bearer token, never from the request body.
	UserID int64 `json:"-"`

	// Title is the note title. Required on create and update.
	Title string `json:"title"`

	// Content is the note body.
	Content string `json:"content"`

	// Tags is the full tag set of the note. On create and update the set
	// is replaced wholesale with exactly these names.
	Tags []string `json:"tags"`

	// CreatedAt is set once when the note is first persisted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every successful mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
