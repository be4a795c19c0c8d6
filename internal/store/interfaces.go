// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/mshv/go-note-keeper/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the canonical database
	// representation with server-assigned fields populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks up a user by their unique username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// NoteRepository is the data-access contract for notes and their tag sets.
//
// Every method is owner-scoped: mutations and reads match on both note ID
// and user ID, so a caller can never observe or modify another user's notes.
type NoteRepository interface {
	// CreateNote persists a new note together with its tag set in a single
	// transaction. Missing tag rows are created, existing ones are reused.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetNote returns the note with the given ID owned by userID, including
	// its tags, or ErrNoteNotFound.
	GetNote(ctx context.Context, noteID, userID int64) (models.Note, error)

	// ListNotes returns all notes owned by userID with their tags.
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// UpdateNote overwrites title and content and replaces the tag set
	// wholesale in a single transaction. Returns ErrNoteNotFound if the note
	// does not exist or is owned by a different user.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)

	// DeleteNote removes the note and its tag associations. Tag rows
	// themselves persist. Returns ErrNoteNotFound under the same ownership
	// condition as UpdateNote.
	DeleteNote(ctx context.Context, noteID, userID int64) error
}
