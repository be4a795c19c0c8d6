// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/mshv/go-note-keeper/models"
)

// AuthService owns user registration, credential verification, and the JWT
// token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account with a hashed password.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the credential pair and returns the stored user.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed bearer token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// Authenticate validates a raw token string and resolves the acting
	// user. Any validation failure, including an unknown subject, yields an
	// error that the transport layer maps to 401.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// NoteService owns note CRUD business rules on top of the note repository.
type NoteService interface {
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	GetNote(ctx context.Context, noteID, userID int64) (models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, noteID, userID int64) error
}
