// SPDX-License-Identifier: Apache-2.0

// Package adapter implements the outbound HTTP client the bot uses to reach
// the notes API. It owns the service-account session: lazy login, bearer
// token storage, and one transparent re-login on token expiry.
package adapter

import (
	"context"

	"github.com/mshv/go-note-keeper/models"
)

// NotesAPI is the surface of the notes service the bot consumes.
// The adapter is a pure client: it carries no business logic beyond
// authentication plumbing.
type NotesAPI interface {
	// ListNotes fetches all notes visible to the service account.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote creates a note owned by the service account.
	CreateNote(ctx context.Context, title, content string, tags []string) (models.Note, error)
}
