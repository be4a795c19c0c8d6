// SPDX-License-Identifier: Apache-2.0

package store

import (
	"github.com/mshv/go-note-keeper/internal/logger"
)

// Storages aggregates all repositories backed by a single database handle.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		NoteRepository: NewNoteRepository(db, logger),
	}
}
