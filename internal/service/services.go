// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/mshv/go-note-keeper/internal/config"
	"github.com/mshv/go-note-keeper/internal/logger"
	"github.com/mshv/go-note-keeper/internal/store"
)

type Services struct {
	AuthService AuthService
	NoteService NoteService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		NoteService: NewNoteService(storages.NoteRepository, logger),
	}
}
