// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mshv/go-note-keeper/internal/logger"
	"github.com/mshv/go-note-keeper/internal/store"
	"github.com/mshv/go-note-keeper/models"
)

// noteService is the concrete implementation of NoteService.
// It applies input rules (required title, tag normalization) and delegates
// all persistence to the NoteRepository.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given NoteRepository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// ListNotes returns all notes owned by userID with their tags.
func (s *noteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

// GetNote returns a single owned note or store.ErrNoteNotFound.
func (s *noteService) GetNote(ctx context.Context, noteID, userID int64) (models.Note, error) {
	note, err := s.noteRepository.GetNote(ctx, noteID, userID)
	if err != nil {
		return models.Note{}, fmt.Errorf("getting note failed: %w", err)
	}

	return note, nil
}

// CreateNote validates and persists a new note with its tag set.
//
// Returns ErrInvalidDataProvided if the title is empty after trimming.
func (s *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	note.Title = strings.TrimSpace(note.Title)
	if note.Title == "" {
		log.Error().Int64("user_id", note.UserID).Msg("note title is required")
		return models.Note{}, ErrInvalidDataProvided
	}
	note.Tags = normalizeTags(note.Tags)

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", note.UserID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateNote validates and overwrites an owned note, replacing its tag set
// wholesale.
func (s *noteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	note.Title = strings.TrimSpace(note.Title)
	if note.Title == "" {
		log.Error().Int64("note_id", note.NoteID).Msg("note title is required")
		return models.Note{}, ErrInvalidDataProvided
	}
	note.Tags = normalizeTags(note.Tags)

	updated, err := s.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("note_id", note.NoteID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteNote removes an owned note. Tag rows persist even when no note
// references them anymore.
func (s *noteService) DeleteNote(ctx context.Context, noteID, userID int64) error {
	if err := s.noteRepository.DeleteNote(ctx, noteID, userID); err != nil {
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

// normalizeTags trims every name, drops empties, and removes duplicates
// while preserving first occurrence. Matching is case-sensitive and exact.
func normalizeTags(tagNames []string) []string {
	normalized := make([]string, 0, len(tagNames))
	seen := make(map[string]struct{}, len(tagNames))

	for _, name := range tagNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		normalized = append(normalized, name)
	}

	return normalized
}
