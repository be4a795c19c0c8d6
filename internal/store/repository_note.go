// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mshv/go-note-keeper/internal/logger"
	"github.com/mshv/go-note-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
//
// Create and update run the note write, the tag upserts, and the association
// rewrite inside one transaction, so a mid-sequence failure never leaves a
// note with a partially applied tag set.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note together with its tag set.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error starting transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var saved models.Note
	row := tx.QueryRowContext(ctx, createNote, note.UserID, note.Title, note.Content)
	if err = row.Scan(&saved.NoteID, &saved.UserID, &saved.Title, &saved.Content, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: note insert failed")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if saved.Tags, err = r.replaceTags(ctx, tx, saved.NoteID, note.Tags); err != nil {
		return models.Note{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*noteRepository.CreateNote").Msg("error committing transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return saved, nil
}

// GetNote returns the note with the given ID owned by userID, including its
// tags.
func (r *noteRepository) GetNote(ctx context.Context, noteID, userID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var found models.Note
	row := r.db.QueryRowContext(ctx, getNote, noteID, userID)
	if err := row.Scan(&found.NoteID, &found.UserID, &found.Title, &found.Content, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error: note lookup failed")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	tags, err := r.noteTags(ctx, r.db.DB, noteID)
	if err != nil {
		return models.Note{}, err
	}
	found.Tags = tags

	return found, nil
}

// ListNotes returns all notes owned by userID with their tags attached.
// Tags for the whole result set are fetched in one batched query.
func (r *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := listNotesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error: notes query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err = rows.Scan(&note.NoteID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		note.Tags = make([]string, 0)
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(notes) == 0 {
		return notes, nil
	}

	if err = r.attachTags(ctx, notes); err != nil {
		return nil, err
	}

	return notes, nil
}

// UpdateNote overwrites title and content and replaces the tag set.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error starting transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var updated models.Note
	row := tx.QueryRowContext(ctx, updateNote, note.Title, note.Content, note.NoteID, note.UserID)
	if err = row.Scan(&updated.NoteID, &updated.UserID, &updated.Title, &updated.Content, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: note update failed")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if updated.Tags, err = r.replaceTags(ctx, tx, updated.NoteID, note.Tags); err != nil {
		return models.Note{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*noteRepository.UpdateNote").Msg("error committing transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return updated, nil
}

// DeleteNote removes the note; its tag associations go with it through the
// ON DELETE CASCADE on note_tags. Tag rows persist.
func (r *noteRepository) DeleteNote(ctx context.Context, noteID, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNote, noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: note delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// replaceTags rewrites the association set of noteID to exactly tagNames
// within the given transaction: drop all current links, upsert each tag row
// by name, link the resolved IDs. Returns the tag set as read back from the
// database (sorted by name).
func (r *noteRepository) replaceTags(ctx context.Context, tx *sql.Tx, noteID int64, tagNames []string) ([]string, error) {
	log := logger.FromContext(ctx)

	if _, err := tx.ExecContext(ctx, unlinkNoteTags, noteID); err != nil {
		log.Err(err).Str("func", "*noteRepository.replaceTags").Msg("error: unlink note tags failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, name := range tagNames {
		var tagID int64
		if err := tx.QueryRowContext(ctx, upsertTag, name).Scan(&tagID); err != nil {
			log.Err(err).Str("func", "*noteRepository.replaceTags").Str("tag", name).Msg("error: tag upsert failed")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if _, err := tx.ExecContext(ctx, linkNoteTag, noteID, tagID); err != nil {
			log.Err(err).Str("func", "*noteRepository.replaceTags").Str("tag", name).Msg("error: link note tag failed")
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return r.noteTags(ctx, tx, noteID)
}

// queryer abstracts *sql.DB and *sql.Tx for read helpers that are used both
// inside and outside transactions.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// noteTags returns the tag names of a single note, sorted by name.
func (r *noteRepository) noteTags(ctx context.Context, q queryer, noteID int64) ([]string, error) {
	rows, err := q.QueryContext(ctx, getNoteTags, noteID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tags = append(tags, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

// attachTags fetches the tags of every note in notes with one batched query
// and fills each note's Tags slice in place.
func (r *noteRepository) attachTags(ctx context.Context, notes []models.Note) error {
	noteIDs := make([]int64, 0, len(notes))
	byID := make(map[int64]*models.Note, len(notes))
	for i := range notes {
		noteIDs = append(noteIDs, notes[i].NoteID)
		byID[notes[i].NoteID] = &notes[i]
	}

	query, args, err := listNoteTagsQuery(noteIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var noteID int64
		var name string
		if err = rows.Scan(&noteID, &name); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if note, ok := byID[noteID]; ok {
			note.Tags = append(note.Tags, name)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}
