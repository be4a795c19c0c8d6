// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mshv/go-note-keeper/internal/logger"
	"github.com/mshv/go-note-keeper/internal/utils"
	"github.com/mshv/go-note-keeper/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error listing notes")
		http.Error(w, "error listing notes", statusFromError(err))
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid note id")
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, noteID, userID)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("error getting note")
		http.Error(w, "note not found", statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.NoteService.CreateNote(ctx, models.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		log.Err(err).Msg("error creating note")
		http.Error(w, "error creating note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NoteResponse{
		Message: "Note created successfully",
		Note:    created,
	}, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid note id")
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	var req models.NoteRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.NoteService.UpdateNote(ctx, models.Note{
		NoteID:  noteID,
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("error updating note")
		http.Error(w, "error updating note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NoteResponse{
		Message: "Note updated successfully",
		Note:    updated,
	}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid note id")
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	if err = h.services.NoteService.DeleteNote(ctx, noteID, userID); err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("error deleting note")
		http.Error(w, "note not found", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Note deleted successfully"}, http.StatusOK)
}

// noteIDFromURL parses the {id} chi URL parameter as a positive int64.
func noteIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
