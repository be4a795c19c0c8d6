// SPDX-License-Identifier: Apache-2.0

package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const welcomeMessage = "Welcome! I keep your notes.\n" +
	"/create_note title;content;tag1,tag2 - create a new note\n" +
	"/get_notes - show all saved notes"

const unknownCommandMessage = "Unknown command. Use /create_note or /get_notes."

// errMalformedNotePayload is returned by parseNotePayload when the
// /create_note argument does not follow the title;content;tags format.
var errMalformedNotePayload = errors.New("expected format: title;content;tag1,tag2")

// dispatch routes a bot command to its handler and returns the reply text.
func (b *Bot) dispatch(ctx context.Context, command, arguments string) string {
	switch command {
	case "start":
		return welcomeMessage
	case "get_notes":
		return b.getNotes(ctx)
	case "create_note":
		return b.createNote(ctx, arguments)
	default:
		return unknownCommandMessage
	}
}

func (b *Bot) getNotes(ctx context.Context) string {
	notes, err := b.notes.ListNotes(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to list notes")
		return fmt.Sprintf("Failed to get notes: %v", err)
	}

	if len(notes) == 0 {
		return "No notes found."
	}

	lines := make([]string, 0, len(notes))
	for _, note := range notes {
		lines = append(lines, fmt.Sprintf("Title: %s\nContent: %s", note.Title, note.Content))
	}

	return strings.Join(lines, "\n")
}

func (b *Bot) createNote(ctx context.Context, arguments string) string {
	title, content, tags, err := parseNotePayload(arguments)
	if err != nil {
		return fmt.Sprintf("Failed to create note: %v", err)
	}

	note, err := b.notes.CreateNote(ctx, title, content, tags)
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to create note")
		return fmt.Sprintf("Failed to create note: %v", err)
	}

	return fmt.Sprintf("Note created: %s", note.Title)
}

// parseNotePayload splits the /create_note argument into title, content and
// tags. The payload must contain exactly three semicolon-separated parts;
// the tags part holds comma-separated names and may be empty.
func parseNotePayload(payload string) (title, content string, tags []string, err error) {
	parts := strings.Split(payload, ";")
	if len(parts) != 3 {
		return "", "", nil, errMalformedNotePayload
	}

	title = strings.TrimSpace(parts[0])
	content = strings.TrimSpace(parts[1])
	if title == "" {
		return "", "", nil, errMalformedNotePayload
	}

	for _, tag := range strings.Split(parts[2], ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	return title, content, tags, nil
}
