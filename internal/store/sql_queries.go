// SPDX-License-Identifier: Apache-2.0

package store

import "github.com/Masterminds/squirrel"

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	createNote = `INSERT INTO notes (user_id, title, content)
    VALUES ($1, $2, $3)
    RETURNING note_id, user_id, title, content, created_at, updated_at;`

	getNote = `SELECT note_id, user_id, title, content, created_at, updated_at
    FROM notes
    WHERE note_id = $1 AND user_id = $2;`

	updateNote = `UPDATE notes
    SET title = $1, content = $2, updated_at = now()
    WHERE note_id = $3 AND user_id = $4
    RETURNING note_id, user_id, title, content, created_at, updated_at;`

	deleteNote = `DELETE FROM notes
    WHERE note_id = $1 AND user_id = $2;`

	// upsertTag reuses an existing tag row on name collision. The no-op
	// update makes RETURNING yield the tag_id in both branches and keeps
	// concurrent creators of the same name race-free.
	upsertTag = `INSERT INTO tags (name)
    VALUES ($1)
    ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
    RETURNING tag_id;`

	linkNoteTag = `INSERT INTO note_tags (note_id, tag_id)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING;`

	unlinkNoteTags = `DELETE FROM note_tags
    WHERE note_id = $1;`

	getNoteTags = `SELECT t.name
    FROM note_tags nt
    JOIN tags t ON t.tag_id = nt.tag_id
    WHERE nt.note_id = $1
    ORDER BY t.name;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// positional placeholders. Used for the dynamic listing queries.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// listNotesQuery builds the owner-scoped note listing query.
func listNotesQuery(userID int64) (string, []any, error) {
	return psql.
		Select("note_id", "user_id", "title", "content", "created_at", "updated_at").
		From("notes").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("note_id").
		ToSql()
}

// listNoteTagsQuery builds the batched tag lookup for a set of note IDs.
func listNoteTagsQuery(noteIDs []int64) (string, []any, error) {
	return psql.
		Select("nt.note_id", "t.name").
		From("note_tags nt").
		Join("tags t ON t.tag_id = nt.tag_id").
		Where(squirrel.Eq{"nt.note_id": noteIDs}).
		OrderBy("nt.note_id", "t.name").
		ToSql()
}
