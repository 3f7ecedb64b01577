package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/xid"

	"github.com/sakif/notes-backend/internal/apperror"
	"github.com/sakif/notes-backend/internal/model"
	"github.com/sakif/notes-backend/internal/repository"
)

// compile-time check that *NoteStore implements repository.NoteRepository
var _ repository.NoteRepository = (*NoteStore)(nil)

// NoteStore implements repository.NoteRepository on SQLite.
type NoteStore struct {
	conn *sql.DB
}

// Create inserts a new note, generating the ID in place. Defaults (color,
// createAt) are the service's job — this layer stores exactly what it gets.
func (s *NoteStore) Create(ctx context.Context, note *model.Note) error {
	note.ID = xid.New().String()

	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO notes (id, user_id, title, description, color, create_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		note.ID,
		note.UserID,
		note.Title,
		note.Description,
		note.Color,
		note.CreateAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting note: %w", err)
	}

	return nil
}

// GetByID retrieves a single note.
// Returns apperror.ErrNotFound if no note exists with that ID.
func (s *NoteStore) GetByID(ctx context.Context, id string) (*model.Note, error) {
	var n model.Note

	err := s.conn.QueryRowContext(ctx,
		`SELECT id, user_id, title, description, color, create_at
		 FROM notes WHERE id = ?`,
		id,
	).Scan(
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Description,
		&n.Color,
		&n.CreateAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("note", id)
		}
		return nil, fmt.Errorf("sqlite: getting note %s: %w", id, err)
	}

	return &n, nil
}

// ListByOwner returns every note belonging to ownerID. No ORDER BY: the wire
// contract leaves list order unspecified, so the store's native order stands.
func (s *NoteStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Note, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, user_id, title, description, color, create_at
		 FROM notes WHERE user_id = ?`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing notes for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	notes := []model.Note{}
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Description, &n.Color, &n.CreateAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning note row: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating notes: %w", err)
	}

	return notes, nil
}

// Update replaces the four editable fields on the note matching note.ID.
// The owner link and the id itself are immutable here.
func (s *NoteStore) Update(ctx context.Context, note *model.Note) error {
	result, err := s.conn.ExecContext(ctx,
		`UPDATE notes
		 SET title = ?, description = ?, color = ?, create_at = ?
		 WHERE id = ?`,
		note.Title,
		note.Description,
		note.Color,
		note.CreateAt,
		note.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating note %s: %w", note.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("note", note.ID)
	}

	return nil
}

// Delete removes a note by ID. Same RowsAffected pattern as Update — zero
// rows means the id matched nothing.
func (s *NoteStore) Delete(ctx context.Context, id string) error {
	result, err := s.conn.ExecContext(ctx,
		`DELETE FROM notes WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting note %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("note", id)
	}

	return nil
}
