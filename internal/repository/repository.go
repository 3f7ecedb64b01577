// Package repository declares the storage interfaces consumed by the service
// layer. Services depend on these interfaces, never on the sqlite package —
// tests inject in-memory mocks, and the storage backend can change without
// touching business logic.
package repository

import (
	"context"

	"github.com/sakif/notes-backend/internal/model"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts the user and fills in ID, CreatedAt and UpdatedAt.
	// Returns apperror.ErrUserExists if the email is already registered
	// (the UNIQUE index is the authoritative check, not the caller's
	// pre-read).
	Create(ctx context.Context, user *model.User) error

	// GetByID returns the user or apperror.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// GetByEmail returns the user or apperror.ErrNotFound. The caller is
	// expected to pass an already-normalized email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// UpdateUsername changes only the username field. Returns
	// apperror.ErrNotFound if no user matched the id.
	UpdateUsername(ctx context.Context, id, username string) error
}

// NoteRepository persists notes.
type NoteRepository interface {
	// Create inserts the note and fills in its ID. The caller supplies
	// every other field, defaults already applied.
	Create(ctx context.Context, note *model.Note) error

	// GetByID returns the note or apperror.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Note, error)

	// ListByOwner returns every note whose userId matches ownerID, in
	// store-native order. An owner with no notes gets an empty slice,
	// not nil.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Note, error)

	// Update replaces title, description, color and createAt on the note
	// matching note.ID. Returns apperror.ErrNotFound if nothing matched.
	Update(ctx context.Context, note *model.Note) error

	// Delete removes the note. Returns apperror.ErrNotFound if nothing
	// matched.
	Delete(ctx context.Context, id string) error
}
