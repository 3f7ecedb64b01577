package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sakif/notes-backend/internal/apperror"
	"github.com/sakif/notes-backend/internal/model"
	"github.com/sakif/notes-backend/internal/repository"
)

// DefaultNoteColor is assigned when a note is created without a color.
// The light blue the client renders for untinted notes.
const DefaultNoteColor = "#E3F2FD"

// NoteService handles note CRUD for the notes collection.
//
// Mutation and deletion are keyed on the note ID alone — there is no
// ownership check, because without session tokens there is no authenticated
// subject to check against. The owner link is set at creation and never
// revalidated.
type NoteService struct {
	notes  repository.NoteRepository
	logger *slog.Logger
}

// NewNoteService creates a NoteService.
func NewNoteService(notes repository.NoteRepository, logger *slog.Logger) *NoteService {
	return &NoteService{
		notes:  notes,
		logger: logger,
	}
}

// Add creates a note for ownerID and returns the full created document.
//
// The creation timestamp is set here, server-side, as epoch milliseconds.
// An absent or empty color falls back to DefaultNoteColor, so color is
// always non-empty after creation.
func (s *NoteService) Add(ctx context.Context, ownerID, title, description, color string) (*model.Note, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, apperror.ValidationFailed("userId", "owner user ID is required")
	}

	if color == "" {
		color = DefaultNoteColor
	}

	note := &model.Note{
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Color:       color,
		CreateAt:    time.Now().UnixMilli(),
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	s.logger.Info("note created",
		slog.String("noteID", note.ID),
		slog.String("ownerID", ownerID),
	)

	return note, nil
}

// ListByOwner returns every note owned by ownerID, in store-native order.
func (s *NoteService) ListByOwner(ctx context.Context, ownerID string) ([]model.Note, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, apperror.ValidationFailed("uid", "owner user ID is required")
	}

	notes, err := s.notes.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}

// Update replaces the four editable fields (title, description, color,
// createAt) on the note matching noteID and returns the updated document.
//
// This is a full-set replace, not a patch: callers send every editable
// field on each update, and whatever they send is what gets stored —
// including createAt, which the client may overwrite. Returns NotFound if
// the id matches nothing.
func (s *NoteService) Update(ctx context.Context, noteID, title, description, color string, createAt int64) (*model.Note, error) {
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return nil, apperror.ValidationFailed("id", "note ID is required")
	}

	note := &model.Note{
		ID:          noteID,
		Title:       title,
		Description: description,
		Color:       color,
		CreateAt:    createAt,
	}
	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}

	// Re-read to return the canonical document — Update doesn't know the
	// owner link, and the response should carry the whole note.
	updated, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("re-reading updated note %s: %w", noteID, err)
	}

	s.logger.Info("note updated", slog.String("noteID", noteID))

	return updated, nil
}

// Delete removes the note matching noteID. Returns NotFound if the id
// matches nothing — the original backend reported success for a no-op
// delete; a miss is now explicit.
func (s *NoteService) Delete(ctx context.Context, noteID string) error {
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return apperror.ValidationFailed("id", "note ID is required")
	}

	if err := s.notes.Delete(ctx, noteID); err != nil {
		return err
	}

	s.logger.Info("note deleted", slog.String("noteID", noteID))
	return nil
}
