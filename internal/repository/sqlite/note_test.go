package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/notes-backend/internal/apperror"
	"github.com/sakif/notes-backend/internal/model"
)

func newTestNoteStore(t *testing.T) *NoteStore {
	t.Helper()
	return newTestDB(t).Notes()
}

func createTestNote(t *testing.T, s *NoteStore, ownerID, title string) *model.Note {
	t.Helper()
	note := &model.Note{
		UserID:      ownerID,
		Title:       title,
		Description: "some text",
		Color:       "#E3F2FD",
		CreateAt:    1700000000000,
	}
	if err := s.Create(context.Background(), note); err != nil {
		t.Fatalf("failed to create test note: %v", err)
	}
	return note
}

func TestNoteCreate(t *testing.T) {
	s := newTestNoteStore(t)

	note := &model.Note{
		UserID:      "owner1",
		Title:       "groceries",
		Description: "milk, eggs",
		Color:       "#FFCDD2",
		CreateAt:    1700000000000,
	}
	if err := s.Create(context.Background(), note); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if note.ID == "" {
		t.Error("Create() did not set note.ID")
	}

	got, err := s.GetByID(context.Background(), note.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Color != "#FFCDD2" {
		t.Errorf("Color = %q, want the exact value stored", got.Color)
	}
	if got.CreateAt != 1700000000000 {
		t.Errorf("CreateAt = %d, want 1700000000000", got.CreateAt)
	}
}

func TestNoteGetByID_NotFound(t *testing.T) {
	s := newTestNoteStore(t)

	_, err := s.GetByID(context.Background(), "nonexistent")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() = %v, want ErrNotFound", err)
	}
}

func TestNoteListByOwner(t *testing.T) {
	s := newTestNoteStore(t)
	createTestNote(t, s, "alice", "a1")
	createTestNote(t, s, "alice", "a2")
	createTestNote(t, s, "bob", "b1")

	notes, err := s.ListByOwner(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("ListByOwner() returned %d notes, want 2", len(notes))
	}
	for _, n := range notes {
		if n.UserID != "alice" {
			t.Errorf("ListByOwner() leaked a note owned by %q", n.UserID)
		}
	}
}

func TestNoteListByOwner_Empty(t *testing.T) {
	s := newTestNoteStore(t)

	notes, err := s.ListByOwner(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}
	// Empty slice, not nil — it encodes as [] rather than null.
	if notes == nil {
		t.Error("ListByOwner() returned nil, want an empty slice")
	}
	if len(notes) != 0 {
		t.Errorf("ListByOwner() returned %d notes, want 0", len(notes))
	}
}

func TestNoteUpdate(t *testing.T) {
	s := newTestNoteStore(t)
	created := createTestNote(t, s, "alice", "before")

	updated := &model.Note{
		ID:          created.ID,
		Title:       "after",
		Description: "new text",
		Color:       "#C8E6C9",
		CreateAt:    1800000000000,
	}
	if err := s.Update(context.Background(), updated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := s.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "after" || got.Description != "new text" || got.Color != "#C8E6C9" {
		t.Errorf("Update() did not replace fields: %+v", got)
	}
	if got.CreateAt != 1800000000000 {
		t.Errorf("CreateAt = %d, want the client-supplied 1800000000000", got.CreateAt)
	}
	// The owner link is immutable through Update.
	if got.UserID != "alice" {
		t.Errorf("UserID = %q, want %q", got.UserID, "alice")
	}
}

func TestNoteUpdate_NotFound(t *testing.T) {
	s := newTestNoteStore(t)

	err := s.Update(context.Background(), &model.Note{ID: "nonexistent"})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Update() = %v, want ErrNotFound", err)
	}
}

func TestNoteDelete(t *testing.T) {
	s := newTestNoteStore(t)
	created := createTestNote(t, s, "alice", "doomed")

	if err := s.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err := s.GetByID(context.Background(), created.ID)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() after delete = %v, want ErrNotFound", err)
	}

	notes, err := s.ListByOwner(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("deleted note still listed: %+v", notes)
	}
}

func TestNoteDelete_NotFound(t *testing.T) {
	s := newTestNoteStore(t)

	err := s.Delete(context.Background(), "nonexistent")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Delete() = %v, want ErrNotFound", err)
	}
}
