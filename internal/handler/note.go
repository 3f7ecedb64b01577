package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/notes-backend/internal/service"
)

// NoteHandler serves the /v1/notes endpoints.
type NoteHandler struct {
	notes  *service.NoteService
	logger *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(notes *service.NoteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{notes: notes, logger: logger}
}

type addNoteRequest struct {
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// HandleAdd creates a note.
//
// POST /v1/notes/addNotes
// body: {"userId":..., "title":..., "description":..., "color":...?}
//
// Color is optional; an absent or empty value gets the default. The response
// carries the full created note — id, owner, color and server-assigned
// createAt included — not a driver acknowledgment.
func (h *NoteHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req addNoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	note, err := h.notes.Add(r.Context(), req.UserID, req.Title, req.Description, req.Color)
	if err != nil {
		h.logError(r, "add note failed", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, note)
}

// HandleList returns every note owned by a user.
//
// GET /v1/notes/getNotes?uid=<owner id>
//
// An owner with no notes gets an empty array. Order is unspecified.
func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")

	notes, err := h.notes.ListByOwner(r.Context(), uid)
	if err != nil {
		h.logError(r, "list notes failed", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, notes)
}

type updateNoteRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	CreateAt    int64  `json:"createAt"`
}

// HandleUpdate replaces the editable fields of a note.
//
// PUT /v1/notes/updateNotes
// body: {"id":..., "title":..., "description":..., "color":..., "createAt":...}
//
// Full-set semantics: all four editable fields are replaced with whatever
// the body carries, zero values included. Callers send the complete set or
// clobber what they omit. 404 if the id matches nothing.
func (h *NoteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateNoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	note, err := h.notes.Update(r.Context(), req.ID, req.Title, req.Description, req.Color, req.CreateAt)
	if err != nil {
		h.logError(r, "update note failed", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, note)
}

type deleteNoteRequest struct {
	ID string `json:"id"`
}

// HandleDelete removes a note.
//
// DELETE /v1/notes/deleteNotes
// body: {"id":...}
//
// The id travels in the body (the client's existing contract — unusual for
// a DELETE, but Go's http server delivers DELETE bodies fine). Responds with
// the deleted id; 404 if it matched nothing.
func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var req deleteNoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.notes.Delete(r.Context(), req.ID); err != nil {
		h.logError(r, "delete note failed", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"id": req.ID})
}

func (h *NoteHandler) logError(r *http.Request, msg string, err error) {
	h.logger.Warn(msg,
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
}
