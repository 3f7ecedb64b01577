// Package handler contains the HTTP layer: request decoding, response
// encoding and the single mapping from domain errors to status codes.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/notes-backend/internal/apperror"
)

// Every endpoint answers in one of two envelopes, the shape the client
// already parses:
//
//	success: {"status":"success","response":<payload>}
//	failure: {"status":"error","message":"<human-readable>"}

type successEnvelope struct {
	Status   string `json:"status"`
	Response any    `json:"response"`
}

type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	// Headers and status must go out before the body; after the first
	// Write they are frozen.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// writeSuccess wraps data in the success envelope with a 200. Every success
// path responds 200 — the client keys off the envelope, not the code.
func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, successEnvelope{
		Status:   "success",
		Response: data,
	})
}

// writeError is the only place domain errors become HTTP status codes.
//
// UserExists and InvalidCredentials both map to 403 — that is the wire
// contract the client expects for "email taken" and "bad login". Anything
// not carrying an AppError is an internal failure and answers with a
// generic 500; raw error text never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrUserExists),
			errors.Is(err, apperror.ErrInvalidCredentials):
			status = http.StatusForbidden
		}

		writeJSON(w, status, errorEnvelope{
			Status:  "error",
			Message: appErr.Message,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorEnvelope{
		Status:  "error",
		Message: "an internal error occurred",
	})
}

// decodeBody decodes a JSON request body into dst, answering 400 itself on
// failure. Returns false if the handler should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return false
	}
	return true
}
