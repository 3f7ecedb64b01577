package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/notes-backend/internal/service"
)

// UserHandler serves the /v1/users endpoints.
//
// Handlers only decode, delegate and encode. Business rules live in the
// service; the endpoints here never touch the repository directly.
type UserHandler struct {
	users  *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleSignUp registers a new account.
//
// POST /v1/users/signup
// body: {"email":..., "username":..., "password":...}
//
// 200 with the sanitized user, 403 if the email is taken. The response user
// never carries a password field in any form.
func (h *UserHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.users.SignUp(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		h.logError(r, "sign-up failed", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin authenticates an email/password pair.
//
// POST /v1/users/login
//
// 200 with the sanitized user, 403 on any credential failure — the same
// message whether the email is unknown or the password is wrong.
func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.users.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logError(r, "login failed", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, user)
}

// HandleGetProfile returns a user by ID.
//
// GET /v1/users/getProfile?uid=<id>
//
// The id travels in the query string, not the path — the client's existing
// contract. 404 if no such user.
func (h *UserHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")

	user, err := h.users.GetProfile(r.Context(), uid)
	if err != nil {
		h.logError(r, "get profile failed", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, user)
}

type updateProfileRequest struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
}

// HandleUpdateProfile changes a user's username.
//
// PUT /v1/users/updateProfile
// body: {"uid":..., "username":...}
//
// 200 with the updated user (hash stripped like everywhere else), 404 if the
// id matches nothing.
func (h *UserHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), req.UID, req.Username)
	if err != nil {
		h.logError(r, "update profile failed", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, user)
}

// logError records a failed request at warn level. Expected client errors
// (bad credentials, missing records) are warnings, not errors — the error
// level is reserved for failures that page someone.
func (h *UserHandler) logError(r *http.Request, msg string, err error) {
	h.logger.Warn(msg,
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
}
