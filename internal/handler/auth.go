package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/formbot/internal/apperror"
	"github.com/sakif/formbot/internal/auth"
	"github.com/sakif/formbot/internal/service"
)

// AuthHandler serves signup, login, and the authenticated username lookup.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   authSvc,
		logger: logger,
	}
}

// HandleSignup registers a new account.
//
// HTTP: POST /signup
// BODY: {"username":"alice","email":"a@x.com","password":"pw1"}
//
// Responds 201 with a bearer token on success. A duplicate email answers
// 400 (not 409) — the signup form treats every rejection as a field
// error, and that contract predates this server.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, err := h.auth.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   "validation_error",
				Message: "email already exists",
			})
			return
		}
		h.logger.Error("signup failed", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, TokenResponse{Token: token})
}

// HandleLogin authenticates an existing account.
//
// HTTP: POST /login
// BODY: {"email":"a@x.com","password":"pw1"}
//
// Responds 200 with a fresh bearer token. Unknown email and wrong
// password both answer 400, with their distinct messages.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}

// HandleUsername returns the authenticated user's username.
//
// HTTP: GET /username (protected)
//
// The middleware has already validated the token; the userID is in the
// request context.
func (h *AuthHandler) HandleUsername(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("valid authentication required"))
		return
	}

	username, err := h.auth.Username(r.Context(), userID)
	if err != nil {
		h.logger.Error("username lookup failed",
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"username": username})
}
