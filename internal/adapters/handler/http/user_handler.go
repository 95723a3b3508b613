package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/warriorcenter/cms-api/internal/core/domain"
	"github.com/warriorcenter/cms-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.service.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not create user.")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"newUser":       result.User,
		"emailResponse": result.EmailResponse,
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "Could not find a matching user account.")
		case errors.Is(err, domain.ErrUserNotApproved):
			respondError(w, http.StatusUnauthorized, "User account has not yet been approved.")
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, "Could not login. Please enter a valid password.")
		default:
			respondError(w, http.StatusInternalServerError, "Could not login.")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"token":     result.Token,
		"expiresIn": result.ExpiresIn,
		"userId":    result.UserID,
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *UserHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "Could not find a matching user account.")
		case errors.Is(err, domain.ErrNotAuthorized):
			respondError(w, http.StatusUnauthorized, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Could not update this user.")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"user":          result,
		"emailResponse": result.EmailResponse,
	})
}

type changePasswordRequest struct {
	Password string `json:"password"`
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "You must login to access this page.")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Password == "" {
		respondError(w, http.StatusBadRequest, "password is required")
		return
	}

	result, err := h.service.ChangePassword(r.Context(), identity, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "Could not find a matching user account.")
		case errors.Is(err, domain.ErrNotAuthorized):
			respondError(w, http.StatusUnauthorized, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Could not update this user.")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"user": result})
}
