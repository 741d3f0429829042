package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/teamwell/taskman/internal/handler/dto"
)

// handleRegister registers a new user and returns a session token.
// @Summary Register a new user
// @Description Creates an account with the USER role and returns a signed session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration request"
// @Success 201 {object} dto.TokenResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if len(req.Username) < 4 || len(req.Username) > 50 {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "username must be between 4 and 50 characters")
		return
	}
	if len(req.Email) < 4 || len(req.Email) > 255 || !strings.Contains(req.Email, "@") {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "email must be a valid address")
		return
	}
	if req.Password == "" || len(req.Password) > 255 {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "password must be between 1 and 255 characters")
		return
	}

	token, err := h.authService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.TokenResponse{Token: token})
}

// handleLogin authenticates a user and returns a session token.
// @Summary Log in
// @Description Authenticates by email and password and returns a signed session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "email and password are required")
		return
	}

	token, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}
