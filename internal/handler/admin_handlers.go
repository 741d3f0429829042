package handler

import (
	"encoding/json"
	"net/http"

	"github.com/teamwell/taskman/internal/domain"
	"github.com/teamwell/taskman/internal/handler/dto"
	"github.com/teamwell/taskman/internal/middleware"
)

// handleUpdateUserRole promotes or demotes a user, addressed by username.
// @Summary Update a user's role
// @Description Sets a new role for the named user. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRoleRequest true "Role update request"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/role [post]
func (h *Handler) handleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Authentication required")
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Username == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "username is required")
		return
	}

	user, err := h.userService.UpdateRole(ctx, caller, req.Username, domain.Role(req.Role))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToUserResponse(user))
}
