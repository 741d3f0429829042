package handler

import (
	"encoding/json"
	"net/http"

	"github.com/teamwell/taskman/internal/domain"
	"github.com/teamwell/taskman/internal/handler/dto"
	"github.com/teamwell/taskman/internal/middleware"
	"github.com/teamwell/taskman/internal/service"
)

// handleCreateTask creates a new task authored by the caller.
// @Summary Create a new task
// @Description Creates a task. An explicit assignee_id is honored for admin callers only; otherwise the assignee defaults to the caller.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task creation request"
// @Success 201 {object} dto.TaskResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks [post]
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Authentication required")
		return
	}

	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Title == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required")
		return
	}
	if req.Description == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "description is required")
		return
	}

	task, err := h.taskService.CreateTask(ctx, caller, service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToTaskResponse(task))
}

// handleUpdateTask applies a partial update to a task.
// @Summary Update a task
// @Description Fields present in the body replace stored values; absent fields are untouched.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Task update request"
// @Success 200 {object} dto.TaskResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Authentication required")
		return
	}

	taskID, ok := extractPathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	params := service.UpdateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		params.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		params.Priority = &priority
	}

	task, err := h.taskService.UpdateTask(ctx, caller, taskID, params)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleDeleteTask removes a task. Admin only.
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Authentication required")
		return
	}

	taskID, ok := extractPathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(ctx, caller, taskID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListTasksByAuthor returns a page of tasks created by a user.
// @Summary List tasks by author
// @Produce json
// @Param authorId path string true "Author ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.TaskPageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/author/{authorId} [get]
func (h *Handler) handleListTasksByAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Authentication required")
		return
	}

	authorID, ok := extractPathID(w, r, "authorId")
	if !ok {
		return
	}

	page := parsePage(r)
	tasks, total, err := h.taskService.ListTasksByAuthor(ctx, caller, authorID, page)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskPageResponse(tasks, total, page))
}

// handleListTasksByAssignee returns a page of tasks assigned to a user.
// @Summary List tasks by assignee
// @Produce json
// @Param assigneeId path string true "Assignee ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.TaskPageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/assignee/{assigneeId} [get]
func (h *Handler) handleListTasksByAssignee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Authentication required")
		return
	}

	assigneeID, ok := extractPathID(w, r, "assigneeId")
	if !ok {
		return
	}

	page := parsePage(r)
	tasks, total, err := h.taskService.ListTasksByAssignee(ctx, caller, assigneeID, page)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskPageResponse(tasks, total, page))
}

// handleUpdateStatus changes a task's status via the status query parameter.
// @Summary Update task status
// @Produce json
// @Param id path string true "Task ID"
// @Param status query string true "New status" Enums(PENDING, IN_PROGRESS, COMPLETED)
// @Success 200 {object} dto.TaskResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/status [patch]
func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Authentication required")
		return
	}

	taskID, ok := extractPathID(w, r, "id")
	if !ok {
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "status query parameter is required")
		return
	}

	task, err := h.taskService.UpdateStatus(ctx, caller, taskID, domain.TaskStatus(status))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleUpdatePriority changes a task's priority. Admin only.
// @Summary Update task priority
// @Produce json
// @Param id path string true "Task ID"
// @Param priority query string true "New priority" Enums(LOW, MEDIUM, HIGH)
// @Success 200 {object} dto.TaskResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/priority [patch]
func (h *Handler) handleUpdatePriority(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Authentication required")
		return
	}

	taskID, ok := extractPathID(w, r, "id")
	if !ok {
		return
	}

	priority := r.URL.Query().Get("priority")
	if priority == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "priority query parameter is required")
		return
	}

	task, err := h.taskService.UpdatePriority(ctx, caller, taskID, domain.TaskPriority(priority))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleReassignTask hands a task to a new assignee. Admin only.
// @Summary Reassign a task
// @Produce json
// @Param id path string true "Task ID"
// @Param userId path string true "New assignee ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/assignee/{userId} [patch]
func (h *Handler) handleReassignTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Authentication required")
		return
	}

	taskID, ok := extractPathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := extractPathID(w, r, "userId")
	if !ok {
		return
	}

	task, err := h.taskService.ReassignTask(ctx, caller, taskID, userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleListComments returns a page of comments on a task.
// @Summary List task comments
// @Produce json
// @Param id path string true "Task ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.CommentPageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/comments [get]
func (h *Handler) handleListComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Authentication required")
		return
	}

	taskID, ok := extractPathID(w, r, "id")
	if !ok {
		return
	}

	page := parsePage(r)
	comments, total, err := h.taskService.ListComments(ctx, caller, taskID, page)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToCommentPageResponse(comments, total, page))
}

// handleAddComment posts a comment on a task as the caller.
// @Summary Comment on a task
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.CommentRequest true "Comment request"
// @Success 201 {object} dto.CommentResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/comments [post]
func (h *Handler) handleAddComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Authentication required")
		return
	}

	taskID, ok := extractPathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	comment, err := h.taskService.AddComment(ctx, caller, taskID, req.Comment)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := dto.ToCommentResponse(comment)
	resp.UserEmail = caller.Email
	respondJSON(w, http.StatusCreated, resp)
}
