package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teamwell/taskman/internal/auth"
	"github.com/teamwell/taskman/internal/handler/dto"
	"github.com/teamwell/taskman/internal/middleware"
	"github.com/teamwell/taskman/internal/repository"
	"github.com/teamwell/taskman/internal/service"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool           *pgxpool.Pool
	authService    *service.AuthService
	taskService    *service.TaskService
	userService    *service.UserService
	authMiddleware *middleware.AuthMiddleware
}

// New creates a new Handler instance with all dependencies.
func New(pool *pgxpool.Pool, tokens *auth.TokenService, hasher *auth.PasswordHasher) *Handler {
	// Create repositories
	userRepo := repository.NewUserRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)

	// Create services
	authorizer := service.NewAuthorizer()
	authService := service.NewAuthService(userRepo, hasher, tokens)
	taskService := service.NewTaskService(taskRepo, commentRepo, userRepo, authorizer)
	userService := service.NewUserService(userRepo, authorizer)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo)

	return &Handler{
		pool:           pool,
		authService:    authService,
		taskService:    taskService,
		userService:    userService,
		authMiddleware: authMiddleware,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Authentication
	mux.HandleFunc("POST /api/v1/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", h.handleLogin)

	// Task routes with authentication
	mux.Handle("POST /api/v1/tasks", h.authed(h.handleCreateTask))
	mux.Handle("PUT /api/v1/tasks/{id}", h.authed(h.handleUpdateTask))
	mux.Handle("DELETE /api/v1/tasks/{id}", h.authed(h.handleDeleteTask))
	mux.Handle("GET /api/v1/tasks/author/{authorId}", h.authed(h.handleListTasksByAuthor))
	mux.Handle("GET /api/v1/tasks/assignee/{assigneeId}", h.authed(h.handleListTasksByAssignee))
	mux.Handle("PATCH /api/v1/tasks/{id}/status", h.authed(h.handleUpdateStatus))
	mux.Handle("PATCH /api/v1/tasks/{id}/priority", h.authed(h.handleUpdatePriority))
	mux.Handle("PATCH /api/v1/tasks/{id}/assignee/{userId}", h.authed(h.handleReassignTask))
	mux.Handle("GET /api/v1/tasks/{id}/comments", h.authed(h.handleListComments))
	mux.Handle("POST /api/v1/tasks/{id}/comments", h.authed(h.handleAddComment))

	// Admin routes
	mux.Handle("POST /api/v1/admin/users/role", h.authed(h.handleUpdateUserRole))
}

// authed wraps a handler func with Bearer token authentication.
func (h *Handler) authed(fn http.HandlerFunc) http.Handler {
	return h.authMiddleware.Authenticate(fn)
}

// handleHealthz returns 200 OK if the database is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.pool.Ping(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps a domain error and writes it.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// extractPathID extracts and validates a UUID path parameter.
// Returns (id, true) if valid, ("", false) if invalid (error already sent to client).
func extractPathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := r.PathValue(name)
	if id == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", name+" is required")
		return "", false
	}

	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", name+" must be a valid UUID")
		return "", false
	}

	return id, true
}

// parsePage reads limit/offset query parameters.
func parsePage(r *http.Request) repository.Page {
	var page repository.Page
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page.Offset = n
		}
	}
	return page.Normalize()
}
