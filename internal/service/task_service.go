package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/teamwell/taskman/internal/domain"
	"github.com/teamwell/taskman/internal/repository"
)

// TaskService orchestrates task and comment operations: it loads the subject
// records, delegates the access decision to the Authorizer, applies the
// requested mutation and persists the result. Subject records are re-loaded
// on every call; nothing is cached across requests.
type TaskService struct {
	tasks      *repository.TaskRepository
	comments   *repository.CommentRepository
	users      *repository.UserRepository
	authorizer *Authorizer
	now        func() time.Time
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	tasks *repository.TaskRepository,
	comments *repository.CommentRepository,
	users *repository.UserRepository,
	authorizer *Authorizer,
) *TaskService {
	return &TaskService{
		tasks:      tasks,
		comments:   comments,
		users:      users,
		authorizer: authorizer,
		now:        time.Now,
	}
}

// CreateTaskParams holds the fields for task creation. Status and priority
// are optional and default to PENDING and MEDIUM.
type CreateTaskParams struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	AssigneeID  *string
}

// UpdateTaskParams holds the fields for a partial task update. Nil fields are
// left untouched; present fields replace the stored value.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	AssigneeID  *string
}

// getTask loads a task by ID, echoing the id on a miss.
func (s *TaskService) getTask(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
		}
		return nil, err
	}
	return task, nil
}

// CreateTask creates a task authored by the caller. An explicit assignee is
// honored only for admin callers; otherwise the assignee defaults to the
// caller.
func (s *TaskService) CreateTask(ctx context.Context, caller *domain.User, p CreateTaskParams) (*domain.Task, error) {
	if err := s.authorizer.CanCreateTask(caller); err != nil {
		return nil, err
	}

	status := p.Status
	if status == "" {
		status = domain.DefaultTaskStatus
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	priority := p.Priority
	if priority == "" {
		priority = domain.DefaultTaskPriority
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, priority)
	}

	assigneeID := caller.ID
	if caller.IsAdmin() && p.AssigneeID != nil {
		assignee, err := s.users.GetByID(ctx, *p.AssigneeID)
		if err != nil {
			return nil, fmt.Errorf("assignee %s: %w", *p.AssigneeID, err)
		}
		assigneeID = assignee.ID
	}

	task, err := s.tasks.Create(ctx, &domain.Task{
		Title:       p.Title,
		Description: p.Description,
		Status:      status,
		Priority:    priority,
		AuthorID:    caller.ID,
		AssigneeID:  assigneeID,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("task created",
		"task_id", task.ID,
		"author_id", caller.ID,
		"assignee_id", task.AssigneeID,
	)

	return task, nil
}

// UpdateTask applies a partial update to a task. Fields present in the params
// overwrite the stored values; absent fields are untouched. Reassignment
// through this operation is admin-only, except for the assignee restating
// their own id.
func (s *TaskService) UpdateTask(ctx context.Context, caller *domain.User, taskID string, p UpdateTaskParams) (*domain.Task, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizer.CanUpdateTask(caller, task, p.AssigneeID); err != nil {
		return nil, err
	}

	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *p.Status)
		}
		task.Status = *p.Status
	}
	if p.Priority != nil {
		if !p.Priority.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, *p.Priority)
		}
		task.Priority = *p.Priority
	}
	if p.AssigneeID != nil && caller.IsAdmin() {
		assignee, err := s.users.GetByID(ctx, *p.AssigneeID)
		if err != nil {
			return nil, fmt.Errorf("assignee %s: %w", *p.AssigneeID, err)
		}
		task.AssigneeID = assignee.ID
	}

	saved, err := s.tasks.Save(ctx, task)
	if err != nil {
		return nil, err
	}

	slog.Info("task updated", "task_id", task.ID, "caller_id", caller.ID)

	return saved, nil
}

// DeleteTask removes a task. Admin only. Existence is verified first so a
// missing id fails with not-found instead of silently succeeding.
func (s *TaskService) DeleteTask(ctx context.Context, caller *domain.User, taskID string) error {
	if err := s.authorizer.CanDeleteTask(caller); err != nil {
		return err
	}

	exists, err := s.tasks.ExistsByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
	}

	if err := s.tasks.DeleteByID(ctx, taskID); err != nil {
		return err
	}

	slog.Info("task deleted", "task_id", taskID, "caller_id", caller.ID)

	return nil
}

// ListTasksByAuthor returns a page of tasks created by the given user.
func (s *TaskService) ListTasksByAuthor(ctx context.Context, caller *domain.User, authorID string, page repository.Page) ([]*domain.Task, int, error) {
	if err := s.authorizer.CanListTasksByAuthor(caller, authorID); err != nil {
		return nil, 0, err
	}

	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return nil, 0, fmt.Errorf("author %s: %w", authorID, err)
	}

	return s.tasks.FindPageByAuthor(ctx, authorID, page)
}

// ListTasksByAssignee returns a page of tasks assigned to the given user.
func (s *TaskService) ListTasksByAssignee(ctx context.Context, caller *domain.User, assigneeID string, page repository.Page) ([]*domain.Task, int, error) {
	if err := s.authorizer.CanListTasksByAssignee(caller, assigneeID); err != nil {
		return nil, 0, err
	}

	if _, err := s.users.GetByID(ctx, assigneeID); err != nil {
		return nil, 0, fmt.Errorf("assignee %s: %w", assigneeID, err)
	}

	return s.tasks.FindPageByAssignee(ctx, assigneeID, page)
}

// UpdateStatus changes a task's status. Any status may follow any other.
func (s *TaskService) UpdateStatus(ctx context.Context, caller *domain.User, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizer.CanUpdateStatus(caller, task); err != nil {
		return nil, err
	}

	task.Status = status
	saved, err := s.tasks.Save(ctx, task)
	if err != nil {
		return nil, err
	}

	slog.Info("task status updated",
		"task_id", task.ID,
		"status", status,
		"caller_id", caller.ID,
	)

	return saved, nil
}

// UpdatePriority changes a task's priority. Admin only.
func (s *TaskService) UpdatePriority(ctx context.Context, caller *domain.User, taskID string, priority domain.TaskPriority) (*domain.Task, error) {
	if err := s.authorizer.CanUpdatePriority(caller); err != nil {
		return nil, err
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, priority)
	}

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.Priority = priority
	saved, err := s.tasks.Save(ctx, task)
	if err != nil {
		return nil, err
	}

	slog.Info("task priority updated",
		"task_id", task.ID,
		"priority", priority,
		"caller_id", caller.ID,
	)

	return saved, nil
}

// ReassignTask hands a task to a new assignee. Admin only.
func (s *TaskService) ReassignTask(ctx context.Context, caller *domain.User, taskID, userID string) (*domain.Task, error) {
	if err := s.authorizer.CanReassignTask(caller); err != nil {
		return nil, err
	}

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	assignee, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("assignee %s: %w", userID, err)
	}

	task.AssigneeID = assignee.ID
	saved, err := s.tasks.Save(ctx, task)
	if err != nil {
		return nil, err
	}

	slog.Info("task reassigned",
		"task_id", task.ID,
		"assignee_id", assignee.ID,
		"caller_id", caller.ID,
	)

	return saved, nil
}

// ListComments returns a page of comments on a task. The task is loaded once
// and the loaded record is what the access decision is made against.
func (s *TaskService) ListComments(ctx context.Context, caller *domain.User, taskID string, page repository.Page) ([]repository.CommentListItem, int, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, 0, err
	}

	if err := s.authorizer.CanListComments(caller, task); err != nil {
		return nil, 0, err
	}

	return s.comments.FindPageByTaskID(ctx, task.ID, page)
}

// AddComment posts a comment on a task as the caller. CreatedAt is stamped
// with the service's current time if not already set.
func (s *TaskService) AddComment(ctx context.Context, caller *domain.User, taskID, text string) (*domain.TaskComment, error) {
	if text == "" {
		return nil, domain.ErrEmptyComment
	}

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizer.CanAddComment(caller, task); err != nil {
		return nil, err
	}

	comment := &domain.TaskComment{
		TaskID:  task.ID,
		UserID:  caller.ID,
		Comment: text,
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = s.now()
	}

	saved, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	slog.Info("comment added",
		"task_id", task.ID,
		"comment_id", saved.ID,
		"caller_id", caller.ID,
	)

	return saved, nil
}
