package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teamwell/taskman/internal/domain"
)

// CommentListItem is a comment joined with the commenting user's email.
type CommentListItem struct {
	Comment   *domain.TaskComment
	UserEmail string
}

// CommentRepository handles database operations for task comments.
type CommentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

// Create inserts a new comment and returns it with ID populated.
// CreatedAt is written as provided; the service stamps it before persisting.
func (r *CommentRepository) Create(ctx context.Context, comment *domain.TaskComment) (*domain.TaskComment, error) {
	query, args, err := psql.
		Insert("task_comments").
		Columns("task_id", "user_id", "comment", "created_at").
		Values(comment.TaskID, comment.UserID, comment.Comment, comment.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for comment: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&comment.ID)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

// FindPageByTaskID retrieves a page of comments for a task, oldest first,
// together with the total number of comments on the task.
func (r *CommentRepository) FindPageByTaskID(ctx context.Context, taskID string, page Page) ([]CommentListItem, int, error) {
	page = page.Normalize()

	countQuery, countArgs, err := psql.
		Select("COUNT(*)").
		From("task_comments").
		Where(sq.Eq{"task_id": taskID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query for comments: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	query, args, err := psql.
		Select(
			"c.id", "c.task_id", "c.user_id", "c.comment", "c.created_at",
			"u.email",
		).
		From("task_comments c").
		Join("users u ON u.id = c.user_id").
		Where(sq.Eq{"c.task_id": taskID}).
		OrderBy("c.created_at ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build page query for comments: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query comments page: %w", err)
	}
	defer rows.Close()

	var items []CommentListItem
	for rows.Next() {
		var comment domain.TaskComment
		var email string
		err := rows.Scan(
			&comment.ID,
			&comment.TaskID,
			&comment.UserID,
			&comment.Comment,
			&comment.CreatedAt,
			&email,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, CommentListItem{Comment: &comment, UserEmail: email})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate rows: %w", err)
	}

	return items, total, nil
}
