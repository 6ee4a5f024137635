package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mkarpenko/tasktrack/internal/common"
)

const taskColumns = "id, user_id, title, completed, priority, deadline, category, created_at"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *Task) (*Task, error) {

	query :=
		`INSERT INTO tasks (id, user_id, title, completed, priority, deadline, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	task.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Completed, task.Priority, task.Deadline, task.Category).
		Scan(&task.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Task, error) {

	query := `SELECT ` + taskColumns + ` FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := make([]*Task, 0)
	for rows.Next() {
		task := &Task{}
		if err := scanTask(rows, task); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return result, nil
}

// UpdateOwned builds a SET clause from the provided patch fields and fuses
// the ownership predicate into the UPDATE itself, so a task that changes
// ownership between request and execution can never be touched.
func (r *PostgresRepository) UpdateOwned(ctx context.Context, id, ownerID string, patch Patch) (*Task, error) {

	if patch.IsEmpty() {
		return r.getOwned(ctx, id, ownerID)
	}

	set := make([]string, 0, 5)
	args := make([]any, 0, 7)

	appendSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		appendSet("title", *patch.Title)
	}
	if patch.Completed != nil {
		appendSet("completed", *patch.Completed)
	}
	if patch.Priority != nil {
		appendSet("priority", *patch.Priority)
	}
	if patch.Deadline != nil {
		appendSet("deadline", *patch.Deadline)
	}
	if patch.Category != nil {
		appendSet("category", *patch.Category)
	}

	args = append(args, id, ownerID)
	query := fmt.Sprintf(
		`UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d RETURNING `+taskColumns,
		strings.Join(set, ", "), len(args)-1, len(args))

	task := &Task{}
	err := scanTask(r.db.QueryRowContext(ctx, query, args...), task)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) DeleteOwned(ctx context.Context, id, ownerID string) (int64, error) {

	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading affected rows: %w", err)
	}

	return affected, nil
}

func (r *PostgresRepository) getOwned(ctx context.Context, id, ownerID string) (*Task, error) {

	query := `SELECT ` + taskColumns + ` FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	task := &Task{}
	err := scanTask(r.db.QueryRowContext(ctx, query, id, ownerID), task)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return task, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner, task *Task) error {
	return row.Scan(&task.ID, &task.UserID, &task.Title, &task.Completed,
		&task.Priority, &task.Deadline, &task.Category, &task.CreatedAt)
}
