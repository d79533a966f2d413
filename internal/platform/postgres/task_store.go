package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// taskColumns is the column list shared by every task query.
// Results are always ordered by ascending due date.
const taskColumns = "id, title, priority, category, due_date, recurrence, created_at, updated_at"

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (id, title, priority, category, due_date, recurrence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Priority,
		task.Category,
		task.DueDate,
		task.Recurrence,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		s.logger.Error("failed to create task", "task_id", task.ID, "error", err)
		return MapError(err)
	}

	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE id = $1", taskColumns)

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		s.logger.Error("failed to get task", "task_id", id, "error", err)
		return nil, MapError(err)
	}

	return task, nil
}

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks ORDER BY due_date ASC", taskColumns)
	return s.queryTasks(ctx, query)
}

// ListDueBetween implements store.TaskStore.ListDueBetween
func (s *PostgresTaskStore) ListDueBetween(
	ctx context.Context,
	from, to time.Time,
) ([]*domain.Task, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE due_date >= $1 AND due_date < $2 ORDER BY due_date ASC",
		taskColumns,
	)
	return s.queryTasks(ctx, query, from, to)
}

// ListRecurring implements store.TaskStore.ListRecurring
func (s *PostgresTaskStore) ListRecurring(ctx context.Context) ([]*domain.Task, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE recurrence <> $1 ORDER BY due_date ASC",
		taskColumns,
	)
	return s.queryTasks(ctx, query, domain.RecurrenceNone)
}

// ListByPriority implements store.TaskStore.ListByPriority
func (s *PostgresTaskStore) ListByPriority(
	ctx context.Context,
	priority domain.Priority,
) ([]*domain.Task, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE priority = $1 ORDER BY due_date ASC",
		taskColumns,
	)
	return s.queryTasks(ctx, query, priority)
}

// Update implements store.TaskStore.Update
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE tasks
		SET title = $1, priority = $2, category = $3, due_date = $4, recurrence = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		task.Priority,
		task.Category,
		task.DueDate,
		task.Recurrence,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		s.logger.Error("failed to update task", "task_id", task.ID, "error", err)
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		return store.ErrTaskNotFound
	}

	return nil
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM tasks WHERE id = $1"

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		s.logger.Error("failed to delete task", "task_id", id, "error", err)
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		return store.ErrTaskNotFound
	}

	return nil
}

// queryTasks executes a task query and scans every row.
func (s *PostgresTaskStore) queryTasks(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Error("failed to query tasks", "error", err)
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", "error", closeErr)
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, MapError(err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tasks, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanTask.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Priority,
		&task.Category,
		&task.DueDate,
		&task.Recurrence,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
