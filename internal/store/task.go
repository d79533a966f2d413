package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// All list operations return tasks ordered by ascending due date.
type TaskStore interface {
	// Create saves a new task to the store.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List retrieves all tasks.
	List(ctx context.Context) ([]*domain.Task, error)

	// ListDueBetween retrieves tasks whose due date falls in the
	// half-open interval [from, to).
	ListDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Task, error)

	// ListRecurring retrieves tasks with a recurrence other than None.
	ListRecurring(ctx context.Context) ([]*domain.Task, error)

	// ListByPriority retrieves tasks with the given priority.
	ListByPriority(ctx context.Context, priority domain.Priority) ([]*domain.Task, error)

	// Update replaces the stored record with the given task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
