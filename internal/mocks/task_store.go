package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// The default implementation keeps tasks in a map and sorts list
// results by ascending due date, matching the real store's ordering.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation
	Tasks       map[uuid.UUID]*domain.Task
	CreateError error
	ListError   error
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Ensure MockTaskStore implements store.TaskStore
var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	task, exists := m.Tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}

	copied := *task
	return &copied, nil
}

// List implements the TaskStore interface
func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	return m.listWhere(func(*domain.Task) bool { return true })
}

// ListDueBetween implements the TaskStore interface
func (m *MockTaskStore) ListDueBetween(
	ctx context.Context,
	from, to time.Time,
) ([]*domain.Task, error) {
	return m.listWhere(func(t *domain.Task) bool {
		return !t.DueDate.Before(from) && t.DueDate.Before(to)
	})
}

// ListRecurring implements the TaskStore interface
func (m *MockTaskStore) ListRecurring(ctx context.Context) ([]*domain.Task, error) {
	return m.listWhere(func(t *domain.Task) bool {
		return t.Recurrence != domain.RecurrenceNone
	})
}

// ListByPriority implements the TaskStore interface
func (m *MockTaskStore) ListByPriority(
	ctx context.Context,
	priority domain.Priority,
) ([]*domain.Task, error) {
	return m.listWhere(func(t *domain.Task) bool {
		return t.Priority == priority
	})
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	if _, exists := m.Tasks[task.ID]; !exists {
		return store.ErrTaskNotFound
	}

	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Tasks[id]; !exists {
		return store.ErrTaskNotFound
	}

	delete(m.Tasks, id)
	return nil
}

func (m *MockTaskStore) listWhere(keep func(*domain.Task) bool) ([]*domain.Task, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}

	result := make([]*domain.Task, 0)
	for _, task := range m.Tasks {
		if keep(task) {
			copied := *task
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DueDate.Before(result[j].DueDate)
	})
	return result, nil
}
