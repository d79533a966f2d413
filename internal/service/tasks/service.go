// Package tasks implements task CRUD, dashboard views and the dispatch
// of task-mutation side effects.
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/events"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// MailScheduler enqueues the best-effort notification for a newly
// created recurring task.
type MailScheduler interface {
	ScheduleRecurringTaskEmail(task domain.Task) error
}

// CreateInput carries the client-supplied fields for a new task.
// Empty priority, category and recurrence take their defaults.
type CreateInput struct {
	Title      string
	Priority   string
	Category   string
	DueDate    string
	Recurrence string
}

// UpdateInput carries a partial field replacement for an existing task.
// Nil fields keep their stored values.
type UpdateInput struct {
	Title      *string
	Priority   *string
	Category   *string
	DueDate    *string
	Recurrence *string
}

// Summary holds the four dashboard views. The views are independent
// queries over the same store, not mutually exclusive partitions.
type Summary struct {
	ScheduledTasks    []*domain.Task `json:"scheduledTasks"`
	DeadlineReminders []*domain.Task `json:"deadlineReminders"`
	RecurringTasks    []*domain.Task `json:"recurringTasks"`
	HighPriorityTasks []*domain.Task `json:"highPriorityTasks"`
}

// Service provides task operations over a TaskStore. Every successful
// mutation emits exactly one event of the matching kind; create
// additionally schedules a mail notification when the task recurs.
type Service struct {
	taskStore store.TaskStore
	emitter   events.Emitter
	mail      MailScheduler
	logger    *slog.Logger
}

// NewService creates a task Service with the given dependencies.
// mail may be nil when the mail transport is not configured.
func NewService(
	taskStore store.TaskStore,
	emitter events.Emitter,
	mail MailScheduler,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		taskStore: taskStore,
		emitter:   emitter,
		mail:      mail,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// List returns all tasks ordered by ascending due date.
func (s *Service) List(ctx context.Context) ([]*domain.Task, error) {
	return s.taskStore.List(ctx)
}

// ListByDate returns tasks whose due date falls within the calendar day
// containing date, local to the server.
func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]*domain.Task, error) {
	from, to := domain.DayWindow(date)
	return s.taskStore.ListDueBetween(ctx, from, to)
}

// DashboardSummary computes the four dashboard views in one call.
func (s *Service) DashboardSummary(ctx context.Context) (*Summary, error) {
	all, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	from, to := domain.DayWindow(time.Now())
	dueToday, err := s.taskStore.ListDueBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks due today: %w", err)
	}

	recurring, err := s.taskStore.ListRecurring(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring tasks: %w", err)
	}

	highPriority, err := s.taskStore.ListByPriority(ctx, domain.PriorityHigh)
	if err != nil {
		return nil, fmt.Errorf("failed to list high priority tasks: %w", err)
	}

	return &Summary{
		ScheduledTasks:    all,
		DeadlineReminders: dueToday,
		RecurringTasks:    recurring,
		HighPriorityTasks: highPriority,
	}, nil
}

// Create constructs and persists a new task. On success it emits a
// TASK_ADDED event synchronously and, for a recurring task, schedules
// the notification email. A mail scheduling failure never fails the
// create; it is only logged.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	dueDate, err := domain.ParseDueDate(input.DueDate)
	if err != nil {
		return nil, err
	}

	task, err := domain.NewTask(
		input.Title,
		domain.Priority(input.Priority),
		input.Category,
		dueDate,
		domain.Recurrence(input.Recurrence),
	)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, events.TaskEvent{Type: events.TaskAdded, Task: *task})

	if task.Recurrence != domain.RecurrenceNone && s.mail != nil {
		if err := s.mail.ScheduleRecurringTaskEmail(*task); err != nil {
			s.logger.Error("failed to schedule recurring task email",
				"task_id", task.ID,
				"error", err)
		}
	}

	s.logger.Info("task created", "task_id", task.ID, "recurrence", task.Recurrence)
	return task, nil
}

// Update replaces the provided fields of an existing task and emits a
// TASK_UPDATED event. Returns store.ErrTaskNotFound for an unknown id.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Priority != nil {
		task.Priority = domain.Priority(*input.Priority)
	}
	if input.Category != nil {
		task.Category = *input.Category
		if task.Category == "" {
			task.Category = domain.DefaultCategory
		}
	}
	if input.DueDate != nil {
		dueDate, err := domain.ParseDueDate(*input.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = dueDate
	}
	if input.Recurrence != nil {
		task.Recurrence = domain.Recurrence(*input.Recurrence)
	}
	task.UpdatedAt = time.Now().UTC()

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, events.TaskEvent{Type: events.TaskUpdated, Task: *task})

	s.logger.Info("task updated", "task_id", task.ID)
	return task, nil
}

// Delete removes a task and emits a TASK_DELETED event carrying the
// record's last known state. Returns store.ErrTaskNotFound for an
// unknown id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.taskStore.Delete(ctx, id); err != nil {
		return err
	}

	s.emitter.Emit(ctx, events.TaskEvent{Type: events.TaskDeleted, Task: *task})

	s.logger.Info("task deleted", "task_id", id)
	return nil
}
