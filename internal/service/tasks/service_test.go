package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/events"
	"github.com/taskdeck/taskdeck-api/internal/mocks"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// recordingEmitter captures emitted events for assertions.
type recordingEmitter struct {
	events []events.TaskEvent
}

func (e *recordingEmitter) Emit(ctx context.Context, event events.TaskEvent) {
	e.events = append(e.events, event)
}

// recordingScheduler captures scheduled mail notifications.
type recordingScheduler struct {
	tasks []domain.Task
	err   error
}

func (s *recordingScheduler) ScheduleRecurringTaskEmail(task domain.Task) error {
	if s.err != nil {
		return s.err
	}
	s.tasks = append(s.tasks, task)
	return nil
}

func newTestService() (*Service, *mocks.MockTaskStore, *recordingEmitter, *recordingScheduler) {
	taskStore := mocks.NewMockTaskStore()
	emitter := &recordingEmitter{}
	scheduler := &recordingScheduler{}
	return NewService(taskStore, emitter, scheduler, nil), taskStore, emitter, scheduler
}

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("persists, emits TASK_ADDED and defaults recurrence", func(t *testing.T) {
		t.Parallel()

		svc, taskStore, emitter, scheduler := newTestService()

		task, err := svc.Create(context.Background(), CreateInput{
			Title:   "Water plants",
			DueDate: "2024-03-01",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.RecurrenceNone, task.Recurrence)
		assert.Equal(t, domain.PriorityMedium, task.Priority)
		assert.Equal(t, domain.DefaultCategory, task.Category)
		assert.Contains(t, taskStore.Tasks, task.ID)

		require.Len(t, emitter.events, 1)
		assert.Equal(t, events.TaskAdded, emitter.events[0].Type)
		assert.Equal(t, task.ID, emitter.events[0].Task.ID)

		// Non-recurring create must trigger no mail.
		assert.Empty(t, scheduler.tasks)
	})

	t.Run("recurring task schedules exactly one mail", func(t *testing.T) {
		t.Parallel()

		svc, _, _, scheduler := newTestService()

		task, err := svc.Create(context.Background(), CreateInput{
			Title:      "Pay rent",
			Priority:   "High",
			DueDate:    "2024-03-01",
			Recurrence: "Monthly",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.PriorityHigh, task.Priority)
		assert.Equal(t, domain.RecurrenceMonthly, task.Recurrence)
		require.Len(t, scheduler.tasks, 1)
		assert.Equal(t, task.ID, scheduler.tasks[0].ID)
	})

	t.Run("mail scheduling failure does not fail the create", func(t *testing.T) {
		t.Parallel()

		taskStore := mocks.NewMockTaskStore()
		emitter := &recordingEmitter{}
		scheduler := &recordingScheduler{err: errors.New("queue full")}
		svc := NewService(taskStore, emitter, scheduler, nil)

		task, err := svc.Create(context.Background(), CreateInput{
			Title:      "Pay rent",
			DueDate:    "2024-03-01",
			Recurrence: "Weekly",
		})
		require.NoError(t, err)
		assert.Contains(t, taskStore.Tasks, task.ID)
		require.Len(t, emitter.events, 1)
	})

	t.Run("nil scheduler is tolerated", func(t *testing.T) {
		t.Parallel()

		svc := NewService(mocks.NewMockTaskStore(), &recordingEmitter{}, nil, nil)

		_, err := svc.Create(context.Background(), CreateInput{
			Title:      "Pay rent",
			DueDate:    "2024-03-01",
			Recurrence: "Daily",
		})
		require.NoError(t, err)
	})

	t.Run("validation failures emit nothing", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			input   CreateInput
			wantErr error
		}{
			{
				name:    "missing title",
				input:   CreateInput{DueDate: "2024-03-01"},
				wantErr: domain.ErrEmptyTitle,
			},
			{
				name:    "unparseable due date",
				input:   CreateInput{Title: "Task", DueDate: "soon"},
				wantErr: domain.ErrInvalidDueDate,
			},
			{
				name:    "invalid priority",
				input:   CreateInput{Title: "Task", DueDate: "2024-03-01", Priority: "Urgent"},
				wantErr: domain.ErrInvalidPriority,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, taskStore, emitter, _ := newTestService()

				_, err := svc.Create(context.Background(), tt.input)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, taskStore.Tasks)
				assert.Empty(t, emitter.events)
			})
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	t.Run("replaces provided fields and emits TASK_UPDATED", func(t *testing.T) {
		t.Parallel()

		svc, _, emitter, _ := newTestService()

		created, err := svc.Create(context.Background(), CreateInput{
			Title:   "Draft report",
			DueDate: "2024-03-01",
		})
		require.NoError(t, err)

		title := "Draft quarterly report"
		priority := "High"
		updated, err := svc.Update(context.Background(), created.ID, UpdateInput{
			Title:    &title,
			Priority: &priority,
		})
		require.NoError(t, err)

		assert.Equal(t, "Draft quarterly report", updated.Title)
		assert.Equal(t, domain.PriorityHigh, updated.Priority)
		// Untouched fields keep their stored values.
		assert.Equal(t, created.Category, updated.Category)
		assert.True(t, updated.DueDate.Equal(created.DueDate))

		require.Len(t, emitter.events, 2)
		assert.Equal(t, events.TaskUpdated, emitter.events[1].Type)
	})

	t.Run("unknown id returns not found and creates nothing", func(t *testing.T) {
		t.Parallel()

		svc, taskStore, emitter, _ := newTestService()

		title := "Ghost"
		_, err := svc.Update(context.Background(), uuid.New(), UpdateInput{Title: &title})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.Empty(t, taskStore.Tasks)
		assert.Empty(t, emitter.events)
	})

	t.Run("empty category falls back to the default", func(t *testing.T) {
		t.Parallel()

		svc, _, _, _ := newTestService()

		created, err := svc.Create(context.Background(), CreateInput{
			Title:    "Draft report",
			Category: "Work",
			DueDate:  "2024-03-01",
		})
		require.NoError(t, err)

		empty := ""
		updated, err := svc.Update(context.Background(), created.ID, UpdateInput{Category: &empty})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCategory, updated.Category)
	})

	t.Run("re-parses the due date", func(t *testing.T) {
		t.Parallel()

		svc, _, _, _ := newTestService()

		created, err := svc.Create(context.Background(), CreateInput{
			Title:   "Draft report",
			DueDate: "2024-03-01",
		})
		require.NoError(t, err)

		bad := "whenever"
		_, err = svc.Update(context.Background(), created.ID, UpdateInput{DueDate: &bad})
		assert.ErrorIs(t, err, domain.ErrInvalidDueDate)

		good := "2024-04-15"
		updated, err := svc.Update(context.Background(), created.ID, UpdateInput{DueDate: &good})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 4, 15, 0, 0, 0, 0, time.Local), updated.DueDate)
	})
}

func TestDelete(t *testing.T) {
	t.Parallel()

	t.Run("removes the task and emits its last known state", func(t *testing.T) {
		t.Parallel()

		svc, taskStore, emitter, _ := newTestService()

		created, err := svc.Create(context.Background(), CreateInput{
			Title:   "Old chore",
			DueDate: "2024-03-01",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), created.ID))
		assert.NotContains(t, taskStore.Tasks, created.ID)

		require.Len(t, emitter.events, 2)
		assert.Equal(t, events.TaskDeleted, emitter.events[1].Type)
		assert.Equal(t, "Old chore", emitter.events[1].Task.Title)

		all, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		t.Parallel()

		svc, _, emitter, _ := newTestService()

		err := svc.Delete(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.Empty(t, emitter.events)
	})
}

func TestListByDate(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()

	// Insertion order deliberately scrambled.
	for _, due := range []string{"2024-03-02", "2024-03-01", "2024-03-01T23:59:59Z", "2024-02-29"} {
		_, err := svc.Create(context.Background(), CreateInput{Title: "t-" + due, DueDate: due})
		require.NoError(t, err)
	}

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	got, err := svc.ListByDate(context.Background(), day)
	require.NoError(t, err)

	from, to := domain.DayWindow(day)
	for _, task := range got {
		assert.False(t, task.DueDate.Before(from), "task %s before window", task.Title)
		assert.True(t, task.DueDate.Before(to), "task %s past window", task.Title)
	}

	// Ascending due date ordering.
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].DueDate.Before(got[i-1].DueDate))
	}
}

func TestDashboardSummary(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()

	today := time.Now().Format("2006-01-02")

	_, err := svc.Create(context.Background(), CreateInput{
		Title: "due today", DueDate: today,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateInput{
		Title: "recurring and high", DueDate: "2030-06-01", Priority: "High", Recurrence: "Weekly",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateInput{
		Title: "plain future task", DueDate: "2030-07-01", Priority: "Low",
	})
	require.NoError(t, err)

	summary, err := svc.DashboardSummary(context.Background())
	require.NoError(t, err)

	assert.Len(t, summary.ScheduledTasks, 3)
	require.Len(t, summary.DeadlineReminders, 1)
	assert.Equal(t, "due today", summary.DeadlineReminders[0].Title)
	require.Len(t, summary.RecurringTasks, 1)
	assert.Equal(t, "recurring and high", summary.RecurringTasks[0].Title)
	require.Len(t, summary.HighPriorityTasks, 1)
	// The views are not partitions: the same task may appear in several.
	assert.Equal(t, "recurring and high", summary.HighPriorityTasks[0].Title)
}
