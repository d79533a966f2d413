package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		title      string
		priority   Priority
		category   string
		dueDate    time.Time
		recurrence Recurrence
		wantErr    error
	}{
		{
			name:       "valid task with all fields",
			title:      "Pay rent",
			priority:   PriorityHigh,
			category:   "Finance",
			dueDate:    due,
			recurrence: RecurrenceMonthly,
		},
		{
			name:    "defaults applied for empty optional fields",
			title:   "Water plants",
			dueDate: due,
		},
		{
			name:    "missing title",
			dueDate: due,
			wantErr: ErrEmptyTitle,
		},
		{
			name:     "invalid priority",
			title:    "Task",
			priority: Priority("Urgent"),
			dueDate:  due,
			wantErr:  ErrInvalidPriority,
		},
		{
			name:       "invalid recurrence",
			title:      "Task",
			recurrence: Recurrence("Yearly"),
			dueDate:    due,
			wantErr:    ErrInvalidRecurrence,
		},
		{
			name:    "zero due date",
			title:   "Task",
			wantErr: ErrInvalidDueDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.title, tt.priority, tt.category, tt.dueDate, tt.recurrence)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, task.ID.String(), "00000000-0000-0000-0000-000000000000")
			assert.False(t, task.CreatedAt.IsZero())
			assert.Equal(t, task.CreatedAt, task.UpdatedAt)
		})
	}
}

func TestNewTaskDefaults(t *testing.T) {
	t.Parallel()

	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	task, err := NewTask("Water plants", "", "", due, "")
	require.NoError(t, err)

	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, DefaultCategory, task.Category)
	assert.Equal(t, RecurrenceNone, task.Recurrence)
}

func TestParseDueDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "calendar date pins to local midnight",
			input: "2024-03-01",
			want:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "rfc3339 timestamp",
			input: "2024-03-01T15:04:05Z",
			want:  time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC),
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "next tuesday",
			wantErr: true,
		},
		{
			name:    "wrong ordering",
			input:   "01-03-2024",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDueDate(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDueDate)
				return
			}

			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestDayWindow(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, 3, 1, 17, 30, 0, 0, time.Local)
	from, to := DayWindow(anchor)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.Local), to)

	// The interval is half-open: the next midnight belongs to the next day.
	assert.True(t, to.After(from))
	assert.Equal(t, 24*time.Hour, to.Sub(from))
}

func TestPriorityValid(t *testing.T) {
	t.Parallel()

	for _, p := range []Priority{PriorityHigh, PriorityMedium, PriorityLow} {
		assert.True(t, p.Valid(), "priority %q should be valid", p)
	}
	assert.False(t, Priority("").Valid())
	assert.False(t, Priority("high").Valid(), "values are case sensitive")
}

func TestRecurrenceValid(t *testing.T) {
	t.Parallel()

	for _, r := range []Recurrence{RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly} {
		assert.True(t, r.Valid(), "recurrence %q should be valid", r)
	}
	assert.False(t, Recurrence("Hourly").Valid())
}
