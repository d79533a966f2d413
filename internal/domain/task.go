package domain

import (
	"time"

	"github.com/google/uuid"
)

// Priority indicates how urgent a task is.
type Priority string

// Valid priority values.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether the priority is one of the enumerated values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Recurrence labels a task that repeats. No scheduling logic creates
// future occurrences; the label only drives the creation-time email.
type Recurrence string

// Valid recurrence values.
const (
	RecurrenceNone    Recurrence = "None"
	RecurrenceDaily   Recurrence = "Daily"
	RecurrenceWeekly  Recurrence = "Weekly"
	RecurrenceMonthly Recurrence = "Monthly"
)

// Valid reports whether the recurrence is one of the enumerated values.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// DefaultCategory is assigned when a task is created without a category.
const DefaultCategory = "General"

// Task represents a single task with a due date and an optional
// recurrence label.
type Task struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Priority   Priority   `json:"priority"`
	Category   string     `json:"category"`
	DueDate    time.Time  `json:"dueDate"`
	Recurrence Recurrence `json:"recurrence"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// NewTask creates a new Task with a generated ID and managed timestamps.
// Empty priority, category and recurrence fall back to their defaults.
// Returns an error if validation fails.
func NewTask(
	title string,
	priority Priority,
	category string,
	dueDate time.Time,
	recurrence Recurrence,
) (*Task, error) {
	if priority == "" {
		priority = PriorityMedium
	}
	if category == "" {
		category = DefaultCategory
	}
	if recurrence == "" {
		recurrence = RecurrenceNone
	}

	now := time.Now().UTC()
	task := &Task{
		ID:         uuid.New(),
		Title:      title,
		Priority:   priority,
		Category:   category,
		DueDate:    dueDate,
		Recurrence: recurrence,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrInvalidID
	}
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}
	if !t.Recurrence.Valid() {
		return ErrInvalidRecurrence
	}
	if t.DueDate.IsZero() {
		return ErrInvalidDueDate
	}
	return nil
}

// dueDateLayouts are the accepted input formats for due dates.
// A bare calendar date pins to midnight in the server's local zone.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDueDate parses a due date supplied by a client.
// Returns ErrInvalidDueDate for empty or unrecognized input.
func ParseDueDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, ErrInvalidDueDate
	}
	for _, layout := range dueDateLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDueDate
}

// DayWindow returns the half-open interval [d 00:00, d+1 00:00) in the
// server's local zone for the calendar day containing t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	local := t.In(time.Local)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}
