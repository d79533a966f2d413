// Package events defines task change events and their in-process dispatch.
package events

import (
	"context"

	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// EventType identifies the kind of task mutation an event describes.
type EventType string

// Event kinds broadcast to live-update subscribers.
const (
	TaskAdded   EventType = "TASK_ADDED"
	TaskUpdated EventType = "TASK_UPDATED"
	TaskDeleted EventType = "TASK_DELETED"
)

// TaskEvent describes a single task mutation. The Task field is a copy
// of the record, never a reference into the store; for deletions it
// carries the record's last known state.
type TaskEvent struct {
	Type EventType   `json:"type"`
	Task domain.Task `json:"task"`
}

// Handler defines an interface for components that consume task events.
type Handler interface {
	// HandleTaskEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleTaskEvent(ctx context.Context, event TaskEvent) error
}

// Emitter defines an interface for components that publish task events.
// This allows services to publish events without direct knowledge of handlers.
type Emitter interface {
	// Emit publishes the given event to all registered handlers.
	Emit(ctx context.Context, event TaskEvent)
}
