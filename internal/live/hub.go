// Package live pushes task change events to connected websocket
// subscribers. Delivery is best-effort: subscribers present at broadcast
// time receive the event, absent ones miss it permanently, and there is
// no replay, acknowledgment, or cross-subscriber ordering.
package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"github.com/taskdeck/taskdeck-api/internal/events"
)

// broadcastBuffer bounds how many pending broadcasts the hub holds
// before it starts dropping events.
const broadcastBuffer = 64

// Hub owns the registry of open subscriber connections and fans
// serialized events out to them. All registry mutations go through the
// run loop, so no locking is needed around the client set.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	count      atomic.Int64
	logger     *slog.Logger
}

// SubscriberCount reports how many subscribers are currently connected.
func (h *Hub) SubscriberCount() int {
	return int(h.count.Load())
}

// NewHub creates a Hub. Run must be started before clients connect.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, broadcastBuffer),
		logger:     logger.With(slog.String("component", "live_hub")),
	}
}

// Ensure Hub consumes task events
var _ events.Handler = (*Hub)(nil)

// HandleTaskEvent serializes the event and hands it to the run loop.
// If the hub's buffer is full the event is dropped; fan-out gives no
// delivery guarantee and must never block the mutating request.
func (h *Hub) HandleTaskEvent(ctx context.Context, event events.TaskEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("broadcast buffer full, dropping event",
			"event_type", event.Type,
			"task_id", event.Task.ID)
	}
	return nil
}

// Run processes register, unregister and broadcast requests until the
// context is canceled. On shutdown every open connection is closed.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				client.close()
				delete(h.clients, client)
			}
			h.count.Store(0)
			return

		case client := <-h.register:
			h.clients[client] = true
			h.count.Store(int64(len(h.clients)))
			h.logger.Debug("subscriber connected", "subscriber_count", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.close()
				h.count.Store(int64(len(h.clients)))
				h.logger.Debug("subscriber disconnected", "subscriber_count", len(h.clients))
			}

		case payload := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// The subscriber can't keep up. Drop it rather
					// than let it stall everyone else.
					delete(h.clients, client)
					client.close()
					h.logger.Warn("dropping slow subscriber",
						"subscriber_count", len(h.clients))
				}
			}
			h.count.Store(int64(len(h.clients)))
		}
	}
}
