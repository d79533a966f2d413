package live

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// upgrader accepts any origin: subscribers are unauthenticated and
// unfiltered, and the channel carries no sensitive data beyond what the
// task endpoints already expose.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS returns the handler for the live-update endpoint. It upgrades
// the connection, registers the subscriber with the hub and starts its
// read and write pumps.
func ServeWS(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			hub.logger.Warn("websocket upgrade failed", "error", err)
			return
		}

		client := newClient(hub, conn)
		hub.register <- client

		go client.writePump()
		go client.readPump()
	}
}
