package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"

	"pulse_server/models"
)

// updatesRoom is the room every client lands in for engine push updates
const updatesRoom = "updates"

// Hub wraps the Socket.IO server and pushes deck and speed-match updates
// to connected clients
type Hub struct {
	Server *socketio.Server
}

// NewHub initializes the Socket.IO server and its event handlers
func NewHub() *Hub {
	server := socketio.NewServer(nil)

	// Handle connection events
	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		c.Join(updatesRoom)
		return nil
	})

	// Handle explicit room joins (e.g. a chat session room)
	server.OnEvent("/", "join", func(c socketio.Conn, room string) {
		if room == "" {
			log.Println("❌ Invalid room in join request")
			return
		}
		log.Printf("👥 Socket %s joined room %s\n", c.ID(), room)
		c.Join(room)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Printf("❌ Socket error: %v", err)
	})

	// Handle disconnection
	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", reason)
	})

	return &Hub{Server: server}
}

// Run serves the Socket.IO event loop
func (h *Hub) Run() {
	if err := h.Server.Serve(); err != nil {
		log.Printf("❌ Socket server error: %v", err)
	}
}

// Close shuts the Socket.IO server down
func (h *Hub) Close() {
	if err := h.Server.Close(); err != nil {
		log.Printf("❌ Socket server close error: %v", err)
	}
}

// BroadcastDeck pushes the new deck head after a completed swipe or reset
func (h *Hub) BroadcastDeck(head *models.Profile, remaining int) {
	h.Server.BroadcastToRoom("/", updatesRoom, "deck:current", map[string]interface{}{
		"profile":   head,
		"remaining": remaining,
	})
}

// BroadcastPairing pushes the speed-match phase and timer on every change
func (h *Hub) BroadcastPairing(phase string, timer int) {
	h.Server.BroadcastToRoom("/", updatesRoom, "speedmatch:status", map[string]interface{}{
		"phase": phase,
		"timer": timer,
	})
}
