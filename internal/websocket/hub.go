// Package websocket implements the hub that fans live score updates out to
// everyone watching a round. When a score is submitted, the handler pushes
// an update through the hub and every connected watcher of that round sees
// it immediately instead of polling.
package websocket

import (
	"encoding/json"
	"sync"
)

// ScoreUpdate is the payload broadcast when a score is recorded.
type ScoreUpdate struct {
	RoundID    string `json:"round_id"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	HoleNumber int    `json:"hole_number"`
	Strokes    int    `json:"strokes"`
}

// Client is one connected watcher. Send is a buffered channel the hub
// writes outgoing frames to; the connection's writer goroutine drains it.
type Client struct {
	RoundID string
	Send    chan []byte
}

type event struct {
	roundID string
	data    []byte
}

// Hub tracks connected clients grouped by the round they watch. All map
// mutation happens on the Run goroutine, fed through channels, so clients
// can register and disconnect concurrently without races.
type Hub struct {
	clients    map[string]map[*Client]bool
	broadcast  chan event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates an empty hub. Call Run in a goroutine before using it.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run is the hub's event loop. It blocks forever and must run in its own
// goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.RoundID] == nil {
				h.clients[client.RoundID] = make(map[*Client]bool)
			}
			h.clients[client.RoundID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.drop(client)

		case ev := <-h.broadcast:
			h.mu.RLock()
			var stalled []*Client
			for client := range h.clients[ev.roundID] {
				select {
				case client.Send <- ev.data:
				default:
					stalled = append(stalled, client)
				}
			}
			h.mu.RUnlock()

			// Slow consumers get dropped rather than stalling everyone
			// else's updates. Eviction happens directly, never through the
			// unregister channel: this goroutine is its only receiver, so
			// sending to it from here would block the loop forever.
			for _, client := range stalled {
				h.drop(client)
			}
		}
	}
}

// drop removes a client and closes its send channel. Dropping a client that
// is already gone is a no-op, so the eviction path and a racing Unregister
// cannot double-close. Callers must not hold mu.
func (h *Hub) drop(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	watchers, ok := h.clients[client.RoundID]
	if !ok {
		return
	}
	if _, ok := watchers[client]; !ok {
		return
	}
	delete(watchers, client)
	close(client.Send)
	if len(watchers) == 0 {
		delete(h.clients, client.RoundID)
	}
}

// BroadcastScore sends a score update to every watcher of its round.
// Marshal failure is impossible for this payload shape, but a failed frame
// is simply dropped rather than taking down the caller.
func (h *Hub) BroadcastScore(update ScoreUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		return
	}
	h.broadcast <- event{roundID: update.RoundID, data: data}
}

// Register adds a client so it starts receiving updates for its round.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client when its connection closes.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}
