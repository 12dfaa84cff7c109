package handlers

import (
	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"

	"github.com/golfbuddy/backend/internal/courses"
	"github.com/golfbuddy/backend/internal/websocket"
)

// WebsocketUpgrade rejects plain HTTP requests on the websocket route before
// the upgrade handler runs.
func WebsocketUpgrade(c *fiber.Ctx) error {
	if fiberws.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// LiveScores returns the websocket handler for GET /ws/rounds/:roundID.
// Each connection subscribes to one round's score stream; the hub pushes a
// frame per recorded score until the client disconnects.
func LiveScores(hub *websocket.Hub) fiber.Handler {
	return fiberws.New(func(conn *fiberws.Conn) {
		roundID := conn.Params("roundID")
		if _, ok := courses.ScheduledRoundByID(roundID); !ok {
			conn.Close()
			return
		}

		client := &websocket.Client{
			RoundID: roundID,
			Send:    make(chan []byte, 32),
		}
		hub.Register(client)
		defer hub.Unregister(client)

		// Reads are discarded, but the read loop is what notices the peer
		// going away.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case data, ok := <-client.Send:
				if !ok {
					return
				}
				if err := conn.WriteMessage(fiberws.TextMessage, data); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	})
}
