package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs runs one connection until the peer leaves.
func ServeWs(hub *Hub, conn *websocket.Conn) {
	client := &Client{
		ID:   uuid.New(),
		Hub:  hub,
		Conn: conn,
		Send: make(chan []byte, clientSendBufferLength),
	}
	if !hub.join(client) {
		conn.Close()
		return
	}

	go client.writePump()
	client.readPump()
}

// Handler upgrades GET requests to the status stream.
func Handler(hub *Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return websocket.New(func(conn *websocket.Conn) {
			ServeWs(hub, conn)
		})(c)
	}
}
