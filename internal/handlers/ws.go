package handlers

import (
	"context"
	"log"

	"pairchat-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// WebSocketHandler runs the read loop for one relay connection.
func WebSocketHandler(relay *Relay) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		// Identity was bound by the auth middleware before the upgrade.
		userID := conn.Locals("user_id").(int)
		name, _ := conn.Locals("name").(string)
		email, _ := conn.Locals("email").(string)

		client := NewClient(uuid.New().String(), userID, name, email, conn)
		relay.Connect(client)
		defer func() {
			relay.Disconnect(client)
			conn.Close()
		}()

		for {
			msgType, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("error: %v", err)
				}
				break
			}
			if msgType != websocket.TextMessage {
				continue
			}
			relay.HandleEvent(context.Background(), client, msg)
		}
	})
}

// WSUpgradeMiddleware upgrades the connection to WebSocket
func WSUpgradeMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("allowed", true)
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// AuthMiddleware verifies the JWT token and binds the user identity
func AuthMiddleware(c *fiber.Ctx) error {
	// Get token from query param `access_token` or Authorization header
	token := c.Query("access_token")
	if token == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			token = authHeader[7:]
		}
	}

	if token == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing token")
	}

	claims, err := services.ValidateToken(token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	// claims["user_id"] comes as float64 from JSON
	if uid, ok := claims["user_id"].(float64); ok {
		c.Locals("user_id", int(uid))
	} else {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	if n, ok := claims["name"].(string); ok {
		c.Locals("name", n)
	}
	if e, ok := claims["email"].(string); ok {
		c.Locals("email", e)
	}

	return c.Next()
}
