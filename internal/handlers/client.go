package handlers

import (
	"sync"

	"pairchat-backend/internal/utils"
)

// Conn is the write side of one live connection. The websocket connection
// satisfies it; tests substitute a recorder.
type Conn interface {
	WriteJSON(v interface{}) error
}

// Client is one live connection handle. The user identity is bound once from
// the JWT at upgrade time and trusted for the connection's lifetime.
type Client struct {
	ID     string
	UserID int
	Name   string
	Email  string

	conn Conn
	mu   sync.Mutex
}

func NewClient(id string, userID int, name, email string, conn Conn) *Client {
	return &Client{ID: id, UserID: userID, Name: name, Email: email, conn: conn}
}

// Send writes one JSON event to the connection. Fiber's websocket conn is not
// safe for concurrent writes, so writes are serialized per client.
func (c *Client) Send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// emit delivers an event to a handle, treating failures as a disconnect in
// progress: the read loop will clean the handle up, so a failed write is
// logged and otherwise a no-op.
func emit(c *Client, v interface{}) {
	if err := c.Send(v); err != nil {
		utils.LogError(err, "emit")
	}
}
