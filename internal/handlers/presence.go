package handlers

import (
	"sync"

	"pairchat-backend/internal/models"
)

// PresenceBroadcaster emits user-status events to every live connection.
// Presence is global, not scoped to a chat: a client on the contact list
// screen needs the update even though it has joined no room.
type PresenceBroadcaster struct {
	sessions *SessionRegistry

	mu    sync.RWMutex
	conns map[string]*Client
}

func NewPresenceBroadcaster(sessions *SessionRegistry) *PresenceBroadcaster {
	return &PresenceBroadcaster{sessions: sessions, conns: make(map[string]*Client)}
}

// Attach starts delivering presence broadcasts to the connection.
func (b *PresenceBroadcaster) Attach(c *Client) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conns[c.ID] = c
}

func (b *PresenceBroadcaster) Detach(connID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.conns, connID)
}

// UserStatus broadcasts a presence transition with a snapshot of all online
// users to every connected client.
func (b *PresenceBroadcaster) UserStatus(userID int, status string) {
	event := models.UserStatusEvent{
		Event:       models.EventUserStatus,
		UserID:      userID,
		Status:      status,
		OnlineUsers: b.sessions.OnlineUsers(),
	}

	b.mu.RLock()
	targets := make([]*Client, 0, len(b.conns))
	for _, c := range b.conns {
		targets = append(targets, c)
	}
	b.mu.RUnlock()

	for _, c := range targets {
		emit(c, event)
	}
}
