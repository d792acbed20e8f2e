package handlers

import "sync"

// RoomTracker maps a chat id to the set of connection handles currently
// viewing that chat. It is a pure membership structure: whether the handle's
// user may watch the chat is checked by the relay before Join is called.
type RoomTracker struct {
	mu sync.RWMutex
	// chatID -> connID -> client
	rooms map[string]map[string]*Client
}

func NewRoomTracker() *RoomTracker {
	return &RoomTracker{rooms: make(map[string]map[string]*Client)}
}

func (t *RoomTracker) Join(chatID string, c *Client) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rooms[chatID]; !ok {
		t.rooms[chatID] = make(map[string]*Client)
	}
	t.rooms[chatID][c.ID] = c
}

func (t *RoomTracker) Leave(chatID, connID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if conns, ok := t.rooms[chatID]; ok {
		delete(conns, connID)
		if len(conns) == 0 {
			delete(t.rooms, chatID)
		}
	}
}

// Subscribers returns a snapshot of the handles joined to the chat, so the
// caller can fan out without holding the tracker's lock.
func (t *RoomTracker) Subscribers(chatID string) []*Client {
	t.mu.RLock()
	defer t.mu.RUnlock()

	conns, ok := t.rooms[chatID]
	if !ok {
		return nil
	}
	subs := make([]*Client, 0, len(conns))
	for _, c := range conns {
		subs = append(subs, c)
	}
	return subs
}

// RemoveConnection drops the handle from every chat it joined.
func (t *RoomTracker) RemoveConnection(connID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for chatID, conns := range t.rooms {
		if _, ok := conns[connID]; ok {
			delete(conns, connID)
			if len(conns) == 0 {
				delete(t.rooms, chatID)
			}
		}
	}
}
