package handlers

import (
	"sort"
	"sync"

	"github.com/samber/lo"
)

// SessionRegistry maps a user id to the set of its live connection handles.
// A user is online iff the set is non-empty; the registry reports the
// zero-crossing transitions so the caller can broadcast presence exactly once
// per transition, however many tabs the user has open.
type SessionRegistry struct {
	mu sync.RWMutex
	// userID -> connID -> client
	byUser map[int]map[string]*Client
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{byUser: make(map[int]map[string]*Client)}
}

// MarkOnline registers the handle under the user. It reports whether the user
// transitioned from offline to online. Re-registering the same handle is a
// no-op.
func (r *SessionRegistry) MarkOnline(userID int, c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	handles, ok := r.byUser[userID]
	if !ok {
		handles = make(map[string]*Client)
		r.byUser[userID] = handles
	}
	cameOnline := len(handles) == 0
	handles[c.ID] = c
	return cameOnline
}

// MarkOffline removes the handle from the user. It reports whether the user's
// handle set became empty. Removing an unregistered handle is a no-op.
func (r *SessionRegistry) MarkOffline(userID int, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	handles, ok := r.byUser[userID]
	if !ok {
		return false
	}
	if _, ok := handles[connID]; !ok {
		return false
	}
	delete(handles, connID)
	if len(handles) == 0 {
		delete(r.byUser, userID)
		return true
	}
	return false
}

// RemoveConnection removes the handle from whichever user owns it, for
// disconnects where the user id is not supplied. It returns the owning user
// and whether that user went offline.
func (r *SessionRegistry) RemoveConnection(connID string) (userID int, wentOffline, found bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for uid, handles := range r.byUser {
		if _, ok := handles[connID]; !ok {
			continue
		}
		delete(handles, connID)
		if len(handles) == 0 {
			delete(r.byUser, uid)
			return uid, true, true
		}
		return uid, false, true
	}
	return 0, false, false
}

func (r *SessionRegistry) IsOnline(userID int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID]) > 0
}

// OnlineUsers returns a sorted snapshot of users with at least one handle.
func (r *SessionRegistry) OnlineUsers() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := lo.Keys(r.byUser)
	sort.Ints(users)
	return users
}
