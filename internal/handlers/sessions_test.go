package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionRegistry_MultipleHandles(t *testing.T) {
	reg := NewSessionRegistry()
	h1 := NewClient("h1", 1, "alice", "alice@example.com", &fakeConn{})
	h2 := NewClient("h2", 1, "alice", "alice@example.com", &fakeConn{})

	require.True(t, reg.MarkOnline(1, h1), "first handle should cross to online")
	require.False(t, reg.MarkOnline(1, h2), "second handle is not a transition")
	require.True(t, reg.IsOnline(1))

	require.False(t, reg.MarkOffline(1, h1.ID), "one handle remains")
	require.True(t, reg.IsOnline(1))
	require.True(t, reg.MarkOffline(1, h2.ID), "last handle crossed to offline")
	require.False(t, reg.IsOnline(1))
}

func TestSessionRegistry_MarkOnlineIdempotent(t *testing.T) {
	reg := NewSessionRegistry()
	h1 := NewClient("h1", 1, "alice", "alice@example.com", &fakeConn{})

	require.True(t, reg.MarkOnline(1, h1))
	require.False(t, reg.MarkOnline(1, h1), "re-registering the same handle is a no-op")
	require.True(t, reg.MarkOffline(1, h1.ID), "exactly one offline transition")
}

func TestSessionRegistry_MarkOfflineUnknownHandle(t *testing.T) {
	reg := NewSessionRegistry()
	require.False(t, reg.MarkOffline(1, "nope"))

	h1 := NewClient("h1", 1, "alice", "alice@example.com", &fakeConn{})
	reg.MarkOnline(1, h1)
	require.False(t, reg.MarkOffline(1, "nope"), "unregistered handle must not transition the user")
	require.True(t, reg.IsOnline(1))
}

func TestSessionRegistry_RemoveConnection(t *testing.T) {
	reg := NewSessionRegistry()
	h1 := NewClient("h1", 7, "bob", "bob@example.com", &fakeConn{})
	h2 := NewClient("h2", 7, "bob", "bob@example.com", &fakeConn{})
	reg.MarkOnline(7, h1)
	reg.MarkOnline(7, h2)

	userID, wentOffline, found := reg.RemoveConnection("h1")
	require.True(t, found)
	require.Equal(t, 7, userID)
	require.False(t, wentOffline)

	userID, wentOffline, found = reg.RemoveConnection("h2")
	require.True(t, found)
	require.Equal(t, 7, userID)
	require.True(t, wentOffline)

	_, _, found = reg.RemoveConnection("h2")
	require.False(t, found)
}

func TestSessionRegistry_OnlineUsersSnapshot(t *testing.T) {
	reg := NewSessionRegistry()
	a1 := NewClient("a1", 2, "a", "a@example.com", &fakeConn{})
	a2 := NewClient("a2", 2, "a", "a@example.com", &fakeConn{})
	b1 := NewClient("b1", 1, "b", "b@example.com", &fakeConn{})
	reg.MarkOnline(2, a1)
	reg.MarkOnline(2, a2)
	reg.MarkOnline(1, b1)

	// Two tabs must not duplicate the user in the snapshot.
	require.Equal(t, []int{1, 2}, reg.OnlineUsers())
}
