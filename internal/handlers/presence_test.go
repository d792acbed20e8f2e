package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresenceBroadcaster_EmitsToAllAttached(t *testing.T) {
	sessions := NewSessionRegistry()
	b := NewPresenceBroadcaster(sessions)

	c1 := &fakeConn{}
	c2 := &fakeConn{}
	h1 := NewClient("h1", 1, "a", "a@example.com", c1)
	h2 := NewClient("h2", 2, "b", "b@example.com", c2)
	b.Attach(h1)
	b.Attach(h2)
	sessions.MarkOnline(1, h1)

	b.UserStatus(1, "online")

	for _, conn := range []*fakeConn{c1, c2} {
		events := statuses(conn)
		require.Len(t, events, 1)
		require.Equal(t, "user-status", events[0].Event)
		require.Equal(t, []int{1}, events[0].OnlineUsers)
	}
}

func TestPresenceBroadcaster_DetachStopsDelivery(t *testing.T) {
	sessions := NewSessionRegistry()
	b := NewPresenceBroadcaster(sessions)

	c1 := &fakeConn{}
	h1 := NewClient("h1", 1, "a", "a@example.com", c1)
	b.Attach(h1)
	b.Detach("h1")

	b.UserStatus(1, "offline")
	require.Empty(t, c1.all())
}
