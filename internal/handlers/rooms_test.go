package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func subscriberIDs(tracker *RoomTracker, chatID string) []string {
	var ids []string
	for _, c := range tracker.Subscribers(chatID) {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestRoomTracker_JoinLeave(t *testing.T) {
	tracker := NewRoomTracker()
	h1 := NewClient("h1", 1, "a", "a@example.com", &fakeConn{})
	h2 := NewClient("h2", 2, "b", "b@example.com", &fakeConn{})

	tracker.Join("chat-1", h1)
	tracker.Join("chat-1", h2)
	tracker.Join("chat-1", h1) // idempotent
	require.ElementsMatch(t, []string{"h1", "h2"}, subscriberIDs(tracker, "chat-1"))

	tracker.Leave("chat-1", "h1")
	require.ElementsMatch(t, []string{"h2"}, subscriberIDs(tracker, "chat-1"))

	tracker.Leave("chat-1", "h1") // already gone
	tracker.Leave("chat-1", "h2")
	require.Empty(t, tracker.Subscribers("chat-1"))
}

func TestRoomTracker_RemoveConnectionFromAllChats(t *testing.T) {
	tracker := NewRoomTracker()
	h1 := NewClient("h1", 1, "a", "a@example.com", &fakeConn{})
	h2 := NewClient("h2", 2, "b", "b@example.com", &fakeConn{})

	tracker.Join("c1", h1)
	tracker.Join("c2", h1)
	tracker.Join("c2", h2)

	tracker.RemoveConnection("h1")

	require.Empty(t, tracker.Subscribers("c1"))
	require.ElementsMatch(t, []string{"h2"}, subscriberIDs(tracker, "c2"))
}

func TestRoomTracker_SubscribersUnknownChat(t *testing.T) {
	tracker := NewRoomTracker()
	require.Nil(t, tracker.Subscribers("nope"))
}
