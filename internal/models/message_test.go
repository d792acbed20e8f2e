package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummaryTruncation(t *testing.T) {
	short := Message{Content: "hello"}
	require.Equal(t, "hello", short.Summary())

	long := Message{Content: strings.Repeat("x", 150)}
	require.Equal(t, strings.Repeat("x", 100), long.Summary())

	// Truncation counts runes, not bytes.
	multibyte := Message{Content: strings.Repeat("é", 150)}
	require.Equal(t, strings.Repeat("é", 100), multibyte.Summary())

	exact := Message{Content: strings.Repeat("x", 100)}
	require.Equal(t, exact.Content, exact.Summary())
}

func TestChatParticipants(t *testing.T) {
	chat := Chat{ID: "c", UserA: 1, UserB: 2}
	require.True(t, chat.HasParticipant(1))
	require.True(t, chat.HasParticipant(2))
	require.False(t, chat.HasParticipant(3))
	require.Equal(t, 2, chat.OtherParticipant(1))
	require.Equal(t, 1, chat.OtherParticipant(2))
}
