package models

import "time"

// Chat is a conversation between exactly two users. The participant pair is
// stored ordered (UserA < UserB) so a unique constraint over the two columns
// guarantees at most one chat per pair.
type Chat struct {
	ID                string     `json:"id"`
	UserA             int        `json:"user_a"`
	UserB             int        `json:"user_b"`
	LastMessage       *string    `json:"last_message"`
	LastMessageTime   *time.Time `json:"last_message_time"`
	LastMessageSender *int       `json:"last_message_sender"`
	CreatedAt         time.Time  `json:"created_at"`
}

func (c *Chat) HasParticipant(userID int) bool {
	return c.UserA == userID || c.UserB == userID
}

// OtherParticipant returns the peer of userID in this chat.
func (c *Chat) OtherParticipant(userID int) int {
	if c.UserA == userID {
		return c.UserB
	}
	return c.UserA
}

type CreateChatRequest struct {
	ParticipantID int `json:"participant_id" validate:"required"`
}

// ChatListItem is the shape returned by the chat list endpoint: the chat's
// summary fields plus the other participant's public info.
type ChatListItem struct {
	ID              string     `json:"id"`
	Other           *User      `json:"other"`
	LastMessage     *string    `json:"last_message"`
	LastMessageTime *time.Time `json:"last_message_time"`
}
