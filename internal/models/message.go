package models

import "time"

// Message is one persisted chat message. SenderName and SenderEmail are
// captured at send time so history renders the name the sender had when the
// message was written, even if the profile changes later.
type Message struct {
	ID          int        `json:"id"`
	ChatID      string     `json:"chat_id"`
	SenderID    int        `json:"sender"`
	SenderName  string     `json:"sender_name"`
	SenderEmail string     `json:"sender_email"`
	Content     string     `json:"content"`
	IsRead      bool       `json:"is_read"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SummaryLimit is the maximum length, in runes, of a chat's last-message
// preview.
const SummaryLimit = 100

// Summary returns the message content truncated for the chat list preview.
func (m *Message) Summary() string {
	return TruncateRunes(m.Content, SummaryLimit)
}

func TruncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
