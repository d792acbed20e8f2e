package models

import "time"

// Client -> server event names.
const (
	EventUserOnline  = "user-online"
	EventUserOffline = "user-offline"
	EventJoinChat    = "join-chat"
	EventLeaveChat   = "leave-chat"
	EventSendMessage = "send-message"
	EventTyping      = "typing"
	EventStopTyping  = "stop-typing"
	EventMarkRead    = "mark-read"
)

// Server -> client event names.
const (
	EventUserStatus     = "user-status"
	EventReceiveMessage = "receive-message"
	EventUserTyping     = "user-typing"
	EventMessageRead    = "message-read"
	EventMessageError   = "message-error"
)

// EventEnvelope is the first-pass decode of an inbound frame; the event name
// selects which payload struct the frame is decoded into.
type EventEnvelope struct {
	Event string `json:"event"`
}

type PresencePayload struct {
	UserID int `json:"userId" validate:"required"`
}

type RoomPayload struct {
	ChatID string `json:"chatId" validate:"required,uuid4"`
}

type SendMessagePayload struct {
	ChatID      string `json:"chatId" validate:"required,uuid4"`
	SenderID    int    `json:"senderId" validate:"required"`
	SenderName  string `json:"senderName" validate:"required"`
	SenderEmail string `json:"senderEmail" validate:"required,email"`
	Content     string `json:"content" validate:"required"`
}

type TypingPayload struct {
	ChatID     string `json:"chatId" validate:"required,uuid4"`
	UserID     int    `json:"userId" validate:"required"`
	SenderName string `json:"senderName"`
}

type MarkReadPayload struct {
	MessageID int    `json:"messageId" validate:"required"`
	ChatID    string `json:"chatId" validate:"required,uuid4"`
}

type UserStatusEvent struct {
	Event       string `json:"event"`
	UserID      int    `json:"userId"`
	Status      string `json:"status"`
	OnlineUsers []int  `json:"onlineUsers"`
}

type ReceiveMessageEvent struct {
	Event      string    `json:"event"`
	ID         int       `json:"id"`
	ChatID     string    `json:"chatId"`
	Sender     int       `json:"sender"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

type UserTypingEvent struct {
	Event      string `json:"event"`
	UserID     int    `json:"userId"`
	SenderName string `json:"senderName,omitempty"`
	IsTyping   bool   `json:"isTyping"`
}

type MessageReadEvent struct {
	Event     string    `json:"event"`
	MessageID int       `json:"messageId"`
	ReadAt    time.Time `json:"readAt"`
}

type MessageErrorEvent struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}
