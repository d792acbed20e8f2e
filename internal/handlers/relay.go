package handlers

import (
	"context"
	"strings"

	"pairchat-backend/internal/models"
	"pairchat-backend/internal/store"
	"pairchat-backend/internal/utils"

	"github.com/go-playground/validator/v10"
)

// Relay is the dispatcher for the real-time event surface. It validates
// inbound events, persists through the store, and fans out to the session and
// room trackers. It keeps no state of its own beyond references to them.
type Relay struct {
	store    store.Store
	Sessions *SessionRegistry
	Rooms    *RoomTracker
	Presence *PresenceBroadcaster
	validate *validator.Validate
}

func NewRelay(st store.Store) *Relay {
	sessions := NewSessionRegistry()
	return &Relay{
		store:    st,
		Sessions: sessions,
		Rooms:    NewRoomTracker(),
		Presence: NewPresenceBroadcaster(sessions),
		validate: validator.New(),
	}
}

// Connect registers a freshly upgraded connection for presence broadcasts.
func (r *Relay) Connect(c *Client) {
	r.Presence.Attach(c)
}

// Disconnect purges every trace of the handle and emits at most one offline
// transition. Safe to call for connections that never announced themselves.
func (r *Relay) Disconnect(c *Client) {
	r.Rooms.RemoveConnection(c.ID)
	r.Presence.Detach(c.ID)
	if userID, wentOffline, ok := r.Sessions.RemoveConnection(c.ID); ok && wentOffline {
		r.Presence.UserStatus(userID, "offline")
	}
}

// HandleEvent dispatches one inbound frame from the connection's read loop.
// Events from the same connection are handled to completion in order; events
// from different connections interleave freely.
func (r *Relay) HandleEvent(ctx context.Context, c *Client, raw []byte) {
	var env models.EventEnvelope
	if err := utils.SafeJSONParse(raw, &env); err != nil {
		r.reject(c, "invalid event")
		return
	}

	switch env.Event {
	case models.EventUserOnline:
		r.handleUserOnline(c, raw)
	case models.EventUserOffline:
		r.handleUserOffline(c, raw)
	case models.EventJoinChat:
		r.handleJoinChat(ctx, c, raw)
	case models.EventLeaveChat:
		r.handleLeaveChat(c, raw)
	case models.EventSendMessage:
		r.handleSendMessage(ctx, c, raw)
	case models.EventTyping:
		r.handleTyping(c, raw, true)
	case models.EventStopTyping:
		r.handleTyping(c, raw, false)
	case models.EventMarkRead:
		r.handleMarkRead(ctx, c, raw)
	default:
		r.reject(c, "unknown event")
	}
}

func (r *Relay) handleUserOnline(c *Client, raw []byte) {
	var p models.PresencePayload
	if !r.decode(c, raw, &p) {
		return
	}
	if p.UserID != c.UserID {
		r.reject(c, "identity mismatch")
		return
	}
	if r.Sessions.MarkOnline(p.UserID, c) {
		r.Presence.UserStatus(p.UserID, "online")
	}
}

func (r *Relay) handleUserOffline(c *Client, raw []byte) {
	var p models.PresencePayload
	if !r.decode(c, raw, &p) {
		return
	}
	if p.UserID != c.UserID {
		r.reject(c, "identity mismatch")
		return
	}
	if r.Sessions.MarkOffline(p.UserID, c.ID) {
		r.Presence.UserStatus(p.UserID, "offline")
	}
}

func (r *Relay) handleJoinChat(ctx context.Context, c *Client, raw []byte) {
	var p models.RoomPayload
	if !r.decode(c, raw, &p) {
		return
	}

	// Authorization happens here, once, so the tracker stays a pure
	// membership structure.
	chat, err := r.store.FindChatByID(ctx, p.ChatID)
	if err != nil {
		r.reject(c, "chat not found")
		return
	}
	if !chat.HasParticipant(c.UserID) {
		r.reject(c, "not a participant")
		return
	}
	r.Rooms.Join(p.ChatID, c)
}

func (r *Relay) handleLeaveChat(c *Client, raw []byte) {
	var p models.RoomPayload
	if !r.decode(c, raw, &p) {
		return
	}
	r.Rooms.Leave(p.ChatID, c.ID)
}

func (r *Relay) handleSendMessage(ctx context.Context, c *Client, raw []byte) {
	var p models.SendMessagePayload
	if !r.decode(c, raw, &p) {
		return
	}
	if p.SenderID != c.UserID {
		r.reject(c, "identity mismatch")
		return
	}
	content := strings.TrimSpace(p.Content)
	if content == "" {
		r.reject(c, "empty message")
		return
	}

	msg := &models.Message{
		ChatID:      p.ChatID,
		SenderID:    p.SenderID,
		SenderName:  p.SenderName,
		SenderEmail: p.SenderEmail,
		Content:     content,
	}
	if err := r.store.CreateMessage(ctx, msg); err != nil {
		utils.LogError(err, "CreateMessage")
		r.reject(c, "Failed to send message")
		return
	}

	// The summary is display metadata; if this update fails the message is
	// already durable and fanned out, so the failure is advisory.
	r.advisory("UpdateChatSummary",
		r.store.UpdateChatSummary(ctx, p.ChatID, msg.Summary(), msg.CreatedAt, p.SenderID))

	event := models.ReceiveMessageEvent{
		Event:      models.EventReceiveMessage,
		ID:         msg.ID,
		ChatID:     msg.ChatID,
		Sender:     msg.SenderID,
		SenderName: msg.SenderName,
		Content:    msg.Content,
		IsRead:     false,
		CreatedAt:  msg.CreatedAt,
	}
	// Everyone watching the chat gets the message, the sender's own other
	// connections included, so multiple tabs stay consistent.
	for _, sub := range r.Rooms.Subscribers(p.ChatID) {
		emit(sub, event)
	}
}

func (r *Relay) handleTyping(c *Client, raw []byte, isTyping bool) {
	var p models.TypingPayload
	if !r.decode(c, raw, &p) {
		return
	}

	event := models.UserTypingEvent{
		Event:    models.EventUserTyping,
		UserID:   p.UserID,
		IsTyping: isTyping,
	}
	if isTyping {
		event.SenderName = p.SenderName
	}
	for _, sub := range r.Rooms.Subscribers(p.ChatID) {
		if sub.ID == c.ID {
			continue
		}
		emit(sub, event)
	}
}

func (r *Relay) handleMarkRead(ctx context.Context, c *Client, raw []byte) {
	var p models.MarkReadPayload
	if !r.decode(c, raw, &p) {
		return
	}

	readAt, err := r.store.MarkMessageRead(ctx, p.MessageID)
	if err != nil {
		// Read receipts are advisory: the failure is logged and the event
		// dropped without surfacing an error to the user.
		r.advisory("MarkMessageRead", err)
		return
	}

	event := models.MessageReadEvent{
		Event:     models.EventMessageRead,
		MessageID: p.MessageID,
		ReadAt:    readAt,
	}
	for _, sub := range r.Rooms.Subscribers(p.ChatID) {
		emit(sub, event)
	}
}

// decode unmarshals and validates an event payload, rejecting the frame back
// to the originator on failure.
func (r *Relay) decode(c *Client, raw []byte, v interface{}) bool {
	if err := utils.SafeJSONParse(raw, v); err != nil {
		r.reject(c, "invalid event")
		return false
	}
	if err := r.validate.Struct(v); err != nil {
		r.reject(c, "invalid event")
		return false
	}
	return true
}

// reject emits a message-error to the originating connection only.
func (r *Relay) reject(c *Client, reason string) {
	emit(c, models.MessageErrorEvent{Event: models.EventMessageError, Message: reason})
}

// advisory is the named best-effort policy: the error is recorded and then
// deliberately discarded, never reaching the client.
func (r *Relay) advisory(op string, err error) {
	utils.LogError(err, op)
}

// OnlineStatus is used by the REST handlers so they share the registry's view
// of presence.
func (r *Relay) OnlineStatus(userID int) string {
	if r.Sessions.IsOnline(userID) {
		return "online"
	}
	return "offline"
}
