package pgstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pairchat-backend/internal/models"
	"pairchat-backend/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const chatColumns = `id, user_a, user_b, last_message, last_message_time, last_message_sender, created_at`

// GetOrCreateChat returns the chat between the two users, creating it if it
// does not exist yet. The pair is normalized (low id first) so both argument
// orders hit the same row, and the insert races safely against a concurrent
// creator via ON CONFLICT DO NOTHING.
func (s *PGStore) GetOrCreateChat(ctx context.Context, userA, userB int) (*models.Chat, bool, error) {
	if userA == userB {
		return nil, false, fmt.Errorf("chat requires two distinct participants")
	}
	if userA > userB {
		userA, userB = userB, userA
	}

	tag, err := s.pool.Exec(ctx,
		`INSERT INTO chats (id, user_a, user_b) VALUES ($1, $2, $3)
		 ON CONFLICT (user_a, user_b) DO NOTHING`,
		uuid.New().String(), userA, userB)
	if err != nil {
		return nil, false, err
	}
	created := tag.RowsAffected() > 0

	var chat models.Chat
	query := `SELECT ` + chatColumns + ` FROM chats WHERE user_a = $1 AND user_b = $2`
	if err := s.pool.QueryRow(ctx, query, userA, userB).Scan(
		&chat.ID, &chat.UserA, &chat.UserB, &chat.LastMessage,
		&chat.LastMessageTime, &chat.LastMessageSender, &chat.CreatedAt); err != nil {
		return nil, false, err
	}
	return &chat, created, nil
}

func (s *PGStore) FindChatByID(ctx context.Context, chatID string) (*models.Chat, error) {
	var chat models.Chat
	query := `SELECT ` + chatColumns + ` FROM chats WHERE id = $1`
	err := s.pool.QueryRow(ctx, query, chatID).Scan(
		&chat.ID, &chat.UserA, &chat.UserB, &chat.LastMessage,
		&chat.LastMessageTime, &chat.LastMessageSender, &chat.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (s *PGStore) ListChats(ctx context.Context, userID int) ([]models.Chat, error) {
	query := `SELECT ` + chatColumns + ` FROM chats
		WHERE user_a = $1 OR user_b = $1
		ORDER BY last_message_time DESC NULLS LAST, created_at DESC`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []models.Chat
	for rows.Next() {
		var chat models.Chat
		if err := rows.Scan(&chat.ID, &chat.UserA, &chat.UserB, &chat.LastMessage,
			&chat.LastMessageTime, &chat.LastMessageSender, &chat.CreatedAt); err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	return chats, rows.Err()
}

func (s *PGStore) UpdateChatSummary(ctx context.Context, chatID, lastMessage string, at time.Time, senderID int) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE chats SET last_message = $2, last_message_time = $3, last_message_sender = $4 WHERE id = $1`,
		chatID, lastMessage, at, senderID)
	return err
}
