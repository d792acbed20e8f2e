package pgstore

import (
	"context"
	"errors"
	"time"

	"pairchat-backend/internal/models"
	"pairchat-backend/internal/store"

	"github.com/jackc/pgx/v5"
)

func (s *PGStore) CreateMessage(ctx context.Context, msg *models.Message) error {
	query := `INSERT INTO messages (chat_id, sender, sender_name, sender_email, content, is_read)
		VALUES ($1, $2, $3, $4, $5, FALSE) RETURNING id, created_at`
	return s.pool.QueryRow(ctx, query, msg.ChatID, msg.SenderID, msg.SenderName,
		msg.SenderEmail, msg.Content).Scan(&msg.ID, &msg.CreatedAt)
}

func (s *PGStore) ListMessages(ctx context.Context, chatID string) ([]models.Message, error) {
	query := `SELECT id, chat_id, sender, sender_name, sender_email, content, is_read, read_at, created_at
		FROM messages WHERE chat_id = $1 ORDER BY created_at, id`
	rows, err := s.pool.Query(ctx, query, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.ID, &msg.ChatID, &msg.SenderID, &msg.SenderName,
			&msg.SenderEmail, &msg.Content, &msg.IsRead, &msg.ReadAt, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// MarkMessageRead flips the read flag and returns the read timestamp. Calling
// it again on an already-read message keeps the original timestamp, so the
// transition is idempotent.
func (s *PGStore) MarkMessageRead(ctx context.Context, messageID int) (time.Time, error) {
	var readAt time.Time
	query := `UPDATE messages SET is_read = TRUE, read_at = COALESCE(read_at, now())
		WHERE id = $1 RETURNING read_at`
	err := s.pool.QueryRow(ctx, query, messageID).Scan(&readAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, store.ErrNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	return readAt, nil
}
