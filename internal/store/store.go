package store

import (
	"context"
	"errors"
	"time"

	"pairchat-backend/internal/models"
)

var ErrNotFound = errors.New("not found")

// Store is the durable persistence surface consumed by the REST handlers and
// the relay dispatcher.
type Store interface {
	// User operations
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	ListUsers(ctx context.Context, excludeID int) ([]models.User, error)
	TouchLastSeen(ctx context.Context, id int) error
	SetAvatar(ctx context.Context, id int, url string) error

	// Chat operations
	GetOrCreateChat(ctx context.Context, userA, userB int) (*models.Chat, bool, error)
	FindChatByID(ctx context.Context, chatID string) (*models.Chat, error)
	ListChats(ctx context.Context, userID int) ([]models.Chat, error)
	UpdateChatSummary(ctx context.Context, chatID, lastMessage string, at time.Time, senderID int) error

	// Message operations
	CreateMessage(ctx context.Context, msg *models.Message) error
	ListMessages(ctx context.Context, chatID string) ([]models.Message, error)
	MarkMessageRead(ctx context.Context, messageID int) (time.Time, error)
}
