package pgstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, pool *pgxpool.Pool) (*PGStore, error) {
	s := &PGStore{pool: pool}
	if err := s.createTables(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PGStore) createTables(ctx context.Context) error {
	// Simplified for brevity, ideally use migrations
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		avatar TEXT,
		is_blocked BOOLEAN NOT NULL DEFAULT FALSE,
		last_seen TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS chats (
		id UUID PRIMARY KEY,
		user_a INTEGER NOT NULL REFERENCES users(id),
		user_b INTEGER NOT NULL REFERENCES users(id),
		last_message TEXT,
		last_message_time TIMESTAMPTZ,
		last_message_sender INTEGER REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT chats_pair_ordered CHECK (user_a < user_b),
		CONSTRAINT chats_pair_unique UNIQUE (user_a, user_b)
	);

	CREATE TABLE IF NOT EXISTS messages (
		id SERIAL PRIMARY KEY,
		chat_id UUID NOT NULL REFERENCES chats(id),
		sender INTEGER NOT NULL REFERENCES users(id),
		sender_name TEXT NOT NULL,
		sender_email TEXT NOT NULL,
		content TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		read_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS messages_chat_created_idx ON messages (chat_id, created_at, id);
	`

	_, err := s.pool.Exec(ctx, query)
	return err
}
