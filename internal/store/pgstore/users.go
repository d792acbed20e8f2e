package pgstore

import (
	"context"
	"errors"

	"pairchat-backend/internal/models"
	"pairchat-backend/internal/store"

	"github.com/jackc/pgx/v5"
)

func (s *PGStore) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	return s.pool.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
}

func (s *PGStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, name, email, password_hash, avatar, is_blocked, last_seen, created_at
		FROM users WHERE email = $1`
	return s.scanUser(s.pool.QueryRow(ctx, query, email))
}

func (s *PGStore) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT id, name, email, password_hash, avatar, is_blocked, last_seen, created_at
		FROM users WHERE id = $1`
	return s.scanUser(s.pool.QueryRow(ctx, query, id))
}

func (s *PGStore) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Avatar, &user.IsBlocked, &user.LastSeen, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *PGStore) ListUsers(ctx context.Context, excludeID int) ([]models.User, error) {
	query := `SELECT id, name, email, avatar, last_seen, created_at
		FROM users WHERE id <> $1 AND NOT is_blocked ORDER BY name`
	rows, err := s.pool.Query(ctx, query, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Avatar,
			&user.LastSeen, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *PGStore) TouchLastSeen(ctx context.Context, id int) error {
	_, err := s.pool.Exec(ctx, `UPDATE users SET last_seen = now() WHERE id = $1`, id)
	return err
}

func (s *PGStore) SetAvatar(ctx context.Context, id int, url string) error {
	_, err := s.pool.Exec(ctx, `UPDATE users SET avatar = $2 WHERE id = $1`, id, url)
	return err
}
