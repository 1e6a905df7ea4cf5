package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pathway.app/server/internal/model"
)

type sessionStore struct {
	db DBTX
}

// GetValidByToken resolves a bearer token to its session, expired
// sessions excluded. Session issuance lives outside this service.
func (s *sessionStore) GetValidByToken(ctx context.Context, token string) (*model.Session, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, token, user_id, user_type, email, expires_at, created_at
		FROM sessions
		WHERE token = $1 AND expires_at > NOW()`, token)

	var sess model.Session
	err := row.Scan(&sess.ID, &sess.Token, &sess.UserID, &sess.UserType, &sess.Email, &sess.ExpiresAt, &sess.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sess, nil
}
