package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pathway.app/server/internal/model"
)

type userStore struct {
	db DBTX
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, email, full_name, user_type, created_at
		FROM users
		WHERE id = $1`, id)

	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.UserType, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
