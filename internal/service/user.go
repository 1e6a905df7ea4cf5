package service

import (
	"context"
	"errors"
	"fmt"

	"pathway.app/server/internal/model"
	"pathway.app/server/internal/store"
)

// UserService is read-only: account creation and profile editing are
// owned by the identity collaborator.
type UserService interface {
	Get(ctx context.Context, id int64) (*model.User, error)
}

type userService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) UserService {
	return &userService{users: users}
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr(fmt.Errorf("loading user: %w", err))
	}
	return u, nil
}
