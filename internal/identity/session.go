package identity

import (
	"context"
	"errors"
	"fmt"

	"pathway.app/server/internal/store"
)

type sessionProvider struct {
	sessions store.SessionStore
}

// NewSessionProvider builds a Provider backed by the shared sessions
// table, so every server process resolves the same tokens.
func NewSessionProvider(sessions store.SessionStore) Provider {
	return &sessionProvider{sessions: sessions}
}

func (p *sessionProvider) Authenticate(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrInvalidCredential
	}

	sess, err := p.sessions.GetValidByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, fmt.Errorf("resolving session: %w", err)
	}

	return &Identity{
		UserID:   sess.UserID,
		UserType: sess.UserType,
		Email:    sess.Email,
	}, nil
}
