// Package identity resolves bearer credentials to user identities.
// Credential issuance (login, JWT minting, session bookkeeping) is an
// external collaborator; this package only consumes its output.
package identity

import (
	"context"
	"errors"

	"pathway.app/server/internal/model"
)

var ErrInvalidCredential = errors.New("invalid or expired credential")

// Identity is the resolved actor: who is making the call and which side
// of the marketplace they are on.
type Identity struct {
	UserID   int64
	UserType model.UserType
	Email    string
}

// Provider turns an opaque bearer token into an Identity or rejects it.
type Provider interface {
	Authenticate(ctx context.Context, token string) (*Identity, error)
}
