package gateway

import (
	"context"

	"parley/internal/user"
	appErrors "parley/pkg/errors"

	"github.com/google/uuid"
)

// UsernameAuthenticator resolves a token that is simply the username. It
// stands in for the real session service, which owns credential storage and
// verification and is deliberately outside this engine.
type UsernameAuthenticator struct {
	users user.UserRepository
}

func NewUsernameAuthenticator(users user.UserRepository) *UsernameAuthenticator {
	return &UsernameAuthenticator{users: users}
}

func (a *UsernameAuthenticator) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, appErrors.ErrNotAuthenticated
	}

	u, err := a.users.GetUserByUsername(ctx, token)
	if err != nil {
		return uuid.Nil, appErrors.ErrNotAuthenticated
	}
	return u.ID, nil
}
