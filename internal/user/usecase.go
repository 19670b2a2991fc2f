package user

import (
	"context"

	"github.com/google/uuid"
	"parley/internal/registry"
)

type UserUsecase interface {
	// Connect installs the connection for this identity (replacing any older
	// one) and stamps last activity
	Connect(ctx context.Context, userID uuid.UUID, conn registry.Conn) error

	// Disconnect stamps last activity and releases the registry entry, but
	// only if conn is still the one installed for this identity
	Disconnect(ctx context.Context, userID uuid.UUID, conn registry.Conn) error

	// Presence projects online/offline status plus a human-readable recency
	// of the stored last-activity timestamp
	Presence(ctx context.Context, userID uuid.UUID) (*PresenceDTO, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error)
	GetProfileByUsername(ctx context.Context, username string) (*ProfileDTO, error)
}
