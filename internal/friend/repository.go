package friend

import (
	"context"
	"time"

	"github.com/google/uuid"
	model "parley/internal/friend/model"
)

type FriendRepository interface {
	// EdgeExists reports whether any edge links the two users, in either
	// direction and in either status
	EdgeExists(ctx context.Context, a, b uuid.UUID) (bool, error)

	InsertEdge(ctx context.Context, edge *model.Edge) error

	// AcceptEdge transitions pending -> accepted for the edge whose stored
	// target is accepterID. Returns the number of rows transitioned (0 or 1).
	AcceptEdge(ctx context.Context, requesterID, accepterID uuid.UUID, acceptedAt time.Time) (int64, error)

	// EdgesTouching returns every edge where userID is requester or target,
	// with both user relations loaded
	EdgesTouching(ctx context.Context, userID uuid.UUID) ([]*model.Edge, error)
}
