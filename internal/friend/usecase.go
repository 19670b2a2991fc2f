package friend

import (
	"context"

	"github.com/google/uuid"
)

type FriendUsecase interface {
	// Request creates a pending edge from requester to target. Rejected when
	// any edge already exists between the pair, in either direction.
	Request(ctx context.Context, requesterID, targetID uuid.UUID) error

	// Accept transitions the pending edge whose target is accepter. A silent
	// no-op when no such edge exists.
	Accept(ctx context.Context, accepterID, requesterID uuid.UUID) error

	// List partitions every edge touching userID by status and direction
	List(ctx context.Context, userID uuid.UUID) (*RelationshipsDTO, error)
}
