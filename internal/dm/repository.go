package dm

import (
	"context"
	"time"

	"github.com/google/uuid"
	model "parley/internal/dm/model"
)

type MessageRepository interface {
	InsertMessage(ctx context.Context, msg *model.DirectMessage) error

	// MessagesBetween returns every message exchanged between the two users,
	// in both directions, ascending by creation time
	MessagesBetween(ctx context.Context, a, b uuid.UUID) ([]*model.DirectMessage, error)

	// MarkRead flips every unread message from senderID to readerID and
	// stamps readAt. Returns the number of rows transitioned.
	MarkRead(ctx context.Context, readerID, senderID uuid.UUID, readAt time.Time) (int64, error)
}
