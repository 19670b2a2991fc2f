package dm

import (
	"context"

	"github.com/google/uuid"
)

type MessageUsecase interface {
	// Send persists the message first, then echoes it to the sender's own
	// connection and pushes it to the receiver if online. An offline
	// receiver is not an error; history replay covers the gap.
	Send(ctx context.Context, cmd SendCommand) (*MessageDTO, error)

	// History is a pure read of both directions between the pair, ascending
	// by creation time
	History(ctx context.Context, a, b uuid.UUID) ([]*MessageDTO, error)

	// MarkRead transitions every unread message from sender to reader and
	// returns the count; a read receipt is pushed to the sender when the
	// count is positive and the sender is online
	MarkRead(ctx context.Context, readerID, senderID uuid.UUID) (int64, error)
}
