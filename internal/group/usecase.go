package group

import (
	"context"

	"github.com/google/uuid"
)

type GroupUsecase interface {
	// Create persists the group with the owner pre-accepted and one pending
	// membership per invitee, joins the owner to the broadcast channel, and
	// pushes a live invite to every online invitee
	Create(ctx context.Context, cmd CreateCommand) (*GroupDTO, error)

	// AcceptInvite transitions the member's pending membership; on success
	// the member joins the broadcast channel and current occupants are
	// notified. A silent no-op when no pending row exists.
	AcceptInvite(ctx context.Context, memberID, groupID uuid.UUID) error

	// Post persists a group message and broadcasts it to the channel.
	// Posting is restricted to accepted members.
	Post(ctx context.Context, senderID, groupID uuid.UUID, text string) (*GroupMessageDTO, error)

	// History returns the group's messages, ascending by creation time
	History(ctx context.Context, requesterID, groupID uuid.UUID) ([]*GroupMessageDTO, error)
}
