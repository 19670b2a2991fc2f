package group

import (
	"context"
	"time"

	"github.com/google/uuid"
	model "parley/internal/group/model"
)

type GroupRepository interface {
	// CreateGroupWithMembers inserts the group row plus all membership rows
	// (owner pre-accepted, invitees pending) in one transaction
	CreateGroupWithMembers(ctx context.Context, g *model.Group, memberships []*model.Membership) error

	GetGroupByID(ctx context.Context, id uuid.UUID) (*model.Group, error)

	// AcceptMembership transitions pending -> accepted for the exact
	// (group, member) pair and stamps joinedAt. Returns rows transitioned.
	AcceptMembership(ctx context.Context, groupID, userID uuid.UUID, joinedAt time.Time) (int64, error)

	GetMembership(ctx context.Context, groupID, userID uuid.UUID) (*model.Membership, error)

	// AcceptedMemberIDs returns the ids of every accepted member of the group
	AcceptedMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)

	InsertMessage(ctx context.Context, msg *model.GroupMessage) error

	// MessagesForGroup returns the group's messages ascending by creation time
	MessagesForGroup(ctx context.Context, groupID uuid.UUID) ([]*model.GroupMessage, error)
}
