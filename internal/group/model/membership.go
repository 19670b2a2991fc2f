package model

import (
	"time"

	"github.com/google/uuid"
	user "parley/internal/user/model"
)

type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipAccepted MembershipStatus = "accepted"
)

// Membership is one row per (group, member). Invitees start pending; the
// owner's row is inserted pre-accepted when the group is created.
type Membership struct {
	GroupID uuid.UUID `bun:",pk,type:uuid"`
	Group   *Group    `bun:"rel:belongs-to,join:group_id=id"`

	UserID uuid.UUID  `bun:",pk,type:uuid"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	InvitedByID uuid.UUID `bun:",notnull,type:uuid"`

	Status MembershipStatus `bun:",notnull,default:'pending'"`

	JoinedAt *time.Time `bun:",nullzero"` // set when the invite is accepted
}
