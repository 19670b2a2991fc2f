package model

import (
	"time"

	"github.com/google/uuid"
	user "parley/internal/user/model"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

// Edge is the friend relationship between two users, stored once per pair
// with the requester as the origin. At most one edge may exist between any
// two identities regardless of direction; the migration enforces it:
//
//	CREATE UNIQUE INDEX idx_edge_pair ON edges
//	    (least(requester_id, target_id), greatest(requester_id, target_id));
type Edge struct {
	RequesterID uuid.UUID `bun:",pk,type:uuid"`
	TargetID    uuid.UUID `bun:",pk,type:uuid"`

	Status Status `bun:",notnull,default:'pending'"`

	CreatedAt  time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	AcceptedAt *time.Time `bun:",nullzero"`

	Requester *user.User `bun:"rel:belongs-to,join:requester_id=id"`
	Target    *user.User `bun:"rel:belongs-to,join:target_id=id"`
}
