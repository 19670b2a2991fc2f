package model

import (
	"time"

	"github.com/google/uuid"
	user "parley/internal/user/model"
)

type Group struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	Name string `bun:",notnull"`

	// Owner is an accepted member from the moment the group exists
	OwnerID uuid.UUID  `bun:",notnull,type:uuid"`
	Owner   *user.User `bun:"rel:belongs-to,join:owner_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
