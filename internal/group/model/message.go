package model

import (
	"time"

	"github.com/google/uuid"
	user "parley/internal/user/model"
)

type GroupMessage struct {
	ID      uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	GroupID uuid.UUID `bun:",notnull,type:uuid"`
	Group   *Group    `bun:"rel:belongs-to,join:group_id=id"`

	SenderID uuid.UUID  `bun:",notnull,type:uuid"`
	Sender   *user.User `bun:"rel:belongs-to,join:sender_id=id"`

	Text string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
