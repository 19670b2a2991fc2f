package model

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindText Kind = "text"
	KindFile Kind = "file"
)

// DirectMessage is immutable once created except for the read transition
// false -> true. The payload is a tagged union: Kind selects which columns
// carry the content, never a delimited string.
type DirectMessage struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	SenderID   uuid.UUID `bun:",notnull,type:uuid"`
	ReceiverID uuid.UUID `bun:",notnull,type:uuid"`

	Kind Kind   `bun:",notnull,default:'text'"`
	Text string `bun:",nullzero"`

	// File reference payload (Kind == file)
	FileID   string `bun:",nullzero"`
	MimeType string `bun:",nullzero"`
	FileName string `bun:",nullzero"`

	CreatedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	Read      bool       `bun:",notnull,default:false"`
	ReadAt    *time.Time `bun:",nullzero"`
}
