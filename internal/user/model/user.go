package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username = unique @handle (used for login and identity)
	Username string `bun:",unique,notnull"`

	// Opaque to this engine; verification lives with the auth collaborator
	PasswordHash string `bun:",notnull"`

	// Profile image reference (path under the upload store)
	AvatarPath string `bun:",nullzero"`

	// Stamped on every connect/disconnect; presence recency derives from it
	LastActivityAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
