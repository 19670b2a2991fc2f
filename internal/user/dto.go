package user

import (
	"github.com/google/uuid"
)

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Output DTOs
type PresenceDTO struct {
	UserID  uuid.UUID `json:"user_id"`
	Status  string    `json:"status"`
	Recency string    `json:"recency"`
}

type ProfileDTO struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	AvatarPath string    `json:"avatar_path,omitempty"`
}
