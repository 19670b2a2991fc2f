package friend

import (
	"github.com/google/uuid"
)

// Outbound event pushed to the target of a new friend request
const EventFriendRequestReceived = "friend_request_received"

type FriendRequestEvent struct {
	RequesterID uuid.UUID `json:"requester_id"`
	Username    string    `json:"username"`
}

// Output DTOs
type FriendDTO struct {
	UserID     uuid.UUID `json:"user_id"`
	Username   string    `json:"username"`
	AvatarPath string    `json:"avatar_path,omitempty"`
}

type RelationshipsDTO struct {
	Accepted        []FriendDTO `json:"accepted"`
	PendingSent     []FriendDTO `json:"pending_sent"`
	PendingReceived []FriendDTO `json:"pending_received"`
}
