package group

import (
	"time"

	"github.com/google/uuid"
	model "parley/internal/group/model"
)

// Outbound events
const (
	EventGroupInvite  = "group_invite"
	EventMemberJoined = "member_joined"
	EventGroupMessage = "group_message"
)

type GroupInviteEvent struct {
	GroupID   uuid.UUID `json:"group_id"`
	GroupName string    `json:"group_name"`
	InviterID uuid.UUID `json:"inviter_id"`
}

type MemberJoinedEvent struct {
	GroupID  uuid.UUID `json:"group_id"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// Input commands
type CreateCommand struct {
	OwnerID   uuid.UUID
	Name      string
	MemberIDs []uuid.UUID
}

// Output DTOs
type GroupDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type GroupMessageDTO struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"group_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func ToGroupMessageDTO(m *model.GroupMessage) *GroupMessageDTO {
	return &GroupMessageDTO{
		ID:        m.ID,
		GroupID:   m.GroupID,
		SenderID:  m.SenderID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}
