package gateway

import (
	"encoding/json"

	"github.com/google/uuid"
	"parley/internal/dm"
)

// Inbound event types
const (
	typeSendDirectMessage = "send_direct_message"
	typeMarkRead          = "mark_read"
	typeRequestFriend     = "request_friend"
	typeAcceptFriend      = "accept_friend"
	typeCreateGroup       = "create_group"
	typeAcceptGroupInvite = "accept_group_invite"
	typeSendGroupMessage  = "send_group_message"

	typeError = "error"
)

// inboundFrame defers payload decoding until the type is known.
type inboundFrame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type sendDirectMessageRequest struct {
	To      uuid.UUID  `json:"to"`
	Payload dm.Payload `json:"payload"`
}

type markReadRequest struct {
	SenderID uuid.UUID `json:"sender_id"`
}

type requestFriendRequest struct {
	TargetID uuid.UUID `json:"target_id"`
}

type acceptFriendRequest struct {
	RequesterID uuid.UUID `json:"requester_id"`
}

type createGroupRequest struct {
	Name      string      `json:"name"`
	MemberIDs []uuid.UUID `json:"member_ids"`
}

type acceptGroupInviteRequest struct {
	GroupID uuid.UUID `json:"group_id"`
}

type sendGroupMessageRequest struct {
	GroupID uuid.UUID `json:"group_id"`
	Text    string    `json:"text"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
