package dm

import (
	"time"

	"github.com/google/uuid"
	model "parley/internal/dm/model"
)

// Outbound events
const (
	EventDirectMessage = "direct_message"
	EventMessagesRead  = "messages_read"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type SendCommand struct {
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Payload    Payload
}

// Payload is the tagged union carried by a direct message. Kind selects
// which fields are meaningful; the wire shape disambiguates structurally.
type Payload struct {
	Kind model.Kind `json:"kind"`
	Text string     `json:"text,omitempty"`

	FileID   string `json:"file_id,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	FileName string `json:"file_name,omitempty"`
}

// Output DTOs
type MessageDTO struct {
	ID         uuid.UUID  `json:"id"`
	SenderID   uuid.UUID  `json:"sender_id"`
	ReceiverID uuid.UUID  `json:"receiver_id"`
	Payload    Payload    `json:"payload"`
	CreatedAt  time.Time  `json:"created_at"`
	Read       bool       `json:"read"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
}

type ReadReceiptEvent struct {
	ReaderID  uuid.UUID `json:"reader_id"`
	Timestamp time.Time `json:"timestamp"`
}

func ToMessageDTO(m *model.DirectMessage) *MessageDTO {
	return &MessageDTO{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Payload: Payload{
			Kind:     m.Kind,
			Text:     m.Text,
			FileID:   m.FileID,
			MimeType: m.MimeType,
			FileName: m.FileName,
		},
		CreatedAt: m.CreatedAt,
		Read:      m.Read,
		ReadAt:    m.ReadAt,
	}
}
