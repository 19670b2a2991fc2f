package usecase

import (
	"context"
	"strings"
	"time"

	"parley/internal/dm"
	model "parley/internal/dm/model"
	"parley/internal/registry"
	"parley/internal/user"
	"parley/pkg/errors"
	"parley/pkg/logger"

	"github.com/google/uuid"
)

type MessageUsecase struct {
	repo     dm.MessageRepository
	users    user.UserRepository
	registry *registry.Registry
	logger   logger.Logger
}

func NewMessageUsecase(repo dm.MessageRepository, users user.UserRepository, reg *registry.Registry, logger logger.Logger) *MessageUsecase {
	return &MessageUsecase{repo: repo, users: users, registry: reg, logger: logger}
}

func (uc *MessageUsecase) Send(ctx context.Context, cmd dm.SendCommand) (*dm.MessageDTO, error) {
	if err := validatePayload(cmd.Payload); err != nil {
		return nil, err
	}
	if _, err := uc.users.GetUserByID(ctx, cmd.ReceiverID); err != nil {
		return nil, errors.ErrUserNotFound
	}

	msg := &model.DirectMessage{
		SenderID:   cmd.SenderID,
		ReceiverID: cmd.ReceiverID,
		Kind:       cmd.Payload.Kind,
		Text:       cmd.Payload.Text,
		FileID:     cmd.Payload.FileID,
		MimeType:   cmd.Payload.MimeType,
		FileName:   cmd.Payload.FileName,
		Read:       false,
	}

	// Persist before any delivery attempt; a failed push never rolls this back
	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Errorf("error while inserting direct message: %v", err)
		return nil, errors.ErrMessageStoreFailed(err)
	}

	dto := dm.ToMessageDTO(msg)

	// Local echo to the sender, independent push to the receiver. An offline
	// receiver picks the message up from history later.
	uc.registry.Push(cmd.SenderID, dm.EventDirectMessage, dto)
	uc.registry.Push(cmd.ReceiverID, dm.EventDirectMessage, dto)

	return dto, nil
}

func (uc *MessageUsecase) History(ctx context.Context, a, b uuid.UUID) ([]*dm.MessageDTO, error) {
	msgs, err := uc.repo.MessagesBetween(ctx, a, b)
	if err != nil {
		uc.logger.Error("failed to load message history", "err", err)
		return nil, errors.Internal("internal server error")
	}

	out := make([]*dm.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, dm.ToMessageDTO(m))
	}
	return out, nil
}

func (uc *MessageUsecase) MarkRead(ctx context.Context, readerID, senderID uuid.UUID) (int64, error) {
	readAt := time.Now()

	count, err := uc.repo.MarkRead(ctx, readerID, senderID, readAt)
	if err != nil {
		uc.logger.Errorf("error while marking messages read: %v", err)
		return 0, errors.Internal("internal server error")
	}

	if count > 0 {
		uc.registry.Push(senderID, dm.EventMessagesRead, dm.ReadReceiptEvent{
			ReaderID:  readerID,
			Timestamp: readAt,
		})
	}
	return count, nil
}

func validatePayload(p dm.Payload) error {
	switch p.Kind {
	case model.KindText:
		if strings.TrimSpace(p.Text) == "" {
			return errors.ErrEmptyMessage
		}
	case model.KindFile:
		if p.FileID == "" || p.MimeType == "" || p.FileName == "" {
			return errors.ErrInvalidFileRef
		}
	default:
		return errors.ErrEmptyMessage
	}
	return nil
}
