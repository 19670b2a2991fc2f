package repository

import (
	"context"
	"time"

	model "parley/internal/dm/model"
	"parley/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMessageRepository(db *bun.DB, logger logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *MessageRepository) InsertMessage(ctx context.Context, msg *model.DirectMessage) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.InsertMessage.Insert: ")
	}
	return nil
}

func (r *MessageRepository) MessagesBetween(ctx context.Context, a, b uuid.UUID) ([]*model.DirectMessage, error) {
	var msgs []*model.DirectMessage
	err := r.db.NewSelect().
		Model(&msgs).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("created_at ASC").
		Scan(ctx)

	if err != nil {
		return nil, errors.Wrap(err, "dmRepo.MessagesBetween.Scan: ")
	}
	return msgs, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, readerID, senderID uuid.UUID, readAt time.Time) (int64, error) {
	res, err := r.db.NewUpdate().
		Model(&model.DirectMessage{Read: true, ReadAt: &readAt}).
		Column("read", "read_at").
		Where("sender_id = ? AND receiver_id = ? AND read = ?", senderID, readerID, false).
		Exec(ctx)

	if err != nil {
		return 0, errors.Wrap(err, "dmRepo.MarkRead.Update: ")
	}
	return res.RowsAffected()
}
