package repository

import (
	"context"
	"time"

	model "parley/internal/friend/model"
	"parley/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type FriendRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewFriendRepository(db *bun.DB, logger logger.Logger) *FriendRepository {
	return &FriendRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *FriendRepository) EdgeExists(ctx context.Context, a, b uuid.UUID) (bool, error) {
	count, err := r.db.NewSelect().
		Model((*model.Edge)(nil)).
		Where("(requester_id = ? AND target_id = ?) OR (requester_id = ? AND target_id = ?)", a, b, b, a).
		Count(ctx)

	if err != nil {
		return false, errors.Wrap(err, "friendRepo.EdgeExists.Count: ")
	}
	return count > 0, nil
}

func (r *FriendRepository) InsertEdge(ctx context.Context, edge *model.Edge) error {
	_, err := r.db.NewInsert().Model(edge).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "friendRepo.InsertEdge.Insert: ")
	}
	return nil
}

func (r *FriendRepository) AcceptEdge(ctx context.Context, requesterID, accepterID uuid.UUID, acceptedAt time.Time) (int64, error) {
	res, err := r.db.NewUpdate().
		Model(&model.Edge{Status: model.StatusAccepted, AcceptedAt: &acceptedAt}).
		Column("status", "accepted_at").
		Where("requester_id = ? AND target_id = ? AND status = ?", requesterID, accepterID, model.StatusPending).
		Exec(ctx)

	if err != nil {
		return 0, errors.Wrap(err, "friendRepo.AcceptEdge.Update: ")
	}
	return res.RowsAffected()
}

func (r *FriendRepository) EdgesTouching(ctx context.Context, userID uuid.UUID) ([]*model.Edge, error) {
	var edges []*model.Edge
	err := r.db.NewSelect().
		Model(&edges).
		Relation("Requester").
		Relation("Target").
		Where("requester_id = ? OR target_id = ?", userID, userID).
		Order("created_at ASC").
		Scan(ctx)

	if err != nil {
		return nil, errors.Wrap(err, "friendRepo.EdgesTouching.Scan: ")
	}
	return edges, nil
}
