package repository

import (
	"context"
	"database/sql"
	"time"

	model "parley/internal/group/model"
	"parley/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type GroupRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrGroupNotFound = errors.New("group not found")

func NewGroupRepository(db *bun.DB, logger logger.Logger) *GroupRepository {
	return &GroupRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *GroupRepository) CreateGroupWithMembers(ctx context.Context, g *model.Group, memberships []*model.Membership) error {

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {

		_, err := tx.NewInsert().Model(g).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "groupRepo.CreateGroupWithMembers.insertGroup")
		}

		for i := range memberships {
			memberships[i].GroupID = g.ID
		}

		if len(memberships) > 0 {
			_, err = tx.NewInsert().Model(&memberships).Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "groupRepo.CreateGroupWithMembers.insertMemberships")
			}
		}

		return nil
	})
}

func (r *GroupRepository) GetGroupByID(ctx context.Context, id uuid.UUID) (*model.Group, error) {
	g := new(model.Group)
	err := r.db.NewSelect().Model(g).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, errors.Wrap(err, "groupRepo.GetGroupByID.Scan: ")
	}
	return g, nil
}

func (r *GroupRepository) AcceptMembership(ctx context.Context, groupID, userID uuid.UUID, joinedAt time.Time) (int64, error) {
	res, err := r.db.NewUpdate().
		Model(&model.Membership{Status: model.MembershipAccepted, JoinedAt: &joinedAt}).
		Column("status", "joined_at").
		Where("group_id = ? AND user_id = ? AND status = ?", groupID, userID, model.MembershipPending).
		Exec(ctx)

	if err != nil {
		return 0, errors.Wrap(err, "groupRepo.AcceptMembership.Update: ")
	}
	return res.RowsAffected()
}

func (r *GroupRepository) GetMembership(ctx context.Context, groupID, userID uuid.UUID) (*model.Membership, error) {
	m := new(model.Membership)
	err := r.db.NewSelect().
		Model(m).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "groupRepo.GetMembership.Scan: ")
	}
	return m, nil
}

func (r *GroupRepository) AcceptedMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.NewSelect().
		Model((*model.Membership)(nil)).
		Column("user_id").
		Where("group_id = ? AND status = ?", groupID, model.MembershipAccepted).
		Scan(ctx, &ids)

	if err != nil {
		return nil, errors.Wrap(err, "groupRepo.AcceptedMemberIDs.Scan: ")
	}
	return ids, nil
}

func (r *GroupRepository) InsertMessage(ctx context.Context, msg *model.GroupMessage) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "groupRepo.InsertMessage.Insert: ")
	}
	return nil
}

func (r *GroupRepository) MessagesForGroup(ctx context.Context, groupID uuid.UUID) ([]*model.GroupMessage, error) {
	var msgs []*model.GroupMessage
	err := r.db.NewSelect().
		Model(&msgs).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Scan(ctx)

	if err != nil {
		return nil, errors.Wrap(err, "groupRepo.MessagesForGroup.Scan: ")
	}
	return msgs, nil
}
