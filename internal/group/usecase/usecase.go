package usecase

import (
	"context"
	"strings"
	"time"

	"parley/internal/group"
	model "parley/internal/group/model"
	"parley/internal/registry"
	"parley/internal/user"
	"parley/pkg/errors"
	"parley/pkg/logger"

	"github.com/google/uuid"
)

type GroupUsecase struct {
	repo     group.GroupRepository
	users    user.UserRepository
	registry *registry.Registry
	logger   logger.Logger
}

func NewGroupUsecase(repo group.GroupRepository, users user.UserRepository, reg *registry.Registry, logger logger.Logger) *GroupUsecase {
	return &GroupUsecase{repo: repo, users: users, registry: reg, logger: logger}
}

func (uc *GroupUsecase) Create(ctx context.Context, cmd group.CreateCommand) (*group.GroupDTO, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, errors.ErrMissingGroupName
	}

	now := time.Now()
	g := &model.Group{
		Name:    cmd.Name,
		OwnerID: cmd.OwnerID,
	}

	memberships := []*model.Membership{{
		UserID:      cmd.OwnerID,
		InvitedByID: cmd.OwnerID,
		Status:      model.MembershipAccepted,
		JoinedAt:    &now,
	}}

	invitees := make([]uuid.UUID, 0, len(cmd.MemberIDs))
	seen := map[uuid.UUID]bool{cmd.OwnerID: true}
	for _, id := range cmd.MemberIDs {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		invitees = append(invitees, id)
		memberships = append(memberships, &model.Membership{
			UserID:      id,
			InvitedByID: cmd.OwnerID,
			Status:      model.MembershipPending,
		})
	}

	if err := uc.repo.CreateGroupWithMembers(ctx, g, memberships); err != nil {
		uc.logger.Errorf("error while creating group: %v", err)
		return nil, errors.ErrGroupCreateFailed(err)
	}

	// The owner occupies the broadcast channel from the start
	uc.registry.Join(g.ID, cmd.OwnerID)

	invite := group.GroupInviteEvent{
		GroupID:   g.ID,
		GroupName: g.Name,
		InviterID: cmd.OwnerID,
	}
	for _, id := range invitees {
		uc.registry.Push(id, group.EventGroupInvite, invite)
	}

	return &group.GroupDTO{
		ID:        g.ID,
		Name:      g.Name,
		OwnerID:   g.OwnerID,
		CreatedAt: g.CreatedAt,
	}, nil
}

func (uc *GroupUsecase) AcceptInvite(ctx context.Context, memberID, groupID uuid.UUID) error {
	if groupID == uuid.Nil {
		return errors.ErrMissingTarget
	}

	affected, err := uc.repo.AcceptMembership(ctx, groupID, memberID, time.Now())
	if err != nil {
		uc.logger.Errorf("error while accepting group invite: %v", err)
		return errors.Internal("internal server error")
	}
	if affected == 0 {
		// No pending invite for this exact (group, member) pair: silent no-op
		uc.logger.Debug("accept invite had no pending membership", "group_id", groupID, "member_id", memberID)
		return nil
	}

	uc.registry.Join(groupID, memberID)

	username := ""
	if u, err := uc.users.GetUserByID(ctx, memberID); err == nil {
		username = u.Username
	}

	uc.registry.Broadcast(groupID, group.EventMemberJoined, group.MemberJoinedEvent{
		GroupID:  groupID,
		UserID:   memberID,
		Username: username,
	})

	return nil
}

func (uc *GroupUsecase) Post(ctx context.Context, senderID, groupID uuid.UUID, text string) (*group.GroupMessageDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.ErrEmptyMessage
	}

	if _, err := uc.repo.GetGroupByID(ctx, groupID); err != nil {
		return nil, errors.ErrGroupNotFound
	}

	// Only accepted members may post; a pending invite is not enough
	if err := uc.requireAcceptedMember(ctx, groupID, senderID); err != nil {
		return nil, err
	}

	msg := &model.GroupMessage{
		GroupID:  groupID,
		SenderID: senderID,
		Text:     text,
	}
	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Errorf("error while inserting group message: %v", err)
		return nil, errors.ErrMessageStoreFailed(err)
	}

	dto := group.ToGroupMessageDTO(msg)
	uc.registry.Broadcast(groupID, group.EventGroupMessage, dto)

	return dto, nil
}

func (uc *GroupUsecase) History(ctx context.Context, requesterID, groupID uuid.UUID) ([]*group.GroupMessageDTO, error) {
	if _, err := uc.repo.GetGroupByID(ctx, groupID); err != nil {
		return nil, errors.ErrGroupNotFound
	}
	if err := uc.requireAcceptedMember(ctx, groupID, requesterID); err != nil {
		return nil, err
	}

	msgs, err := uc.repo.MessagesForGroup(ctx, groupID)
	if err != nil {
		uc.logger.Error("failed to load group history", "err", err)
		return nil, errors.Internal("internal server error")
	}

	out := make([]*group.GroupMessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, group.ToGroupMessageDTO(m))
	}
	return out, nil
}

func (uc *GroupUsecase) requireAcceptedMember(ctx context.Context, groupID, userID uuid.UUID) error {
	m, err := uc.repo.GetMembership(ctx, groupID, userID)
	if err != nil {
		uc.logger.Error("failed to load membership", "err", err)
		return errors.Internal("internal server error")
	}
	if m == nil || m.Status != model.MembershipAccepted {
		return errors.ErrNotGroupMember
	}
	return nil
}
