package usecase

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"parley/internal/friend"
	model "parley/internal/friend/model"
	"parley/internal/registry"
	"parley/internal/user"
	"parley/pkg/errors"
	"parley/pkg/logger"
	"parley/pkg/utils"

	"github.com/google/uuid"
)

const pairLockStripes = 64

type FriendUsecase struct {
	repo     friend.FriendRepository
	users    user.UserRepository
	registry *registry.Registry
	logger   logger.Logger

	// Serializes the exists-check/insert sequence per unordered pair so a
	// concurrent double-submission cannot create two edges. The unique pair
	// index in the store backstops this across processes.
	pairLocks [pairLockStripes]sync.Mutex
}

func NewFriendUsecase(repo friend.FriendRepository, users user.UserRepository, reg *registry.Registry, logger logger.Logger) *FriendUsecase {
	return &FriendUsecase{repo: repo, users: users, registry: reg, logger: logger}
}

func (uc *FriendUsecase) Request(ctx context.Context, requesterID, targetID uuid.UUID) error {
	if targetID == uuid.Nil {
		return errors.ErrMissingTarget
	}
	if targetID == requesterID {
		return errors.ErrSelfFriendTarget
	}

	requester, err := uc.users.GetUserByID(ctx, requesterID)
	if err != nil {
		return errors.ErrUserNotFound
	}
	if _, err := uc.users.GetUserByID(ctx, targetID); err != nil {
		return errors.ErrUserNotFound
	}

	lock := uc.pairLock(requesterID, targetID)
	lock.Lock()
	defer lock.Unlock()

	exists, err := uc.repo.EdgeExists(ctx, requesterID, targetID)
	if err != nil {
		uc.logger.Error("failed to check for existing edge", "err", err)
		return errors.Internal("internal server error")
	}
	if exists {
		return errors.ErrEdgeExists
	}

	edge := &model.Edge{
		RequesterID: requesterID,
		TargetID:    targetID,
		Status:      model.StatusPending,
	}
	if err := uc.repo.InsertEdge(ctx, edge); err != nil {
		uc.logger.Errorf("error while inserting friend edge: %v", err)
		return errors.Internal("internal server error")
	}

	uc.registry.Push(targetID, friend.EventFriendRequestReceived, friend.FriendRequestEvent{
		RequesterID: requesterID,
		Username:    requester.Username,
	})

	return nil
}

func (uc *FriendUsecase) Accept(ctx context.Context, accepterID, requesterID uuid.UUID) error {
	if requesterID == uuid.Nil {
		return errors.ErrMissingTarget
	}

	affected, err := uc.repo.AcceptEdge(ctx, requesterID, accepterID, time.Now())
	if err != nil {
		uc.logger.Errorf("error while accepting friend edge: %v", err)
		return errors.Internal("internal server error")
	}
	if affected == 0 {
		// No matching pending edge with us as target: silent no-op
		uc.logger.Debug("accept had no matching pending edge", "accepter_id", accepterID, "requester_id", requesterID)
	}
	return nil
}

func (uc *FriendUsecase) List(ctx context.Context, userID uuid.UUID) (*friend.RelationshipsDTO, error) {
	edges, err := uc.repo.EdgesTouching(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to list friend edges", "err", err)
		return nil, errors.Internal("internal server error")
	}

	out := &friend.RelationshipsDTO{
		Accepted:        []friend.FriendDTO{},
		PendingSent:     []friend.FriendDTO{},
		PendingReceived: []friend.FriendDTO{},
	}

	for _, e := range edges {
		other := e.Target
		otherID := e.TargetID
		sentByMe := e.RequesterID == userID
		if !sentByMe {
			other = e.Requester
			otherID = e.RequesterID
		}

		dto := friend.FriendDTO{UserID: otherID}
		if other != nil {
			dto.Username = other.Username
			dto.AvatarPath = other.AvatarPath
		}

		switch {
		case e.Status == model.StatusAccepted:
			out.Accepted = append(out.Accepted, dto)
		case sentByMe:
			out.PendingSent = append(out.PendingSent, dto)
		default:
			out.PendingReceived = append(out.PendingReceived, dto)
		}
	}

	return out, nil
}

func (uc *FriendUsecase) pairLock(a, b uuid.UUID) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(utils.PairKey(a, b)))
	return &uc.pairLocks[h.Sum32()%pairLockStripes]
}
