package usecase

import (
	"context"
	"fmt"
	"time"

	"parley/internal/registry"
	"parley/internal/user"
	models "parley/internal/user/model"
	"parley/pkg/errors"
	"parley/pkg/logger"

	"github.com/google/uuid"
)

type UserUsecase struct {
	repo     user.UserRepository
	registry *registry.Registry
	logger   logger.Logger
}

func NewUserUsecase(repo user.UserRepository, reg *registry.Registry, logger logger.Logger) *UserUsecase {
	return &UserUsecase{repo: repo, registry: reg, logger: logger}
}

func (uc *UserUsecase) Connect(ctx context.Context, userID uuid.UUID, conn registry.Conn) error {
	uc.registry.Bind(userID, conn)

	if err := uc.repo.UpdateLastActivity(ctx, userID, time.Now()); err != nil {
		// The connection is already live; a failed activity stamp only skews
		// the recency projection
		uc.logger.Warn("failed to stamp last activity on connect", "user_id", userID, "err", err)
	}
	return nil
}

func (uc *UserUsecase) Disconnect(ctx context.Context, userID uuid.UUID, conn registry.Conn) error {
	if err := uc.repo.UpdateLastActivity(ctx, userID, time.Now()); err != nil {
		uc.logger.Warn("failed to stamp last activity on disconnect", "user_id", userID, "err", err)
	}

	uc.registry.Release(userID, conn)
	return nil
}

func (uc *UserUsecase) Presence(ctx context.Context, userID uuid.UUID) (*user.PresenceDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	status := user.StatusOffline
	if uc.registry.IsOnline(userID) {
		status = user.StatusOnline
	}

	return &user.PresenceDTO{
		UserID:  userID,
		Status:  status,
		Recency: formatRecency(time.Now(), u.LastActivityAt),
	}, nil
}

func (uc *UserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*user.ProfileDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	return toProfileDTO(u), nil
}

func (uc *UserUsecase) GetProfileByUsername(ctx context.Context, username string) (*user.ProfileDTO, error) {
	u, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	return toProfileDTO(u), nil
}

func toProfileDTO(u *models.User) *user.ProfileDTO {
	return &user.ProfileDTO{
		ID:         u.ID,
		Username:   u.Username,
		AvatarPath: u.AvatarPath,
	}
}

// formatRecency renders how long ago the last activity was, most specific
// bucket first.
func formatRecency(now, lastActivity time.Time) string {
	diff := now.Sub(lastActivity)

	switch {
	case diff >= 48*time.Hour:
		return fmt.Sprintf("%d days ago", int(diff.Hours()/24))
	case diff >= 24*time.Hour:
		return "yesterday"
	case diff >= time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff >= time.Minute:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	default:
		return "just now"
	}
}
