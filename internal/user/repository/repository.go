package repository

import (
	"context"
	"database/sql"
	"time"

	User "parley/internal/user/model"
	"parley/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrUserNotFound = errors.New("user not found")

func NewUserRepository(db *bun.DB, logger logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *User.User) error {

	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.CreateUser.Insert: ")
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error) {

	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*User.User, error) {

	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByUsername.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) UpdateLastActivity(ctx context.Context, userID uuid.UUID, ts time.Time) error {
	_, err := r.db.NewUpdate().
		Model(&User.User{LastActivityAt: ts}).
		Column("last_activity_at"). // <-- only updates this column
		Where("id = ?", userID).
		Exec(ctx)

	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateLastActivity.Update: ")
	}
	return nil
}
