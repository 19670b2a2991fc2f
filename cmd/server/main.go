package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"parley/config"
	dmRepository "parley/internal/dm/repository"
	dmUsecase "parley/internal/dm/usecase"
	friendRepository "parley/internal/friend/repository"
	friendUsecase "parley/internal/friend/usecase"
	"parley/internal/gateway"
	groupRepository "parley/internal/group/repository"
	groupUsecase "parley/internal/group/usecase"
	"parley/internal/registry"
	userRepository "parley/internal/user/repository"
	userUsecase "parley/internal/user/usecase"
	"parley/pkg/logger"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	dmModel "parley/internal/dm/model"
	friendModel "parley/internal/friend/model"
	groupModel "parley/internal/group/model"
	userModel "parley/internal/user/model"
)

const shutdownTimeout = 30 * time.Second

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping db: %v", err)
	}
	if err := migrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	reg := registry.New(appLogger)

	userRepo := userRepository.NewUserRepository(db, *appLogger)
	friendRepo := friendRepository.NewFriendRepository(db, *appLogger)
	dmRepo := dmRepository.NewMessageRepository(db, *appLogger)
	groupRepo := groupRepository.NewGroupRepository(db, *appLogger)

	users := userUsecase.NewUserUsecase(userRepo, reg, *appLogger)
	friends := friendUsecase.NewFriendUsecase(friendRepo, userRepo, reg, *appLogger)
	dms := dmUsecase.NewMessageUsecase(dmRepo, userRepo, reg, *appLogger)
	groups := groupUsecase.NewGroupUsecase(groupRepo, userRepo, reg, *appLogger)

	auth := gateway.NewUsernameAuthenticator(userRepo)
	gw := gateway.New(users, friends, dms, groups, auth, *appLogger)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	gw.MapRoutes(app)

	go func() {
		appLogger.Info("server listening", "port", cfg.Server.Port)
		if err := app.Listen(cfg.Server.Port); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"fiber": func(ctx context.Context) error {
				return app.ShutdownWithContext(ctx)
			},
			"registry": func(ctx context.Context) error {
				reg.Clear()
				return nil
			},
			"database": func(ctx context.Context) error {
				return db.Close()
			},
		},
	)

	exitCode := <-wait
	appLogger.Info("server exited", "code", exitCode)
	os.Exit(exitCode)
}

// migrate creates the schema on startup. The pair index backs the
// one-edge-per-pair invariant regardless of request direction.
func migrate(ctx context.Context, db *bun.DB) error {
	tables := []any{
		(*userModel.User)(nil),
		(*friendModel.Edge)(nil),
		(*dmModel.DirectMessage)(nil),
		(*groupModel.Group)(nil),
		(*groupModel.Membership)(nil),
		(*groupModel.GroupMessage)(nil),
	}

	for _, t := range tables {
		if _, err := db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}

	_, err := db.ExecContext(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS idx_edge_pair
		ON edges (least(requester_id, target_id), greatest(requester_id, target_id))`)
	return err
}
