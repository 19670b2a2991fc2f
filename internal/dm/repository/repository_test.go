package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"testing"

	model "parley/internal/dm/model"
	userModels "parley/internal/user/model"
	userRepository "parley/internal/user/repository"
	"parley/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("parley"),
		postgres.WithUsername("parley"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connections string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*userModels.User)(nil),
		(*model.DirectMessage)(nil),
	}
	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func truncate(t *testing.T) {
	_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE direct_messages RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	_, err = testDB.ExecContext(context.Background(), `TRUNCATE TABLE users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func seedUsers(t *testing.T) (*userModels.User, *userModels.User) {
	users := userRepository.NewUserRepository(testDB, logger.Logger{})

	alice := &userModels.User{Username: "alice", PasswordHash: "x"}
	bob := &userModels.User{Username: "bob", PasswordHash: "x"}
	require.NoError(t, users.CreateUser(context.Background(), alice))
	require.NoError(t, users.CreateUser(context.Background(), bob))

	return alice, bob
}

func Test_InsertMessage(t *testing.T) {
	repo := NewMessageRepository(testDB, logger.Logger{})

	t.Run("text message round trip", func(t *testing.T) {
		defer truncate(t)
		alice, bob := seedUsers(t)

		msg := &model.DirectMessage{
			SenderID:   alice.ID,
			ReceiverID: bob.ID,
			Kind:       model.KindText,
			Text:       "hello",
		}
		require.NoError(t, repo.InsertMessage(context.Background(), msg))

		assert.NotEqual(t, "", msg.ID.String())
		assert.False(t, msg.CreatedAt.IsZero())
		assert.False(t, msg.Read)
	})

	t.Run("file message keeps all reference columns", func(t *testing.T) {
		defer truncate(t)
		alice, bob := seedUsers(t)

		msg := &model.DirectMessage{
			SenderID:   alice.ID,
			ReceiverID: bob.ID,
			Kind:       model.KindFile,
			FileID:     "f-123",
			MimeType:   "image/png",
			FileName:   "cat.png",
		}
		require.NoError(t, repo.InsertMessage(context.Background(), msg))

		var got model.DirectMessage
		err := testDB.NewSelect().Model(&got).Where("id = ?", msg.ID).Scan(context.Background())
		require.NoError(t, err)
		assert.Equal(t, model.KindFile, got.Kind)
		assert.Equal(t, "f-123", got.FileID)
		assert.Equal(t, "image/png", got.MimeType)
		assert.Equal(t, "cat.png", got.FileName)
	})
}

func Test_MessagesBetween(t *testing.T) {
	repo := NewMessageRepository(testDB, logger.Logger{})
	users := userRepository.NewUserRepository(testDB, logger.Logger{})

	defer truncate(t)
	alice, bob := seedUsers(t)
	cleo := &userModels.User{Username: "cleo", PasswordHash: "x"}
	require.NoError(t, users.CreateUser(context.Background(), cleo))

	for _, m := range []*model.DirectMessage{
		{SenderID: alice.ID, ReceiverID: bob.ID, Kind: model.KindText, Text: "first"},
		{SenderID: bob.ID, ReceiverID: alice.ID, Kind: model.KindText, Text: "second"},
		{SenderID: alice.ID, ReceiverID: cleo.ID, Kind: model.KindText, Text: "other thread"},
	} {
		require.NoError(t, repo.InsertMessage(context.Background(), m))
	}

	msgs, err := repo.MessagesBetween(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	// Oldest first, both directions in one thread
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
}

func Test_MarkRead(t *testing.T) {
	repo := NewMessageRepository(testDB, logger.Logger{})

	t.Run("marks only unread messages from the sender", func(t *testing.T) {
		defer truncate(t)
		alice, bob := seedUsers(t)

		for _, m := range []*model.DirectMessage{
			{SenderID: alice.ID, ReceiverID: bob.ID, Kind: model.KindText, Text: "one"},
			{SenderID: alice.ID, ReceiverID: bob.ID, Kind: model.KindText, Text: "two"},
			{SenderID: bob.ID, ReceiverID: alice.ID, Kind: model.KindText, Text: "reply"},
		} {
			require.NoError(t, repo.InsertMessage(context.Background(), m))
		}

		affected, err := repo.MarkRead(context.Background(), bob.ID, alice.ID, time.Now())
		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)

		msgs, err := repo.MessagesBetween(context.Background(), alice.ID, bob.ID)
		require.NoError(t, err)
		for _, m := range msgs {
			if m.SenderID == alice.ID {
				assert.True(t, m.Read)
				assert.NotNil(t, m.ReadAt)
			} else {
				assert.False(t, m.Read)
			}
		}
	})

	t.Run("second call affects nothing", func(t *testing.T) {
		defer truncate(t)
		alice, bob := seedUsers(t)

		require.NoError(t, repo.InsertMessage(context.Background(), &model.DirectMessage{
			SenderID: alice.ID, ReceiverID: bob.ID, Kind: model.KindText, Text: "one",
		}))

		affected, err := repo.MarkRead(context.Background(), bob.ID, alice.ID, time.Now())
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		affected, err = repo.MarkRead(context.Background(), bob.ID, alice.ID, time.Now())
		require.NoError(t, err)
		assert.Zero(t, affected)
	})
}
