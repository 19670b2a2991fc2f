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

	model "parley/internal/group/model"
	userModels "parley/internal/user/model"
	userRepository "parley/internal/user/repository"
	"parley/pkg/logger"

	"github.com/google/uuid"
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
		(*model.Group)(nil),
		(*model.Membership)(nil),
		(*model.GroupMessage)(nil),
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
	for _, table := range []string{"group_messages", "memberships", "groups", "users"} {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE "`+table+`" RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	}
}

func seedUsers(t *testing.T) (*userModels.User, *userModels.User) {
	users := userRepository.NewUserRepository(testDB, logger.Logger{})

	owner := &userModels.User{Username: "owner", PasswordHash: "x"}
	member := &userModels.User{Username: "member", PasswordHash: "x"}
	require.NoError(t, users.CreateUser(context.Background(), owner))
	require.NoError(t, users.CreateUser(context.Background(), member))

	return owner, member
}

func seedGroup(t *testing.T, repo *GroupRepository, owner, invitee *userModels.User) *model.Group {
	now := time.Now()
	g := &model.Group{Name: "weekend plans", OwnerID: owner.ID}
	memberships := []*model.Membership{
		{UserID: owner.ID, InvitedByID: owner.ID, Status: model.MembershipAccepted, JoinedAt: &now},
		{UserID: invitee.ID, InvitedByID: owner.ID, Status: model.MembershipPending},
	}
	require.NoError(t, repo.CreateGroupWithMembers(context.Background(), g, memberships))
	return g
}

func Test_CreateGroupWithMembers(t *testing.T) {
	repo := NewGroupRepository(testDB, logger.Logger{})

	defer truncate(t)
	owner, member := seedUsers(t)

	g := seedGroup(t, repo, owner, member)
	assert.NotEqual(t, "", g.ID.String())
	assert.False(t, g.CreatedAt.IsZero())

	fetched, err := repo.GetGroupByID(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Equal(t, "weekend plans", fetched.Name)
	assert.Equal(t, owner.ID, fetched.OwnerID)

	ownerMembership, err := repo.GetMembership(context.Background(), g.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, ownerMembership)
	assert.Equal(t, model.MembershipAccepted, ownerMembership.Status)

	inviteeMembership, err := repo.GetMembership(context.Background(), g.ID, member.ID)
	require.NoError(t, err)
	require.NotNil(t, inviteeMembership)
	assert.Equal(t, model.MembershipPending, inviteeMembership.Status)
	assert.Nil(t, inviteeMembership.JoinedAt)
}

func Test_GetGroupByID_NotFound(t *testing.T) {
	repo := NewGroupRepository(testDB, logger.Logger{})

	_, err := repo.GetGroupByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func Test_AcceptMembership(t *testing.T) {
	repo := NewGroupRepository(testDB, logger.Logger{})

	t.Run("pending invite accepts exactly once", func(t *testing.T) {
		defer truncate(t)
		owner, member := seedUsers(t)
		g := seedGroup(t, repo, owner, member)

		affected, err := repo.AcceptMembership(context.Background(), g.ID, member.ID, time.Now())
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		m, err := repo.GetMembership(context.Background(), g.ID, member.ID)
		require.NoError(t, err)
		assert.Equal(t, model.MembershipAccepted, m.Status)
		assert.NotNil(t, m.JoinedAt)

		affected, err = repo.AcceptMembership(context.Background(), g.ID, member.ID, time.Now())
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("uninvited user matches no row", func(t *testing.T) {
		defer truncate(t)
		owner, member := seedUsers(t)
		g := seedGroup(t, repo, owner, member)

		affected, err := repo.AcceptMembership(context.Background(), g.ID, uuid.New(), time.Now())
		require.NoError(t, err)
		assert.Zero(t, affected)
	})
}

func Test_GetMembership_Absent(t *testing.T) {
	repo := NewGroupRepository(testDB, logger.Logger{})

	defer truncate(t)
	owner, member := seedUsers(t)
	g := seedGroup(t, repo, owner, member)

	m, err := repo.GetMembership(context.Background(), g.ID, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, m)
}

func Test_AcceptedMemberIDs(t *testing.T) {
	repo := NewGroupRepository(testDB, logger.Logger{})

	defer truncate(t)
	owner, member := seedUsers(t)
	g := seedGroup(t, repo, owner, member)

	ids, err := repo.AcceptedMemberIDs(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{owner.ID}, ids)

	_, err = repo.AcceptMembership(context.Background(), g.ID, member.ID, time.Now())
	require.NoError(t, err)

	ids, err = repo.AcceptedMemberIDs(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, owner.ID)
	assert.Contains(t, ids, member.ID)
}

func Test_GroupMessages(t *testing.T) {
	repo := NewGroupRepository(testDB, logger.Logger{})

	defer truncate(t)
	owner, member := seedUsers(t)
	g := seedGroup(t, repo, owner, member)

	for _, text := range []string{"first", "second"} {
		msg := &model.GroupMessage{GroupID: g.ID, SenderID: owner.ID, Text: text}
		require.NoError(t, repo.InsertMessage(context.Background(), msg))
		assert.NotEqual(t, "", msg.ID.String())
	}

	msgs, err := repo.MessagesForGroup(context.Background(), g.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
}
