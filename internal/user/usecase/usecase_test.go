package usecase

import (
	"context"
	"testing"
	"time"

	"parley/internal/registry"
	"parley/internal/user"
	"parley/internal/user/mocks"
	models "parley/internal/user/model"
	appErrors "parley/pkg/errors"
	"parley/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	events []string
	closed bool
}

func (f *fakeConn) Push(event string, payload any) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func Test_FormatRecency(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name string
		last time.Time
		want string
	}{
		{"30 seconds ago", now.Add(-30 * time.Second), "just now"},
		{"5 minutes ago", now.Add(-5 * time.Minute), "5m ago"},
		{"90 minutes ago", now.Add(-90 * time.Minute), "1h ago"},
		{"25 hours ago", now.Add(-25 * time.Hour), "yesterday"},
		{"3 days ago", now.Add(-3 * 24 * time.Hour), "3 days ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatRecency(now, tc.last))
		})
	}
}

func Test_ConnectStampsActivityAndBinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUserRepository(ctrl)

	reg := registry.New(&logger.Logger{})
	uc := NewUserUsecase(mockRepo, reg, logger.Logger{})

	userID := uuid.New()
	mockRepo.EXPECT().UpdateLastActivity(gomock.Any(), userID, gomock.Any()).Return(nil)

	err := uc.Connect(context.Background(), userID, &fakeConn{})
	require.NoError(t, err)
	assert.True(t, reg.IsOnline(userID))
}

func Test_DisconnectReleasesOnlyCurrentConn(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUserRepository(ctrl)

	reg := registry.New(&logger.Logger{})
	uc := NewUserUsecase(mockRepo, reg, logger.Logger{})

	userID := uuid.New()
	first := &fakeConn{}
	second := &fakeConn{}

	g := mockRepo.EXPECT()
	g.UpdateLastActivity(gomock.Any(), userID, gomock.Any()).Return(nil).Times(3)

	require.NoError(t, uc.Connect(context.Background(), userID, first))
	require.NoError(t, uc.Connect(context.Background(), userID, second))

	// The stale disconnect from the superseded connection must not evict
	// the session that replaced it
	require.NoError(t, uc.Disconnect(context.Background(), userID, first))
	assert.True(t, reg.IsOnline(userID))

	require.NoError(t, uc.Disconnect(context.Background(), userID, second))
	assert.False(t, reg.IsOnline(userID))
}

func Test_Presence(t *testing.T) {
	userID := uuid.New()

	storedUser := &models.User{
		ID:             userID,
		Username:       "alice",
		LastActivityAt: time.Now().Add(-5 * time.Minute),
	}

	t.Run("happy path - offline user with recency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)

		reg := registry.New(&logger.Logger{})
		uc := NewUserUsecase(mockRepo, reg, logger.Logger{})

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(storedUser, nil)

		dto, err := uc.Presence(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, user.StatusOffline, dto.Status)
		assert.Equal(t, "5m ago", dto.Recency)
	})

	t.Run("happy path - online user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)

		reg := registry.New(&logger.Logger{})
		uc := NewUserUsecase(mockRepo, reg, logger.Logger{})

		reg.Bind(userID, &fakeConn{})
		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(storedUser, nil)

		dto, err := uc.Presence(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, user.StatusOnline, dto.Status)
	})

	t.Run("sad path - user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)

		reg := registry.New(&logger.Logger{})
		uc := NewUserUsecase(mockRepo, reg, logger.Logger{})

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(nil, appErrors.ErrUserNotFound)

		_, err := uc.Presence(context.Background(), userID)
		assert.Equal(t, appErrors.ErrUserNotFound, err)
	})
}
