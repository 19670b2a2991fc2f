package registry

import (
	"sync"
	"testing"

	"parley/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu     sync.Mutex
	events []string
	closed bool
}

func (f *fakeConn) Push(event string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) Events() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

func newTestRegistry() *Registry {
	return New(&logger.Logger{})
}

func Test_BindAndIsOnline(t *testing.T) {
	r := newTestRegistry()
	userID := uuid.New()

	assert.False(t, r.IsOnline(userID))

	r.Bind(userID, &fakeConn{})
	assert.True(t, r.IsOnline(userID))
}

func Test_BindReplacesAndClosesSupersededConn(t *testing.T) {
	r := newTestRegistry()
	userID := uuid.New()

	first := &fakeConn{}
	second := &fakeConn{}

	r.Bind(userID, first)
	r.Bind(userID, second)

	assert.True(t, first.closed)
	assert.False(t, second.closed)

	delivered := r.Push(userID, "direct_message", nil)
	require.True(t, delivered)
	assert.Empty(t, first.Events())
	assert.Equal(t, []string{"direct_message"}, second.Events())
}

func Test_ReleaseIgnoresStaleDisconnect(t *testing.T) {
	r := newTestRegistry()
	userID := uuid.New()

	first := &fakeConn{}
	second := &fakeConn{}

	r.Bind(userID, first)
	r.Bind(userID, second)

	// The old connection's reader loop winds down after being superseded;
	// its disconnect must not evict the newer session.
	assert.False(t, r.Release(userID, first))
	assert.True(t, r.IsOnline(userID))

	assert.True(t, r.Release(userID, second))
	assert.False(t, r.IsOnline(userID))
}

func Test_PushToOfflineUser(t *testing.T) {
	r := newTestRegistry()
	assert.False(t, r.Push(uuid.New(), "direct_message", nil))
}

func Test_BroadcastReachesOnlineOccupantsOnly(t *testing.T) {
	r := newTestRegistry()
	groupID := uuid.New()

	online := uuid.New()
	offline := uuid.New()
	outsider := uuid.New()

	onlineConn := &fakeConn{}
	outsiderConn := &fakeConn{}

	r.Bind(online, onlineConn)
	r.Bind(outsider, outsiderConn)

	r.Join(groupID, online)
	r.Join(groupID, offline)

	r.Broadcast(groupID, "group_message", map[string]string{"text": "hi"})

	assert.Equal(t, []string{"group_message"}, onlineConn.Events())
	assert.Empty(t, outsiderConn.Events())
}

func Test_OccupantsTracksJoins(t *testing.T) {
	r := newTestRegistry()
	groupID := uuid.New()

	a := uuid.New()
	b := uuid.New()

	r.Join(groupID, a)
	r.Join(groupID, b)
	r.Join(groupID, b) // idempotent

	occupants := r.Occupants(groupID)
	assert.Len(t, occupants, 2)
	assert.ElementsMatch(t, []uuid.UUID{a, b}, occupants)
}

func Test_ClearClosesEverything(t *testing.T) {
	r := newTestRegistry()
	userID := uuid.New()
	conn := &fakeConn{}

	r.Bind(userID, conn)
	r.Clear()

	assert.True(t, conn.closed)
	assert.False(t, r.IsOnline(userID))
}
