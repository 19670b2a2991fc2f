package registry

import (
	"sync"

	"parley/pkg/logger"

	"github.com/google/uuid"
)

// Conn is a live transport handle for one authenticated identity.
type Conn interface {
	Push(event string, payload any) error
	Close() error
}

// Registry is the process-wide map from identity to its single live
// connection, plus the per-group broadcast channel sets. It is owned by the
// server process and handed to every component that needs it; there is no
// package-level instance.
type Registry struct {
	mu       sync.RWMutex
	conns    map[uuid.UUID]Conn
	channels map[uuid.UUID]map[uuid.UUID]struct{} // groupID -> set of userIDs
	logger   *logger.Logger
}

func New(log *logger.Logger) *Registry {
	return &Registry{
		conns:    make(map[uuid.UUID]Conn),
		channels: make(map[uuid.UUID]map[uuid.UUID]struct{}),
		logger:   log,
	}
}

// Bind installs userID -> conn, replacing any previous connection for the
// same identity. The superseded connection is closed so its reader loop
// terminates.
func (r *Registry) Bind(userID uuid.UUID, conn Conn) {
	r.mu.Lock()
	old, had := r.conns[userID]
	r.conns[userID] = conn
	r.mu.Unlock()

	if had && old != conn {
		_ = old.Close()
	}
}

// Release removes the entry for userID only if it still maps to conn.
// A late disconnect from a superseded connection must not evict the
// connection that replaced it.
func (r *Registry) Release(userID uuid.UUID, conn Conn) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.conns[userID]
	if !ok || current != conn {
		return false
	}
	delete(r.conns, userID)
	return true
}

func (r *Registry) IsOnline(userID uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conns[userID]
	return ok
}

// Push delivers one event to userID's connection. Returns false when the
// user is offline; a failed write is logged but still counts as an attempt.
func (r *Registry) Push(userID uuid.UUID, event string, payload any) bool {
	r.mu.RLock()
	conn, ok := r.conns[userID]
	r.mu.RUnlock()

	if !ok {
		return false
	}
	if err := conn.Push(event, payload); err != nil {
		r.logger.Warn("failed to push event", "event", event, "user_id", userID, "err", err)
	}
	return true
}

// Join adds userID to the group's broadcast channel. Channel membership is
// keyed by identity, not by handle, so it survives reconnects; delivery
// checks liveness at push time.
func (r *Registry) Join(groupID, userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.channels[groupID] == nil {
		r.channels[groupID] = make(map[uuid.UUID]struct{})
	}
	r.channels[groupID][userID] = struct{}{}
}

// Occupants returns the identities currently joined to the group's channel.
func (r *Registry) Occupants(groupID uuid.UUID) []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.channels[groupID]
	out := make([]uuid.UUID, 0, len(members))
	for id := range members {
		out = append(out, id)
	}
	return out
}

// Broadcast pushes one event to every online occupant of the group's channel.
func (r *Registry) Broadcast(groupID uuid.UUID, event string, payload any) {
	r.mu.RLock()
	targets := make([]Conn, 0, len(r.channels[groupID]))
	for id := range r.channels[groupID] {
		if conn, ok := r.conns[id]; ok {
			targets = append(targets, conn)
		}
	}
	r.mu.RUnlock()

	for _, conn := range targets {
		if err := conn.Push(event, payload); err != nil {
			r.logger.Warn("failed to broadcast event", "event", event, "group_id", groupID, "err", err)
		}
	}
}

// Clear closes every connection and empties the registry. Called on shutdown;
// the durable store is the only state that survives a restart.
func (r *Registry) Clear() {
	r.mu.Lock()
	conns := make([]Conn, 0, len(r.conns))
	for _, c := range r.conns {
		conns = append(conns, c)
	}
	r.conns = make(map[uuid.UUID]Conn)
	r.channels = make(map[uuid.UUID]map[uuid.UUID]struct{})
	r.mu.Unlock()

	for _, c := range conns {
		_ = c.Close()
	}
}
