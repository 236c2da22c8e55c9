package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps session state in process memory. Suitable for a single
// instance; state is lost on restart, which matches the ephemeral data model.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]State
	ttl      time.Duration
}

// NewMemoryStore creates an in-memory session store. Entries older than ttl
// are dropped lazily on access.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{sessions: make(map[string]State), ttl: ttl}
}

// Create registers a new session with the given initial status.
func (m *MemoryStore) Create(_ context.Context, status string) (*State, error) {
	st := State{ID: NewID(), Status: status, UpdatedAt: time.Now()}
	m.mu.Lock()
	m.sessions[st.ID] = st
	m.mu.Unlock()
	return &st, nil
}

// Get returns the session state for id, or ErrNotFound.
func (m *MemoryStore) Get(_ context.Context, id string) (*State, error) {
	m.mu.RLock()
	st, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if m.ttl > 0 && time.Since(st.UpdatedAt) > m.ttl {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, ErrNotFound
	}
	cp := st
	return &cp, nil
}

// Put stores st, stamping UpdatedAt.
func (m *MemoryStore) Put(_ context.Context, st *State) error {
	st.UpdatedAt = time.Now()
	m.mu.Lock()
	m.sessions[st.ID] = *st
	m.mu.Unlock()
	return nil
}
