package session

import (
	"context"
	"sync"

	apperrors "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/errors"
)

// MemStore is an in-memory Store used in tests and single-process deployments
// that do not need sessions to survive a restart. It implements the same
// change-notification contract as FileStore via in-process fan-out.
type MemStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	watchers map[int]chan Event
	nextID   int
}

// NewMemStore creates an empty in-memory session store.
func NewMemStore() *MemStore {
	return &MemStore{
		sessions: make(map[string]Session),
		watchers: make(map[int]chan Event),
	}
}

// Save stores the session and notifies watchers.
func (m *MemStore) Save(ctx context.Context, s Session) error {
	if err := validateID(s.ID); err != nil {
		return err
	}
	if !s.Valid() {
		return apperrors.InvalidInput("session must carry both an access token and a user")
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.notify(Event{SessionID: s.ID})
	return nil
}

// Get returns the stored session or ErrNotFound.
func (m *MemStore) Get(ctx context.Context, id string) (Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return Session{}, apperrors.ErrNotFound
	}
	return s, nil
}

// Delete removes the session and notifies watchers. Idempotent: watchers are
// only notified when something was actually removed.
func (m *MemStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	_, existed := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if existed {
		m.notify(Event{SessionID: id, Removed: true})
	}
	return nil
}

// LoadAll returns every stored session.
func (m *MemStore) LoadAll(ctx context.Context) ([]Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := make([]Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// Watch registers a subscriber channel that receives events until ctx is done.
func (m *MemStore) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)

	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.watchers[id] = ch
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.watchers, id)
		m.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

// notify fans out an event to all subscribers, dropping it for any subscriber
// whose buffer is full (consumers re-read the store, so a dropped event only
// delays convergence until the next one).
func (m *MemStore) notify(ev Event) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ch := range m.watchers {
		select {
		case ch <- ev:
		default:
		}
	}
}
