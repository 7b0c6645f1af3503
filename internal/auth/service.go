// Package auth owns the session lifecycle: exchanging credentials for a
// session, exposing the current authentication state, and keeping that state
// in sync with session storage across console instances.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/backend"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/session"
	apperrors "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/errors"
)

var activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "console_active_sessions",
	Help: "Number of sessions currently held in memory",
})

// Authenticator is the credential exchange the service depends on. In
// production it is the backend client; tests substitute a fake.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (backend.LoginResult, error)
}

// Service keeps an in-memory view of every session. The view is hydrated from
// storage exactly once at Start and afterwards repaired only by store change
// events, so concurrent instances sharing a store converge on last-write-wins
// without coordinating.
//
// Authentication state is two-valued: a session ID either resolves to a valid
// session or it does not. There is no "expiring" state and no proactive token
// refresh; expiry is discovered when the backend answers 401 and the store
// delete propagates back here as a change event.
type Service struct {
	store   session.Store
	backend Authenticator
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]session.Session

	started bool
}

// NewService creates the auth service. Call Start before use.
func NewService(store session.Store, authenticator Authenticator, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		backend:  authenticator,
		logger:   logger,
		sessions: make(map[string]session.Session),
	}
}

// Start hydrates the in-memory view from storage and begins watching for
// changes. It must be called exactly once; the watch goroutine stops when ctx
// is canceled.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return errors.New("auth service already started")
	}
	s.started = true
	s.mu.Unlock()

	stored, err := s.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("hydrate sessions: %w", err)
	}

	s.mu.Lock()
	for _, sess := range stored {
		if sess.Valid() {
			s.sessions[sess.ID] = sess
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()
	activeSessions.Set(float64(count))

	events, err := s.store.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch session store: %w", err)
	}
	go s.resyncLoop(ctx, events)

	s.logger.Info("auth service started", slog.Int("hydrated_sessions", count))
	return nil
}

// resyncLoop applies store change events to the in-memory view. Events only
// say that something changed; the store is re-read for the new value, so a
// burst of writes collapses into whatever the store holds last.
func (s *Service) resyncLoop(ctx context.Context, events <-chan session.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.applyEvent(ctx, ev)
		}
	}
}

func (s *Service) applyEvent(ctx context.Context, ev session.Event) {
	if ev.Removed {
		s.drop(ev.SessionID)
		return
	}

	sess, err := s.store.Get(ctx, ev.SessionID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		// Written then removed (or corrupted) before we re-read it.
		s.drop(ev.SessionID)
	case err != nil:
		s.logger.Warn("failed to re-read changed session",
			slog.String("session_id", ev.SessionID),
			slog.String("error", err.Error()),
		)
	case !sess.Valid():
		s.drop(ev.SessionID)
	default:
		s.adopt(sess)
	}
}

func (s *Service) adopt(sess session.Session) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	count := len(s.sessions)
	s.mu.Unlock()
	activeSessions.Set(float64(count))
}

func (s *Service) drop(id string) {
	s.mu.Lock()
	_, existed := s.sessions[id]
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()
	if existed {
		activeSessions.Set(float64(count))
	}
}

// Login exchanges credentials for a new session. The session is persisted
// before it is adopted locally, so other instances learn about it through the
// store's change feed.
func (s *Service) Login(ctx context.Context, email, password string) (session.Session, error) {
	result, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return session.Session{}, err
	}

	sess := session.Session{
		ID:          uuid.NewString(),
		AccessToken: result.AccessToken,
		User:        result.User,
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return session.Session{}, fmt.Errorf("persist session: %w", err)
	}
	s.adopt(sess)

	s.logger.Info("user logged in",
		slog.String("session_id", sess.ID),
		slog.String("user_id", sess.User.ID),
	)
	return sess, nil
}

// Logout removes the session from storage and from the local view. Logging
// out an unknown session is not an error.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.drop(sessionID)
	s.logger.Info("user logged out", slog.String("session_id", sessionID))
	return nil
}

// Current returns the session for the given ID, if one is known. A miss means
// unauthenticated; there is no intermediate state.
func (s *Service) Current(sessionID string) (session.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	return sess, ok
}

// IsAuthenticated reports whether the session ID resolves to a valid session.
func (s *Service) IsAuthenticated(sessionID string) bool {
	_, ok := s.Current(sessionID)
	return ok
}
