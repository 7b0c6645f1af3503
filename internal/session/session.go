// Package session owns the persisted session model: the access token issued by
// the church backend plus the cached user profile snapshot. No other package
// touches session storage directly.
package session

import (
	"context"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
)

// Session pairs the backend access token with the profile snapshot returned at
// login. Both values live and die together: a session missing either one is
// treated as absent.
//
// The token is opaque to the console. It is never decoded or checked for
// expiry locally; expiry is discovered reactively when the backend answers 401.
type Session struct {
	ID          string              `json:"id"`
	AccessToken string              `json:"accessToken"`
	User        *domain.UserProfile `json:"user"`
}

// Valid reports whether both the token and the user snapshot are present.
func (s Session) Valid() bool {
	return s.AccessToken != "" && s.User != nil && s.User.ID != ""
}

// Event describes a change observed in the session store. Watchers use it to
// re-synchronize their in-memory state; semantics are last-write-wins.
type Event struct {
	SessionID string
	Removed   bool
}

// Store is the persistence contract for sessions. Writes are whole-value
// overwrites and reads are full reads; there is no partial update.
type Store interface {
	// Save persists the session, overwriting any previous value for its ID.
	Save(ctx context.Context, s Session) error

	// Get returns the stored session. Returns errors.ErrNotFound when the
	// session is absent, and treats an undecodable entry as absent (removing
	// the corrupted entry as a side effect).
	Get(ctx context.Context, id string) (Session, error)

	// Delete removes the session. Idempotent: deleting an absent session is
	// not an error.
	Delete(ctx context.Context, id string) error

	// LoadAll returns every valid stored session, used for hydration at
	// process start.
	LoadAll(ctx context.Context) ([]Session, error)

	// Watch delivers change events until ctx is canceled. Events are advisory
	// and eventually consistent; a consumer must re-read the store to learn
	// the new value.
	Watch(ctx context.Context) (<-chan Event, error)
}

type contextKey struct{}

// ContextWithID stores the request's session ID in the context. The backend
// client reads it to resolve the bearer token for outgoing calls.
func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IDFromContext returns the session ID stored by ContextWithID, if any.
func IDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}
