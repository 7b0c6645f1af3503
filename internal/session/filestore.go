package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/fsnotify/fsnotify"

	apperrors "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/errors"
)

const fileExt = ".json"

// FileStore persists each session as one JSON document in a directory. The
// directory is the single source of truth shared by every console process
// pointed at it; fsnotify events provide the change notifications that keep
// those processes eventually consistent.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Dir returns the storage directory, used by health checks.
func (fs *FileStore) Dir() string {
	return fs.dir
}

// Save writes the session document atomically: marshal, write to a temp file,
// rename. Watchers observe a single create/write event for the final name.
func (fs *FileStore) Save(ctx context.Context, s Session) error {
	if err := validateID(s.ID); err != nil {
		return err
	}
	if !s.Valid() {
		return apperrors.InvalidInput("session must carry both an access token and a user")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp, err := os.CreateTemp(fs.dir, "tmp-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", err)
	}

	if err := os.Rename(tmpName, fs.path(s.ID)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Get reads and decodes the stored session. A document that fails to decode is
// treated as "no session": the corrupted entry is removed and ErrNotFound is
// returned, so a damaged store never wedges the sign-in flow.
func (fs *FileStore) Get(ctx context.Context, id string) (Session, error) {
	if err := validateID(id); err != nil {
		return Session{}, err
	}

	data, err := os.ReadFile(fs.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, apperrors.ErrNotFound
		}
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil || !s.Valid() {
		fs.logger.Warn("removing undecodable session entry",
			slog.String("session_id", id),
		)
		_ = os.Remove(fs.path(id))
		return Session{}, apperrors.ErrNotFound
	}
	return s, nil
}

// Delete removes the session document. Idempotent.
func (fs *FileStore) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := os.Remove(fs.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// LoadAll reads every session document in the directory, skipping entries that
// fail to decode (and removing them, same policy as Get).
func (fs *FileStore) LoadAll(ctx context.Context) ([]Session, error) {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, fmt.Errorf("list session dir: %w", err)
	}

	var sessions []Session
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), fileExt)
		s, err := fs.Get(ctx, id)
		if err != nil {
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// Watch translates filesystem notifications on the session directory into
// store events. The returned channel closes when ctx is canceled. If the
// underlying watcher dies it is re-established with exponential backoff;
// events occurring during the gap are lost, which is acceptable because
// consumers re-read the store on every event anyway.
func (fs *FileStore) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := newDirWatcher(fs.dir)
	if err != nil {
		return nil, err
	}

	out := make(chan Event, 16)

	go func() {
		defer close(out)
		defer func() { _ = watcher.Close() }()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					watcher = fs.rewatch(ctx)
					if watcher == nil {
						return
					}
					continue
				}
				se, relevant := translate(ev)
				if !relevant {
					continue
				}
				select {
				case out <- se:
				case <-ctx.Done():
					return
				}

			case werr, ok := <-watcher.Errors:
				if !ok {
					watcher = fs.rewatch(ctx)
					if watcher == nil {
						return
					}
					continue
				}
				fs.logger.Warn("session watcher error", slog.String("error", werr.Error()))
			}
		}
	}()

	return out, nil
}

// rewatch re-creates the directory watcher with exponential backoff. Returns
// nil when ctx is canceled before a watcher could be established.
func (fs *FileStore) rewatch(ctx context.Context) *fsnotify.Watcher {
	watcher, err := backoff.Retry(ctx, func() (*fsnotify.Watcher, error) {
		return newDirWatcher(fs.dir)
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(2*time.Minute),
	)
	if err != nil {
		fs.logger.Error("session watcher could not be re-established",
			slog.String("error", err.Error()),
		)
		return nil
	}
	fs.logger.Info("session watcher re-established")
	return watcher
}

func newDirWatcher(dir string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch session dir: %w", err)
	}
	return watcher, nil
}

// translate maps an fsnotify event to a store event. Temp files from atomic
// saves are ignored; only *.json names are session documents.
func translate(ev fsnotify.Event) (Event, bool) {
	name := filepath.Base(ev.Name)
	if !strings.HasSuffix(name, fileExt) {
		return Event{}, false
	}
	id := strings.TrimSuffix(name, fileExt)

	switch {
	case ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename):
		return Event{SessionID: id, Removed: true}, true
	case ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write):
		return Event{SessionID: id}, true
	default:
		return Event{}, false
	}
}

func (fs *FileStore) path(id string) string {
	return filepath.Join(fs.dir, id+fileExt)
}

// validateID rejects IDs that could escape the storage directory.
func validateID(id string) error {
	if id == "" || strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return apperrors.InvalidInput("invalid session id")
	}
	return nil
}
