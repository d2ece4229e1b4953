// Package app wires a session together: an exclusive file lock so only
// one habitkit process touches the storage file, the storage backend
// chosen by file extension, and the habit engine on top of it.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"github.com/rdelgatto/habitkit/internal/engine"
	"github.com/rdelgatto/habitkit/internal/storage"
)

// App holds one session's state and dependencies.
type App struct {
	Store    storage.Provider
	Engine   *engine.Engine
	lockFile *flock.Flock
}

// NewStore picks the storage backend for the given path. A .json
// extension selects the JSON document store; anything else gets SQLite.
func NewStore(path string) storage.Provider {
	if strings.HasSuffix(path, ".json") {
		return storage.NewJSONStore(path)
	}
	return storage.NewSQLiteStore(path)
}

// Open acquires the session lock, loads the store, and loads the engine.
// A degraded engine load (readable file, unreadable record) is not fatal;
// the caller can inspect Engine.LoadErr.
func Open(storePath string) (*App, error) {
	a := &App{
		Store: NewStore(storePath),
	}

	// Ensure the config directory exists so the lock file can be created
	if err := os.MkdirAll(filepath.Dir(storePath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := a.acquireLock(storePath); err != nil {
		return nil, err
	}

	if err := a.Store.Load(); err != nil {
		a.releaseLock()
		return nil, err
	}

	a.Engine = engine.New(a.Store)
	if err := a.Engine.Load(); err != nil {
		// Keep the session usable; the degraded state stays observable
		// through Engine.LoadErr.
		_ = err
	}

	return a, nil
}

// acquireLock takes an exclusive file lock to prevent a second habitkit
// process from interleaving write-throughs on the same storage file.
func (a *App) acquireLock(storePath string) error {
	lockPath := filepath.Join(filepath.Dir(storePath), "habitkit.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of habitkit is already running")
	}

	return nil
}

func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close releases the session's resources.
func (a *App) Close() error {
	var errs []error

	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close storage: %w", err))
		}
	}

	a.releaseLock()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
