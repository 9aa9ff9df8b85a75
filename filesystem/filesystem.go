// Package filesystem routes every configuration, log and history file access through afero,
// so tests can run against an in-memory tree.
package filesystem

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/spf13/afero"
)

var (
	mu      sync.RWMutex
	backend = afero.Afero{Fs: afero.NewOsFs()}
)

// API returns the active afero.Afero instance.
func API() afero.Afero {
	mu.RLock()
	defer mu.RUnlock()
	return backend
}

// SetOsFs restores the native operating system backend.
func SetOsFs() {
	mu.Lock()
	backend = afero.Afero{Fs: afero.NewOsFs()}
	mu.Unlock()
}

// SetMemMapFs swaps in a volatile in-memory backend, used by tests.
func SetMemMapFs() {
	mu.Lock()
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
	mu.Unlock()
}

// Purge removes a file or a whole directory tree. A missing path is not an error.
func Purge(path string) error {
	fsys := API()

	stat, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	if stat.IsDir() {
		return fsys.RemoveAll(path)
	}
	return fsys.Remove(path)
}
