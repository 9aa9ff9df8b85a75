// Package cache prunes stale generated files from the application directories.
package cache

import (
	"os"
	"time"

	"github.com/anidex-cli/anidex/filesystem"
	"github.com/anidex-cli/anidex/log"
	"github.com/spf13/afero"
)

// TTL is how long a generated file is kept.
const TTL = 7 * 24 * time.Hour

// Prune removes regular files under dir last modified before now-ttl and returns how many were removed.
func Prune(dir string, ttl time.Duration, now time.Time) (int, error) {
	fs := filesystem.API()

	exists, err := fs.DirExists(dir)
	if err != nil || !exists {
		return 0, err
	}

	var removed int
	err = afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if now.Sub(info.ModTime()) > ttl {
			if err := fs.Remove(path); err != nil {
				log.Warnf("prune %s: %v", path, err)
				return nil
			}
			removed++
		}
		return nil
	})

	return removed, err
}

// CollectGarbage prunes every directory in dirs in the background.
func CollectGarbage(dirs ...string) {
	go func() {
		for _, dir := range dirs {
			n, err := Prune(dir, TTL, time.Now())
			if err != nil {
				log.Warn(err)
				continue
			}
			if n > 0 {
				log.Infof("pruned %d stale files from %s", n, dir)
			}
		}
	}()
}
