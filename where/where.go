// Package where resolves the per-platform locations of anidex's files.
package where

import (
	"os"
	"path/filepath"

	"github.com/anidex-cli/anidex/constant"
	"github.com/anidex-cli/anidex/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "ANIDEX_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honouring ANIDEX_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Anidex))
}

// Cache resolves the cache directory. It falls back to ./cache when the platform has none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Anidex))
}

// Logs resolves the log directory.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Database resolves the bbolt file holding the offline catalog and favorites.
func Database() string {
	return filepath.Join(Cache(), constant.Anidex+".db")
}

// Queries resolves the search history file.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}
