// Package where resolves the directories and files tubex reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/tubex-cli/tubex/constant"
	"github.com/tubex-cli/tubex/filesystem"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "TUBEX_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the configuration directory, honoring TUBEX_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Tubex))
}

// Cache is the cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Tubex))
}

// Logs is where daily log files are written.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Thumbnails is the default download directory for thumbnails.
func Thumbnails() string {
	return ensureDir(filepath.Join(Cache(), "thumbnails"))
}

// History is the file of resolved videos.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Version holds the cached latest release lookups.
func Version() string {
	return filepath.Join(Cache(), "version")
}

// Temp is a scratch directory.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Tubex))
}
