// Package cache keeps JSON encoded values on disk for a limited time.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tubex-cli/tubex/filesystem"
	"github.com/tubex-cli/tubex/log"
)

// Store is a directory of cache entries sharing one lifetime.
type Store struct {
	dir string
	ttl time.Duration
}

// New creates a store in dir. Entries older than ttl are treated as missing.
func New(dir string, ttl time.Duration) *Store {
	return &Store{dir: dir, ttl: ttl}
}

// Key derives a file-safe key from parts.
func Key(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(hash[:])
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read decodes a fresh entry into target and reports whether it did.
func (s *Store) Read(key string, target any) bool {
	path := s.path(key)

	info, err := filesystem.API().Stat(path)
	if err != nil || s.expired(info) {
		return false
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	return json.Unmarshal(data, target) == nil
}

// Write stores data under key, replacing the entry atomically.
func (s *Store) Write(key string, data any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	path := s.path(key)
	tmp := path + ".tmp"

	if err := filesystem.API().MkdirAll(s.dir, os.ModePerm); err != nil {
		return err
	}

	if err := filesystem.API().WriteFile(tmp, encoded, 0o644); err != nil {
		return err
	}

	return filesystem.API().Rename(tmp, path)
}

// CollectGarbage removes expired entries and returns how many were removed.
func (s *Store) CollectGarbage() int {
	var removed int

	_ = filesystem.API().Walk(s.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !s.expired(info) {
			return nil
		}

		if filesystem.API().Remove(path) == nil {
			removed++
		}
		return nil
	})

	if removed > 0 {
		log.Debugf("removed %d expired cache entries from %s", removed, s.dir)
	}

	return removed
}

func (s *Store) expired(info os.FileInfo) bool {
	return time.Since(info.ModTime()) > s.ttl
}
