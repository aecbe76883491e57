// Package storage is the durable key/value sink backing the persisted
// stores. Values are JSON documents keyed by logical name; readers fall back
// to defaults instead of failing on missing or corrupted entries.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Sink persists JSON-serializable values by string key.
type Sink interface {
	// Get decodes the stored value into out. The boolean is false when no
	// value exists under the key.
	Get(key string, out any) (bool, error)
	Set(key string, value any) error
	Remove(key string) error
}

// FileSink stores one pretty-printed JSON file per key inside a directory.
type FileSink struct {
	dir string
}

// NewFileSink creates the backing directory if needed.
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileSink{dir: dir}, nil
}

func (s *FileSink) Get(key string, out any) (bool, error) {
	data, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FileSink) Set(key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.pathFor(key), data, 0o644)
}

func (s *FileSink) Remove(key string) error {
	err := os.Remove(s.pathFor(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *FileSink) pathFor(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+".json")
}

func sanitizeKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.ReplaceAll(key, "/", "-")
	key = strings.ReplaceAll(key, ":", "-")
	key = strings.ReplaceAll(key, "..", "-")
	if key == "" {
		key = "default"
	}
	return key
}
