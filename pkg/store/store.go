// Package store provides a small durable document store: a mapping from
// logical record names to JSON documents with atomic replace-on-write.
// The default backend is one file per key on a shared filesystem; a
// PostgreSQL backend lives in the postgres subpackage.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// DocumentStore is the persistence contract the queue repository builds
// on. Load returns the last successfully saved document for key, or the
// caller-supplied default if none exists yet (persisting the default so
// subsequent reads are stable). Save atomically replaces the document:
// a concurrent reader never observes a half-written document.
type DocumentStore interface {
	Load(key string, def []byte) ([]byte, error)
	Save(key string, doc []byte) error
	Keys(prefix string) ([]string, error)
	Close() error
}

// Updater is implemented by backends that can run a read-mutate-write
// cycle atomically (optimistic concurrency). fn receives the current
// document (or the default when none exists) and returns the
// replacement.
type Updater interface {
	Update(key string, def []byte, fn func(doc []byte) ([]byte, error)) error
}

// FileStore keeps one <key>.json file per key under a data directory.
// Readers take a shared flock for the duration of the read; writers
// write a temporary file under an exclusive flock and rename it into
// place, so a crash mid-write leaves the previous document intact.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates the data directory if needed and returns a store
// rooted there.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the document for key. A missing file seeds and persists the
// default; an unreadable or corrupt file falls back to the default with
// a warning, never an error, so queue operation does not halt the line.
func (s *FileStore) Load(key string, def []byte) ([]byte, error) {
	path := s.path(key)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.Save(key, def); err != nil {
			s.logger.Warn("failed to seed default document",
				zap.String("key", key), zap.Error(err))
		}
		return def, nil
	}

	doc, err := s.read(path)
	if err != nil {
		s.logger.Warn("failed to read document, falling back to default",
			zap.String("key", key), zap.Error(err))
		return def, nil
	}
	if !json.Valid(doc) {
		s.logger.Warn("corrupt document, falling back to default",
			zap.String("key", key))
		return def, nil
	}
	return doc, nil
}

func (s *FileStore) read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_SH); err != nil {
		return nil, fmt.Errorf("failed to take shared lock: %w", err)
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN)

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	doc := make([]byte, info.Size())
	if _, err := f.Read(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Save durably replaces the document for key. The write goes to a
// temporary file under an exclusive flock and is renamed into the final
// location, so it is all-or-nothing from any reader's perspective.
func (s *FileStore) Save(key string, doc []byte) error {
	path := s.path(key)
	tmp := path + ".tmp"

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open temp file: %w", err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return fmt.Errorf("failed to take exclusive lock: %w", err)
	}

	if _, err := f.Write(doc); err != nil {
		unix.Flock(int(f.Fd()), unix.LOCK_UN)
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := f.Sync(); err != nil {
		unix.Flock(int(f.Fd()), unix.LOCK_UN)
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to sync document: %w", err)
	}

	unix.Flock(int(f.Fd()), unix.LOCK_UN)
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace document: %w", err)
	}
	return nil
}

// Keys lists the stored keys with the given prefix, sorted descending so
// the most recent day documents come first.
func (s *FileStore) Keys(prefix string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, prefix+"*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, strings.TrimSuffix(filepath.Base(m), ".json"))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, nil
}

// Close is a no-op for the file store; it exists to satisfy
// DocumentStore for backends holding connections.
func (s *FileStore) Close() error {
	return nil
}
