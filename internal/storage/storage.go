// Package storage persists the punch log as a single JSON sheet on disk.
//
// Load and Save form the only disk boundary of the program: commands load
// the sheet, apply a transition in memory and save the result back. Saves
// are atomic (temp file plus rename) so a crash never leaves a half-written
// sheet behind. Load never writes, even when the sheet turns out corrupt.
//
// There is no locking between concurrent invocations. Atomic renames keep
// the sheet intact either way, but when two commands race the later save
// wins and the earlier one is lost.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/skovlund/punch/internal/model"
)

// ErrorKind classifies storage failures so callers can map them to
// distinct exit codes without string matching.
type ErrorKind string

const (
	// KindIO covers filesystem trouble: unreadable file, failed write, rename.
	KindIO ErrorKind = "io"
	// KindCorrupt covers sheets that read fine but do not parse or violate
	// the log invariants.
	KindCorrupt ErrorKind = "corrupt"
)

// Error is the failure type returned by Load and Save.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == KindCorrupt {
		return fmt.Sprintf("corrupt sheet %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("storage error on %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsCorrupt reports whether err is a storage error caused by a malformed
// or invariant-breaking sheet.
func IsCorrupt(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindCorrupt
}

// IsIO reports whether err is a storage error caused by the filesystem.
func IsIO(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindIO
}

// DefaultPath returns the default sheet location (~/.punchclock/sheet.json).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".punchclock", "sheet.json"), nil
}

// Store reads and writes the punch log at a fixed path.
type Store struct {
	path string
}

// New returns a Store for the sheet at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the sheet location this store operates on.
func (s *Store) Path() string {
	return s.path
}

// Load reads the sheet. A missing or empty file is not an error: tracking
// simply has not started yet, so an empty log is returned.
func (s *Store) Load() (model.Log, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		slog.Debug("sheet does not exist yet", "path", s.path)
		return model.Log{}, nil
	}
	if err != nil {
		return model.Log{}, &Error{Kind: KindIO, Path: s.path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		slog.Debug("sheet is empty", "path", s.path)
		return model.Log{}, nil
	}

	var lg model.Log
	if err := json.Unmarshal(data, &lg); err != nil {
		return model.Log{}, &Error{Kind: KindCorrupt, Path: s.path, Err: err}
	}
	if err := lg.Validate(); err != nil {
		return model.Log{}, &Error{Kind: KindCorrupt, Path: s.path, Err: err}
	}
	slog.Debug("loaded sheet", "path", s.path, "entries", len(lg.Entries))
	return lg, nil
}

// Save atomically replaces the sheet with lg. The log is written to a
// uniquely named temp file in the same directory and renamed into place,
// so readers either see the previous sheet or the new one, never a mix.
func (s *Store) Save(lg model.Log) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return &Error{Kind: KindIO, Path: s.path, Err: err}
	}

	data, err := json.MarshalIndent(lg, "", "  ")
	if err != nil {
		return &Error{Kind: KindIO, Path: s.path, Err: err}
	}
	data = append(data, '\n')

	tmpPath := s.path + ".tmp." + uuid.NewString()
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return &Error{Kind: KindIO, Path: s.path, Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return &Error{Kind: KindIO, Path: s.path, Err: err}
	}
	slog.Debug("saved sheet", "path", s.path, "entries", len(lg.Entries))
	return nil
}
