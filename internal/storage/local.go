// Package storage persists the CV document to a local JSON file. It is
// the durable-local-storage analog of the browser original: one
// document per store, written whole, loaded and repaired on start.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmallet/cv-builder/internal/document"
	"github.com/jmallet/cv-builder/internal/types"
)

// DefaultFileName is the document file created under the user config
// directory when no explicit path is configured.
const DefaultFileName = "document.json"

// Error represents a persistence failure.
type Error struct {
	Op    string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error: %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("storage error: %s", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Store reads and writes one document file.
type Store struct {
	path string
}

// NewStore creates a store over the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user document path.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", &Error{Op: "resolve config dir", Cause: err}
	}
	return filepath.Join(base, "cv-builder", DefaultFileName), nil
}

// Path returns the file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Save writes the document atomically: a temp file in the same
// directory is renamed over the target so a crash never leaves a
// half-written document.
func (s *Store) Save(doc *types.CVDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &Error{Op: "encode document", Cause: err}
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &Error{Op: "create storage dir", Cause: err}
	}
	tmp, err := os.CreateTemp(dir, ".document-*.json")
	if err != nil {
		return &Error{Op: "create temp file", Cause: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &Error{Op: "write document", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &Error{Op: "close temp file", Cause: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &Error{Op: "replace document", Cause: err}
	}
	return nil
}

// Load reads and repairs the stored document. A missing file returns
// (nil, nil): the caller starts from a fresh default. A present but
// unreadable file returns an error so the caller can decide whether to
// overwrite it.
func (s *Store) Load() (*types.CVDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &Error{Op: "read document", Cause: err}
	}

	var doc types.CVDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &Error{Op: "decode document", Cause: err}
	}
	return document.EnsureItemIDs(document.Migrate(&doc)), nil
}

// Clear removes the stored document. Clearing an absent file is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &Error{Op: "remove document", Cause: err}
	}
	return nil
}

// Available reports whether the backing directory is writable.
func (s *Store) Available() bool {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false
	}
	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return false
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return true
}
