package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	backupSuffix = ".backup"
	tempSuffix   = ".tmp"
)

// Store persists named JSON documents under a single data directory.
// Every document gets a rolling one-generation backup: immediately before
// a save, the current on-disk content is copied to <path>.backup. The
// backup therefore always holds the last value that was confirmed on disk
// before the most recent save attempt.
type Store struct {
	dataDir string
}

func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// DocumentPath resolves a document file name inside the data directory.
func (store *Store) DocumentPath(name string) string {
	return filepath.Join(store.dataDir, name)
}

// Load reads the document at path into v. Failure never reaches the
// caller: a missing, empty, or unparseable primary file falls back to the
// backup, and if that fails too, v is left untouched (callers pass an
// empty document).
func (store *Store) Load(path string, v any) {
	if readDocument(path, v) {
		return
	}
	readDocument(path+backupSuffix, v)
}

func readDocument(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return false
	}
	// Validate before unmarshalling so a corrupt primary cannot half-fill
	// v before the backup is tried.
	if !json.Valid(data) {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// Save writes v as indented JSON to path. The current primary content is
// first copied verbatim to the backup (best effort), then the new value
// is written to a temporary sibling and renamed over the primary, so a
// crash mid-write never leaves a partial file at the canonical path.
func (store *Store) Save(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if current, err := os.ReadFile(path); err == nil {
		if err := os.WriteFile(path+backupSuffix, current, 0o644); err != nil {
			slog.Warn("writing backup", "path", path, "error", err)
		}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	temp := path + tempSuffix
	if err := os.WriteFile(temp, data, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	if err := os.Rename(temp, path); err != nil {
		return fmt.Errorf("replacing document: %w", err)
	}
	return nil
}
