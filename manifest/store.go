// Package manifest owns the mapping from logical asset paths to their
// fingerprinted names: the build-time accumulator, the persisted JSON
// artifact and the runtime lookup table.
package manifest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Filename is the manifest artifact's name inside the dist directory.
const Filename = "manifest.json"

// Store holds the manifest. During a build it is the single-writer
// accumulator (Reset, Record, Persist); at runtime it is a read-mostly lookup
// table loaded lazily from the persisted artifact. The two phases never
// interleave within one process: either a build owns the store, or request
// handling reads it.
//
// A manifest entry may name a file that a partial rebuild has since removed
// from disk. Lookup still returns the recorded fingerprinted path unchanged;
// detecting staleness would cost a stat per lookup, and the build contract
// (reset then repopulate, abort on failure) makes the situation transient.
type Store struct {
	path   string
	logger *slog.Logger

	entries atomic.Pointer[map[string]string]
	loaded  atomic.Bool
	sf      singleflight.Group
}

// NewStore creates a store whose artifact lives at path (typically
// <dist>/manifest.json). The store starts empty and unloaded.
func NewStore(path string, logger *slog.Logger) *Store {
	s := &Store{
		path:   path,
		logger: logger,
	}
	empty := map[string]string{}
	s.entries.Store(&empty)
	return s
}

// Reset clears the in-memory manifest. Called once at the start of a
// fingerprinting run so no stale entries leak into a new build.
func (s *Store) Reset() {
	empty := map[string]string{}
	s.entries.Store(&empty)
	s.loaded.Store(true)
}

// Record inserts or overwrites an entry. The last write for a given logical
// path wins, which lets a build re-process a file.
func (s *Store) Record(logical, fingerprinted string) {
	current := *s.entries.Load()
	next := make(map[string]string, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	next[logical] = fingerprinted
	s.entries.Store(&next)
}

// Persist serializes the manifest to its artifact path as a single atomic
// write: the JSON is written to a temporary file in the same directory and
// renamed into place, so a crashed build never leaves a partial artifact.
func (s *Store) Persist() error {
	entries := *s.entries.Load()

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, Filename+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary manifest: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temporary manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary manifest: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move manifest into place: %w", err)
	}

	s.logger.Info("manifest persisted", "path", s.path, "entries", len(entries))
	return nil
}

// Load reads the persisted artifact into memory if not already loaded.
// Concurrent first callers are collapsed into a single read. A missing or
// malformed artifact degrades to an empty manifest with a logged warning;
// request handling must never fail because the build artifact is bad, the
// assets simply are not cache-busted.
func (s *Store) Load() {
	if s.loaded.Load() {
		return
	}

	s.sf.Do("load", func() (interface{}, error) {
		if s.loaded.Load() {
			return nil, nil
		}

		entries := s.readArtifact()
		s.entries.Store(&entries)
		s.loaded.Store(true)
		return nil, nil
	})
}

func (s *Store) readArtifact() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("manifest artifact not found, serving logical asset paths", "path", s.path)
		} else {
			s.logger.Error("failed to read manifest artifact", "path", s.path, "error", err)
		}
		return map[string]string{}
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Error("malformed manifest artifact, serving logical asset paths", "path", s.path, "error", err)
		return map[string]string{}
	}

	s.logger.Info("manifest loaded", "path", s.path, "entries", len(entries))
	return entries
}

// Lookup normalizes the path (one leading separator stripped) and returns its
// fingerprinted equivalent, or the normalized path unchanged when absent, so
// a path resolves identically with and without a leading separator.
func (s *Store) Lookup(logical string) string {
	key := strings.TrimPrefix(logical, "/")
	if fingerprinted, ok := (*s.entries.Load())[key]; ok {
		return fingerprinted
	}
	return key
}

// Len reports the number of entries currently in memory.
func (s *Store) Len() int {
	return len(*s.entries.Load())
}
