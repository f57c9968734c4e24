// Package prefs stores best-effort user preferences. Nothing here is a
// correctness dependency: callers treat a missing or unreadable store the
// same as an empty one.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/1broseidon/stagehand/internal/runtimepath"
)

// ComposerHeightKey is the single durable key this subsystem writes.
const ComposerHeightKey = "composer_height"

const prefsFileName = "prefs.json"

// store is the on-disk shape: a flat string-keyed map so future scalar
// preferences do not need a format migration.
type store map[string]json.RawMessage

func prefsPath() (string, error) {
	dir, err := runtimepath.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, prefsFileName), nil
}

func load() (store, error) {
	path, err := prefsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store{}, nil
		}
		return nil, fmt.Errorf("failed to read prefs: %w", err)
	}

	var s store
	if err := json.Unmarshal(data, &s); err != nil {
		// A corrupt prefs file is discarded rather than surfaced: the
		// next save rewrites it.
		return store{}, nil
	}
	if s == nil {
		s = store{}
	}
	return s, nil
}

func save(s store) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode prefs: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	return nil
}

// ComposerHeight reads the stored composer panel height in pixels. The second
// return value is false when no valid height has been saved.
func ComposerHeight() (int, bool) {
	s, err := load()
	if err != nil {
		return 0, false
	}
	raw, ok := s[ComposerHeightKey]
	if !ok {
		return 0, false
	}
	var h int
	if err := json.Unmarshal(raw, &h); err != nil || h <= 0 {
		return 0, false
	}
	return h, true
}

// SaveComposerHeight writes the composer panel height. Values that are not
// positive are rejected before touching disk.
func SaveComposerHeight(px int) error {
	if px <= 0 {
		return fmt.Errorf("composer height must be positive, got %d", px)
	}

	s, err := load()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(px)
	if err != nil {
		return fmt.Errorf("failed to encode composer height: %w", err)
	}
	s[ComposerHeightKey] = raw
	return save(s)
}
