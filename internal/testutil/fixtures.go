// Package testutil provides test helper utilities for flashdeck tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/flashdeck-dev/flashdeck/internal/deck"
	"github.com/flashdeck-dev/flashdeck/internal/store"
)

// SampleImport is an import document with two decks: "Elements" (two cards,
// category Chemistry) and "Scratch" (no category, no cards).
const SampleImport = `decks:
  - title: Elements
    category: Chemistry
    cards:
      - front: H
        back: Hydrogen
      - front: He
        back: Helium
  - title: Scratch
    cards: []
`

// TempProject creates a temporary directory with the given files and returns its path.
// Files is a map of relative path -> content. Directories are created as needed.
// The directory is automatically cleaned up when the test finishes.
func TempProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// SampleDecks parses SampleImport.
func SampleDecks(t *testing.T) *deck.ImportFile {
	t.Helper()
	f, err := deck.ParseImport([]byte(SampleImport))
	if err != nil {
		t.Fatalf("parsing sample import: %v", err)
	}
	return f
}

// SeededStore opens a fresh store in a temp directory and imports
// SampleImport into it. It returns the store and the new deck ids in
// document order. The store is closed when the test finishes.
func SeededStore(t *testing.T) (*store.Store, []int64) {
	t.Helper()
	ctx := context.Background()

	s, err := store.Open(ctx, filepath.Join(t.TempDir(), "decks.db"))
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	ids, err := s.Import(ctx, SampleDecks(t))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	return s, ids
}
