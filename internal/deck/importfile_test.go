package deck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseImport(t *testing.T) {
	doc := `decks:
  - title: Kana
    category: Japanese
    cards:
      - front: "あ"
        back: a
      - front: "い"
        back: i
  - title: Empty
    cards: []
`
	f, err := ParseImport([]byte(doc))
	if err != nil {
		t.Fatalf("ParseImport failed: %v", err)
	}
	if len(f.Decks) != 2 {
		t.Fatalf("decks: got %d, want 2", len(f.Decks))
	}
	if f.Decks[0].Category != "Japanese" {
		t.Errorf("category: got %q, want %q", f.Decks[0].Category, "Japanese")
	}
	if got := f.Decks[0].Cards[1].Back; got != "i" {
		t.Errorf("second card back: got %q, want %q", got, "i")
	}
	if len(f.Decks[1].Cards) != 0 {
		t.Errorf("empty deck: got %d cards", len(f.Decks[1].Cards))
	}
}

func TestParseImportValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing title", "decks:\n  - cards: []\n", "title is required"},
		{"missing front", "decks:\n  - title: A\n    cards:\n      - back: x\n", "front is required"},
		{"malformed", "decks: [", "parsing import file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseImport([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestReadImportFileMissing(t *testing.T) {
	_, err := ReadImportFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestValidateID(t *testing.T) {
	if err := ValidateID(1); err != nil {
		t.Errorf("ValidateID(1): %v", err)
	}
	for _, id := range []int64{0, -3} {
		if err := ValidateID(id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("ValidateID(%d): got %v, want ErrInvalidID", id, err)
		}
	}
}
