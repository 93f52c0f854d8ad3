package views

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flashdeck-dev/flashdeck/internal/deck"
	"github.com/flashdeck-dev/flashdeck/internal/tui"
)

func TestHomeOpensSelectedDeck(t *testing.T) {
	category := "Geography"
	m := NewHomeModel(80, 24)
	m, _ = m.Update(tui.DecksLoadedMsg{Decks: []deck.Deck{
		{ID: 4, Title: "Capitals", Category: &category, CardCount: 12},
		{ID: 9, Title: "Rivers", CardCount: 1},
	}})

	if !strings.Contains(m.View(), "Capitals") {
		t.Errorf("deck list not rendered:\n%s", m.View())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected open command")
	}
	open, ok := cmd().(tui.OpenDeckMsg)
	if !ok || open.DeckID != 4 {
		t.Errorf("open: %+v", open)
	}
}

func TestHomeEmptyAndError(t *testing.T) {
	m := NewHomeModel(80, 24)
	if !strings.Contains(m.View(), "Loading") {
		t.Errorf("initial view:\n%s", m.View())
	}

	empty, _ := m.Update(tui.DecksLoadedMsg{})
	if !strings.Contains(empty.View(), "No decks yet") {
		t.Errorf("empty view:\n%s", empty.View())
	}
	if _, cmd := empty.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		if _, ok := cmd().(tui.OpenDeckMsg); ok {
			t.Error("enter on empty list opened a deck")
		}
	}

	failed, _ := m.Update(tui.DecksLoadedMsg{Err: errors.New("offline")})
	if !strings.Contains(failed.View(), "offline") {
		t.Errorf("error view:\n%s", failed.View())
	}
}

func TestDeckItemDescription(t *testing.T) {
	category := "Music"
	tests := []struct {
		d    deck.Deck
		want string
	}{
		{deck.Deck{CardCount: 1}, "1 card"},
		{deck.Deck{CardCount: 3}, "3 cards"},
		{deck.Deck{CardCount: 3, Category: &category}, "Music · 3 cards"},
	}
	for _, tt := range tests {
		if got := (deckItem{deck: tt.d}).Description(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

// quits reports whether cmd, or any command it batches, quits the program.
func quits(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if quits(c) {
				return true
			}
		}
	}
	return false
}

func TestHomeEscDoesNotQuit(t *testing.T) {
	m := NewHomeModel(80, 24)
	m, _ = m.Update(tui.DecksLoadedMsg{Decks: []deck.Deck{{ID: 1, Title: "Capitals", CardCount: 2}}})

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); quits(cmd) {
		t.Error("esc on the deck list quit the program")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); !quits(cmd) {
		t.Error("q on the deck list did not quit")
	}
}
