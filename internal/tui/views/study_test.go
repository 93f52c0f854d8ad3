package views

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flashdeck-dev/flashdeck/internal/deck"
	"github.com/flashdeck-dev/flashdeck/internal/study"
	"github.com/flashdeck-dev/flashdeck/internal/tui"
)

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func cardsDetail(n int) *deck.Detail {
	d := &deck.Detail{Title: "Numbers", Cards: []deck.CardRecord{}}
	for i := 1; i <= n; i++ {
		d.Cards = append(d.Cards, deck.CardRecord{ID: int64(i), Front: fmt.Sprintf("Q%d", i), Back: fmt.Sprintf("A%d", i)})
	}
	return d
}

func loadedStudy(t *testing.T, n int, opts study.Options) StudyModel {
	t.Helper()
	m := NewStudyModel(1, opts, 80, 24)
	m, _ = m.Update(tui.DeckLoadedMsg{Token: m.Token(), DeckID: 1, Detail: cardsDetail(n)})
	return m
}

func TestStudyViewRevealAndFinish(t *testing.T) {
	m := loadedStudy(t, 2, study.ExtendedOptions())
	if !strings.Contains(m.View(), "Q1") {
		t.Fatalf("first card front not rendered:\n%s", m.View())
	}

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		m, cmd = m.Update(keySpace)
		if cmd != nil {
			t.Fatalf("step %d: unexpected command", i)
		}
	}
	s := m.State()
	if s.Index != 1 || !s.Flipped {
		t.Fatalf("want Showing(1, back), got (%d, %v)", s.Index, s.Flipped)
	}
	if !strings.Contains(m.View(), study.CaptionFinish) {
		t.Errorf("finish caption missing:\n%s", m.View())
	}

	m, cmd = m.Update(keySpace)
	if cmd == nil {
		t.Fatal("expected exit command after last card")
	}
	exit, ok := cmd().(tui.ExitSessionMsg)
	if !ok || !exit.Finished || exit.Token != m.Token() {
		t.Errorf("exit message: %+v", exit)
	}
}

func TestStudyViewLoadFailureRaisesNotice(t *testing.T) {
	m := NewStudyModel(5, study.Options{}, 80, 24)

	m, cmd := m.Update(tui.DeckLoadedMsg{Token: m.Token(), DeckID: 5, Err: errors.New("boom")})
	if cmd == nil {
		t.Fatal("expected notice command")
	}
	notice, ok := cmd().(tui.NoticeMsg)
	if !ok || notice.Text != study.LoadFailureNotice {
		t.Errorf("notice: %+v", notice)
	}
	if m.State().Phase != study.PhaseEmpty {
		t.Errorf("phase: got %v, want empty", m.State().Phase)
	}

	// A duplicate result does not raise a second notice.
	_, cmd = m.Update(tui.DeckLoadedMsg{Token: m.Token(), DeckID: 5, Err: errors.New("boom")})
	if cmd != nil {
		t.Error("duplicate failure raised another notice")
	}
}

func TestStudyViewIgnoresForeignToken(t *testing.T) {
	m := NewStudyModel(5, study.Options{}, 80, 24)
	m, _ = m.Update(tui.DeckLoadedMsg{Token: "old-session", DeckID: 5, Detail: cardsDetail(3)})
	if m.State().Phase != study.PhaseLoading {
		t.Errorf("phase: got %v, want loading", m.State().Phase)
	}
}

func TestStudyViewEmptyDeckExitOnly(t *testing.T) {
	m := loadedStudy(t, 0, study.ExtendedOptions())
	if !strings.Contains(m.View(), "no cards") {
		t.Errorf("empty view:\n%s", m.View())
	}

	for _, k := range []tea.KeyMsg{keySpace, runeKey('r'), runeKey('1')} {
		var cmd tea.Cmd
		m, cmd = m.Update(k)
		if cmd != nil {
			t.Errorf("key %q produced a command on an empty deck", k.String())
		}
	}

	_, cmd := m.Update(keyEsc)
	if cmd == nil {
		t.Fatal("expected exit command")
	}
	if exit := cmd().(tui.ExitSessionMsg); exit.Finished {
		t.Error("exit from empty deck is not a finish")
	}
}

func TestStudyViewJumpKeys(t *testing.T) {
	m := loadedStudy(t, 25, study.ExtendedOptions())
	if !strings.Contains(m.View(), "#20") {
		t.Errorf("jump targets not rendered:\n%s", m.View())
	}

	m, cmd := m.Update(runeKey('2'))
	if cmd == nil {
		t.Fatal("expected action command")
	}
	if s := m.State(); s.Index != 19 || s.Flipped {
		t.Errorf("jump 2: got (%d, %v), want (19, front)", s.Index, s.Flipped)
	}

	// Only two targets exist.
	m, _ = m.Update(runeKey('3'))
	if m.State().Index != 19 {
		t.Errorf("jump 3: index changed to %d", m.State().Index)
	}

	m, _ = m.Update(runeKey('r'))
	if m.State().Index != 0 {
		t.Errorf("restart: index %d, want 0", m.State().Index)
	}
}

func TestStudyViewBasicVariantHasNoJumps(t *testing.T) {
	m := loadedStudy(t, 25, study.Options{})
	if strings.Contains(m.View(), "jump:") {
		t.Errorf("basic variant rendered jump bar:\n%s", m.View())
	}
	m, _ = m.Update(runeKey('1'))
	if m.State().Index != 0 {
		t.Errorf("basic variant jumped to %d", m.State().Index)
	}
}

func TestStudyViewExitWhileLoadingIgnored(t *testing.T) {
	m := NewStudyModel(1, study.Options{}, 80, 24)
	if _, cmd := m.Update(keyEsc); cmd != nil {
		t.Error("exit while loading should be ignored")
	}
}

func TestStudyViewHelpFollowsActions(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		opts    study.Options
		want    []string
		notWant []string
	}{
		{"empty", 0, study.ExtendedOptions(), []string{"back to decks"}, []string{"restart", "flip"}},
		{"extended", 25, study.ExtendedOptions(), []string{"flip", "restart", "1-9", "back to decks"}, nil},
		{"basic", 25, study.Options{}, []string{"flip", "restart", "back to decks"}, []string{"1-9"}},
		{"short deck", 3, study.ExtendedOptions(), []string{"restart"}, []string{"1-9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := loadedStudy(t, tt.n, tt.opts).View()
			for _, s := range tt.want {
				if !strings.Contains(view, s) {
					t.Errorf("view missing %q:\n%s", s, view)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(view, s) {
					t.Errorf("view has %q:\n%s", s, view)
				}
			}
		})
	}
}
