package app

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flashdeck-dev/flashdeck/internal/config"
	"github.com/flashdeck-dev/flashdeck/internal/deck"
	"github.com/flashdeck-dev/flashdeck/internal/log"
	"github.com/flashdeck-dev/flashdeck/internal/study"
	"github.com/flashdeck-dev/flashdeck/internal/tui"
)

type fakeRepo struct {
	details map[int64]*deck.Detail
	err     error
	calls   int
}

func (f *fakeRepo) ListDecks(context.Context) ([]deck.Deck, error) {
	var decks []deck.Deck
	for id, d := range f.details {
		decks = append(decks, deck.Deck{ID: id, Title: d.Title, CardCount: len(d.Cards)})
	}
	return decks, nil
}

func (f *fakeRepo) Cards(_ context.Context, id int64) (*deck.Detail, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.details[id]
	if !ok {
		return nil, deck.ErrNotFound
	}
	return d, nil
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, collect(c)...)
	}
	return msgs
}

func deckLoaded(t *testing.T, msgs []tea.Msg) tui.DeckLoadedMsg {
	t.Helper()
	for _, m := range msgs {
		if loaded, ok := m.(tui.DeckLoadedMsg); ok {
			return loaded
		}
	}
	t.Fatalf("no DeckLoadedMsg among %d messages", len(msgs))
	return tui.DeckLoadedMsg{}
}

func newTestApp(t *testing.T, repo deck.Repository, startDeck int64) (*App, *log.Logger) {
	t.Helper()
	logger, err := log.NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	return New(config.DefaultConfig(), repo, logger, startDeck), logger
}

func oneCardRepo() *fakeRepo {
	return &fakeRepo{details: map[int64]*deck.Detail{
		1: {Title: "Solo", Cards: []deck.CardRecord{{ID: 10, Front: "A", Back: "1"}}},
	}}
}

func TestStartDeckPlaysThroughToHome(t *testing.T) {
	repo := oneCardRepo()
	a, logger := newTestApp(t, repo, 1)

	loaded := deckLoaded(t, collect(a.Init()))
	if a.Route() != tui.RoutePlay {
		t.Fatalf("route: got %v, want play", a.Route())
	}
	a.Update(loaded)

	s, ok := a.Session()
	if !ok || s.Phase != study.PhaseShowing || s.Title != "Solo" {
		t.Fatalf("session after load: %+v", s)
	}

	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	a.Update(space)
	_, cmd := a.Update(space)
	exits := collect(cmd)
	if len(exits) != 1 {
		t.Fatalf("expected one exit message, got %v", exits)
	}
	_, cmd = a.Update(exits[0])

	if a.Route() != tui.RouteHome {
		t.Errorf("route after finish: got %v, want home", a.Route())
	}
	if _, ok := a.Session(); ok {
		t.Error("session still mounted after exit")
	}
	if msgs := collect(cmd); len(msgs) != 1 {
		t.Errorf("expected deck list reload, got %v", msgs)
	} else if _, ok := msgs[0].(tui.DecksLoadedMsg); !ok {
		t.Errorf("expected DecksLoadedMsg, got %T", msgs[0])
	}
	if repo.calls != 1 {
		t.Errorf("repository calls: got %d, want 1", repo.calls)
	}

	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	var names []string
	for _, e := range events {
		names = append(names, e.Event)
	}
	want := []string{log.EventSessionStarted, log.EventDeckLoaded, log.EventSessionFinished}
	if len(names) != len(want) {
		t.Fatalf("events: got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, names[i], want[i])
		}
	}
}

func TestLoadFailureShowsNoticeOnce(t *testing.T) {
	repo := &fakeRepo{err: errors.New("backend unavailable")}
	a, _ := newTestApp(t, repo, 3)

	loaded := deckLoaded(t, collect(a.Init()))
	_, cmd := a.Update(loaded)

	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one notice, got %v", msgs)
	}
	notice, ok := msgs[0].(tui.NoticeMsg)
	if !ok || notice.Text != study.LoadFailureNotice {
		t.Fatalf("notice: %+v", msgs[0])
	}

	_, cmd = a.Update(notice)
	if cmd == nil {
		t.Error("expected notice expiry timer")
	}
	if a.Notice() != study.LoadFailureNotice {
		t.Errorf("notice text: got %q", a.Notice())
	}

	s, _ := a.Session()
	if s.Phase != study.PhaseEmpty {
		t.Errorf("phase: got %v, want empty", s.Phase)
	}

	// The expiry for an older notice leaves the current one alone.
	a.Update(tui.NoticeExpiredMsg{Seq: 0})
	if a.Notice() == "" {
		t.Error("stale expiry cleared the notice")
	}
	a.Update(tui.NoticeExpiredMsg{Seq: 1})
	if a.Notice() != "" {
		t.Errorf("notice not cleared: %q", a.Notice())
	}
}

func TestLateResultAfterExitIsDropped(t *testing.T) {
	repo := oneCardRepo()
	a, _ := newTestApp(t, repo, 0)

	_, cmd := a.Update(tui.OpenDeckMsg{DeckID: 1})
	first := deckLoaded(t, collect(cmd))

	// Settle the first session as empty and leave it, then open the deck again.
	a.Update(tui.DeckLoadedMsg{Token: first.Token, DeckID: 1, Detail: &deck.Detail{}})
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a.Update(collect(cmd)[0])
	if a.Route() != tui.RouteHome {
		t.Fatalf("route: got %v, want home", a.Route())
	}

	_, cmd = a.Update(tui.OpenDeckMsg{DeckID: 1})
	second := deckLoaded(t, collect(cmd))
	if second.Token == first.Token {
		t.Fatal("sessions share a token")
	}

	// The first session's result shows up late and must not touch the new one.
	a.Update(first)
	s, _ := a.Session()
	if s.Phase != study.PhaseLoading {
		t.Errorf("stale result applied: phase %v", s.Phase)
	}

	a.Update(second)
	s, _ = a.Session()
	if s.Phase != study.PhaseShowing {
		t.Errorf("current result not applied: phase %v", s.Phase)
	}
}

func TestResultWhileHomeIsDropped(t *testing.T) {
	a, _ := newTestApp(t, oneCardRepo(), 0)

	_, cmd := a.Update(tui.DeckLoadedMsg{Token: "nobody", DeckID: 1, Detail: &deck.Detail{}})
	if cmd != nil {
		t.Error("unexpected command for orphaned result")
	}
	if a.Route() != tui.RouteHome {
		t.Errorf("route: got %v, want home", a.Route())
	}
}

func TestDoubleCtrlCQuits(t *testing.T) {
	a, _ := newTestApp(t, oneCardRepo(), 0)
	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}

	_, cmd := a.Update(ctrlC)
	if cmd == nil {
		t.Fatal("expected reset timer")
	}
	_, cmd = a.Update(ctrlC)
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("second Ctrl+C did not quit")
	}
}

func TestEscOnHomeDoesNotQuit(t *testing.T) {
	a, _ := newTestApp(t, oneCardRepo(), 0)
	for _, msg := range collect(a.Init()) {
		a.Update(msg)
	}

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	for _, msg := range collect(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			t.Fatal("esc on the deck list quit the program")
		}
	}
	if a.Route() != tui.RouteHome {
		t.Errorf("route: got %v, want home", a.Route())
	}
}
