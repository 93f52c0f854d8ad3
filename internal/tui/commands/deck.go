// Package commands provides Bubble Tea commands for TUI operations.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flashdeck-dev/flashdeck/internal/deck"
	"github.com/flashdeck-dev/flashdeck/internal/tui"
)

// LoadDecksCmd fetches the deck list for the home screen.
func LoadDecksCmd(repo deck.Repository, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return tui.DecksLoadedMsg{Err: fmt.Errorf("deck repository not available")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		decks, err := repo.ListDecks(ctx)
		if err != nil {
			return tui.DecksLoadedMsg{Err: err}
		}
		return tui.DecksLoadedMsg{Decks: decks}
	}
}

// LoadDeckCmd issues the single deck fetch of a study session. The result
// carries token so it can be matched to the session that asked for it.
func LoadDeckCmd(repo deck.Repository, token string, deckID int64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		msg := tui.DeckLoadedMsg{Token: token, DeckID: deckID}
		if repo == nil {
			msg.Err = fmt.Errorf("deck repository not available")
			return msg
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		msg.Detail, msg.Err = repo.Cards(ctx, deckID)
		return msg
	}
}

// NoticeTimeoutCmd expires the notice with sequence number seq after d.
func NoticeTimeoutCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tui.NoticeExpiredMsg{Seq: seq}
	})
}
