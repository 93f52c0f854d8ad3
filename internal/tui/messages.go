package tui

import (
	"github.com/flashdeck-dev/flashdeck/internal/deck"
	"github.com/flashdeck-dev/flashdeck/internal/study"
)

// ============================================================================
// Repository Messages
// ============================================================================

// DecksLoadedMsg carries the home screen's deck list.
type DecksLoadedMsg struct {
	Decks []deck.Deck
	Err   error
}

// DeckLoadedMsg carries the result of a session's deck fetch. Token names the
// session that issued the request.
type DeckLoadedMsg struct {
	Token  string
	DeckID int64
	Detail *deck.Detail
	Err    error
}

// ============================================================================
// Navigation Messages
// ============================================================================

// OpenDeckMsg starts a study session for DeckID.
type OpenDeckMsg struct {
	DeckID int64
}

// ExitSessionMsg leaves the study session for the home screen. Finished is
// true when the user completed the last card.
type ExitSessionMsg struct {
	Token    string
	Finished bool
	Index    int
}

// SessionActionMsg reports a restart or jump for logging.
type SessionActionMsg struct {
	Token  string
	Action study.Action
	Index  int
}

// ============================================================================
// Utility Messages
// ============================================================================

// NoticeMsg raises a transient notice.
type NoticeMsg struct {
	Text string
}

// NoticeExpiredMsg clears the notice raised with sequence number Seq.
type NoticeExpiredMsg struct {
	Seq int
}

// CtrlCResetMsg clears the pending Ctrl+C confirmation.
type CtrlCResetMsg struct{}
