// Package study implements the view state of a single deck play-through.
//
// A session is a plain State value. Every change goes through Reduce, which
// maps (state, event) to the next state plus an Effect the caller must carry
// out (show a notice, leave the screen). Nothing in this package touches the
// terminal or the repository.
package study

import (
	"github.com/google/uuid"
)

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseLoading Phase = iota // waiting for the deck fetch
	PhaseEmpty                // no cards to show; exit only
	PhaseShowing              // a card is on screen
	PhaseEnded                // finished; the screen is left
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseEmpty:
		return "empty"
	case PhaseShowing:
		return "showing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// DefaultJumpInterval is the spacing between jump targets.
const DefaultJumpInterval = 10

// LoadFailureNotice is the notice raised when the deck cannot be fetched.
const LoadFailureNotice = "failed to fetch deck"

// Captions shown under the card.
const (
	CaptionFlip   = "tap to flip"
	CaptionFinish = "tap to finish"
	CaptionNext   = "tap for next card"
)

// Card is a loaded card. The ID is the repository id rendered as a string.
type Card struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Options select the session variant. The zero value is the basic variant.
type Options struct {
	JumpNavigation   bool `json:"jump_navigation"`
	LastCardEmphasis bool `json:"last_card_emphasis"`
	JumpInterval     int  `json:"jump_interval"`
}

// ExtendedOptions enables jump navigation and last-card emphasis.
func ExtendedOptions() Options {
	return Options{
		JumpNavigation:   true,
		LastCardEmphasis: true,
		JumpInterval:     DefaultJumpInterval,
	}
}

// State is the complete view state of one session.
type State struct {
	DeckID   int64   `json:"deck_id"`
	Token    string  `json:"token"`
	Phase    Phase   `json:"phase"`
	Title    string  `json:"title"`
	Category string  `json:"category,omitempty"`
	Cards    []Card  `json:"cards"`
	Index    int     `json:"index"`
	Flipped  bool    `json:"flipped"`
	Loading  bool    `json:"loading"`
	Notice   string  `json:"notice,omitempty"`
	Options  Options `json:"options"`
}

// NewSession returns the initial Loading state for deckID. The state owns a
// fresh token; load results carrying any other token are ignored.
func NewSession(deckID int64, opts Options) State {
	if opts.JumpInterval <= 0 {
		opts.JumpInterval = DefaultJumpInterval
	}
	return State{
		DeckID:  deckID,
		Token:   uuid.NewString(),
		Phase:   PhaseLoading,
		Loading: true,
		Options: opts,
	}
}

// Current returns the card on screen.
func (s State) Current() (Card, bool) {
	if s.Phase != PhaseShowing || s.Index < 0 || s.Index >= len(s.Cards) {
		return Card{}, false
	}
	return s.Cards[s.Index], true
}

// Text returns the visible face of the current card.
func (s State) Text() string {
	c, ok := s.Current()
	if !ok {
		return ""
	}
	if s.Flipped {
		return c.Back
	}
	return c.Front
}

// Face returns "back" when flipped and "front" otherwise.
func (s State) Face() string {
	if s.Flipped {
		return "back"
	}
	return "front"
}

// Progress is the completion percentage including the card on screen.
func (s State) Progress() float64 {
	if len(s.Cards) == 0 {
		return 0
	}
	return float64(s.Index+1) / float64(len(s.Cards)) * 100
}

// IsLastCard reports whether the last card is on screen.
func (s State) IsLastCard() bool {
	return len(s.Cards) > 0 && s.Index == len(s.Cards)-1
}

// IsLastCardBack reports whether the last card is showing its back.
func (s State) IsLastCardBack() bool {
	return s.IsLastCard() && s.Flipped
}

// Emphasized reports whether the last-card emphasis style applies.
func (s State) Emphasized() bool {
	return s.Options.LastCardEmphasis && s.IsLastCardBack()
}

// Caption is the instruction shown under the card.
func (s State) Caption() string {
	if !s.Flipped {
		return CaptionFlip
	}
	if s.IsLastCard() {
		return CaptionFinish
	}
	return CaptionNext
}

// JumpTargets returns the 1-based card positions offered for direct
// navigation, or nil when jump navigation is off.
func (s State) JumpTargets() []int {
	if !s.Options.JumpNavigation {
		return nil
	}
	return JumpTargets(len(s.Cards), s.Options.JumpInterval)
}

// JumpTargets returns interval, 2*interval, ... up to and including n.
func JumpTargets(n, interval int) []int {
	if interval <= 0 {
		return nil
	}
	var targets []int
	for target := interval; target <= n; target += interval {
		targets = append(targets, target)
	}
	return targets
}
