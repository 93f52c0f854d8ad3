package study

import (
	"strconv"

	"github.com/flashdeck-dev/flashdeck/internal/deck"
)

// Event is an input to Reduce.
type Event interface {
	event()
}

// Loaded delivers a successful fetch for the session owning Token.
type Loaded struct {
	Token  string
	Detail *deck.Detail
}

// LoadFailed delivers a failed fetch for the session owning Token.
type LoadFailed struct {
	Token string
	Err   error
}

// Reveal flips the card, advances, or finishes, depending on the face shown.
type Reveal struct{}

// Restart returns to the first card's front.
type Restart struct{}

// Jump moves to the zero-based card index Target.
type Jump struct {
	Target int
}

func (Loaded) event()     {}
func (LoadFailed) event() {}
func (Reveal) event()     {}
func (Restart) event()    {}
func (Jump) event()       {}

// Effect is work the caller performs after a transition.
type Effect int

const (
	EffectNone              Effect = iota
	EffectNotifyLoadFailure        // show LoadFailureNotice once
	EffectEnd                      // leave the session screen
)

// Reduce applies ev to s. Events that do not apply to the current phase
// return s unchanged with EffectNone.
func Reduce(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case Loaded:
		if !s.owns(ev.Token) {
			return s, EffectNone
		}
		return applyLoaded(s, ev.Detail), EffectNone

	case LoadFailed:
		if !s.owns(ev.Token) {
			return s, EffectNone
		}
		s.Loading = false
		s.Cards = nil
		s.Index = 0
		s.Flipped = false
		s.Phase = PhaseEmpty
		s.Notice = LoadFailureNotice
		return s, EffectNotifyLoadFailure

	case Reveal:
		if s.Phase != PhaseShowing {
			return s, EffectNone
		}
		if !s.Flipped {
			s.Flipped = true
			return s, EffectNone
		}
		if s.Index < len(s.Cards)-1 {
			s.Index++
			s.Flipped = false
			return s, EffectNone
		}
		s.Phase = PhaseEnded
		return s, EffectEnd

	case Restart:
		if s.Phase != PhaseShowing {
			return s, EffectNone
		}
		s.Index = 0
		s.Flipped = false
		return s, EffectNone

	case Jump:
		if s.Phase != PhaseShowing || !s.Options.JumpNavigation {
			return s, EffectNone
		}
		if ev.Target < 0 || ev.Target >= len(s.Cards) {
			return s, EffectNone
		}
		s.Index = ev.Target
		s.Flipped = false
		return s, EffectNone
	}

	return s, EffectNone
}

// owns reports whether a load result for token may be applied.
func (s State) owns(token string) bool {
	return s.Phase == PhaseLoading && token != "" && token == s.Token
}

func applyLoaded(s State, d *deck.Detail) State {
	s.Loading = false
	s.Index = 0
	s.Flipped = false

	if d == nil {
		s.Phase = PhaseEmpty
		return s
	}

	s.Title = d.Title
	s.Category = d.CategoryLabel()

	cards := make([]Card, 0, len(d.Cards))
	for _, c := range d.Cards {
		cards = append(cards, Card{
			ID:    strconv.FormatInt(c.ID, 10),
			Front: c.Front,
			Back:  c.Back,
		})
	}
	s.Cards = cards

	if len(cards) == 0 {
		s.Phase = PhaseEmpty
	} else {
		s.Phase = PhaseShowing
	}
	return s
}
