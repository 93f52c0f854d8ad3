package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/flashdeck-dev/flashdeck/internal/study"
)

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	// Home
	Open key.Binding
	Quit key.Binding

	// Study session
	Reveal  key.Binding
	Restart key.Binding
	Jump    key.Binding
	Exit    key.Binding

	// Control
	CtrlC key.Binding
}

// DefaultKeyMap provides the default key bindings for the TUI.
var DefaultKeyMap = KeyMap{
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "study deck"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Reveal: key.NewBinding(
		key.WithKeys(" ", "space", "enter"),
		key.WithHelp("space", "flip / next"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "jump"),
	),
	Exit: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back to decks"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "exit"),
	),
}

// StudyHelp adapts the session bindings to bubbles/help. Only the bindings
// for Actions are shown.
type StudyHelp struct {
	Keys    KeyMap
	Actions []study.Action
}

// Binding returns the key binding that triggers action.
func (k KeyMap) Binding(action study.Action) key.Binding {
	switch action {
	case study.ActionReveal:
		return k.Reveal
	case study.ActionRestart:
		return k.Restart
	case study.ActionJump:
		return k.Jump
	default:
		return k.Exit
	}
}

// ShortHelp implements help.KeyMap.
func (h StudyHelp) ShortHelp() []key.Binding {
	bindings := make([]key.Binding, 0, len(h.Actions))
	for _, a := range h.Actions {
		bindings = append(bindings, h.Keys.Binding(a))
	}
	return bindings
}

// FullHelp implements help.KeyMap.
func (h StudyHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
