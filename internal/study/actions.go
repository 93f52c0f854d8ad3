package study

// Action is a user action offered by the session screen.
type Action int

const (
	ActionReveal Action = iota
	ActionRestart
	ActionJump
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionReveal:
		return "reveal"
	case ActionRestart:
		return "restart"
	case ActionJump:
		return "jump"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Actions lists what the user may do in the current phase.
func (s State) Actions() []Action {
	switch s.Phase {
	case PhaseEmpty:
		return []Action{ActionExit}
	case PhaseShowing:
		actions := []Action{ActionReveal, ActionRestart}
		if len(s.JumpTargets()) > 0 {
			actions = append(actions, ActionJump)
		}
		return append(actions, ActionExit)
	default:
		return nil
	}
}
