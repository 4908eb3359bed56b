package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // Space - toggle pause
	ActionRestart        // R - restart after game over or victory
	ActionLeft           // Left arrow, A - nudge paddle left
	ActionRight          // Right arrow, D - nudge paddle right
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C - stop the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
