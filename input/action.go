package input

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// Action is the semantic meaning of a key press
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPauseRestart // Pause, resume, or restart after game over
	ActionQuit
)

// actionNames maps canonical keymap names to actions
// "none" unbinds a key when merged over the defaults
var actionNames = map[string]Action{
	"none":          ActionNone,
	"up":            ActionUp,
	"down":          ActionDown,
	"left":          ActionLeft,
	"right":         ActionRight,
	"pause_restart": ActionPauseRestart,
	"quit":          ActionQuit,
}

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionPauseRestart:
		return "pause_restart"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Direction returns the movement direction for steering actions
func (a Action) Direction() (engine.Direction, bool) {
	switch a {
	case ActionUp:
		return engine.DirUp, true
	case ActionDown:
		return engine.DirDown, true
	case ActionLeft:
		return engine.DirLeft, true
	case ActionRight:
		return engine.DirRight, true
	}
	return 0, false
}

// ActionForKeyCode maps legacy DOM key codes to actions
// Unknown codes map to ActionNone
func ActionForKeyCode(code int) Action {
	switch code {
	case constants.KeyCodeLeft:
		return ActionLeft
	case constants.KeyCodeUp:
		return ActionUp
	case constants.KeyCodeRight:
		return ActionRight
	case constants.KeyCodeDown:
		return ActionDown
	case constants.KeyCodeSpace:
		return ActionPauseRestart
	}
	return ActionNone
}
