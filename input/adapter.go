package input

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// Target receives decoded player intents
// Implemented by engine.Loop
type Target interface {
	SetDirection(d engine.Direction)
	PauseOrRestart() (engine.PauseResult, error)
}

// Adapter turns terminal key events into actions on a Target
type Adapter struct {
	keys *KeyTable
}

// NewAdapter creates an adapter; nil table uses the defaults
func NewAdapter(keys *KeyTable) *Adapter {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Adapter{keys: keys}
}

// Translate maps a key event to an action
func (a *Adapter) Translate(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	// Alt/Meta chords are never game input
	if ev.Modifiers()&(tcell.ModAlt|tcell.ModMeta) != 0 {
		return ActionNone
	}
	return a.keys.Lookup(ev.Key(), ev.Rune())
}

// Dispatch forwards an action to the target
// Returns true if the action was consumed; Quit and None are left to the caller
func (a *Adapter) Dispatch(action Action, t Target) bool {
	if d, ok := action.Direction(); ok {
		t.SetDirection(d)
		return true
	}

	if action == ActionPauseRestart {
		if _, err := t.PauseOrRestart(); err != nil {
			log.Printf("input: pause/restart failed: %v", err)
		}
		return true
	}

	return false
}
