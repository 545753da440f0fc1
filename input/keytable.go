package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},

		Runes: map[rune]Action{
			// vi motions
			'h': ActionLeft,
			'j': ActionDown,
			'k': ActionUp,
			'l': ActionRight,

			'w': ActionUp,
			'a': ActionLeft,
			's': ActionDown,
			'd': ActionRight,

			' ': ActionPauseRestart,
			'p': ActionPauseRestart,
			'q': ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}

// Lookup resolves a key event to its bound action
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}
