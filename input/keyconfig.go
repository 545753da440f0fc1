package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Named special keys accepted in keymap files
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl-c": tcell.KeyCtrlC,
	"ctrl-q": tcell.KeyCtrlQ,
	"ctrl-p": tcell.KeyCtrlP,
}

type keyFile struct {
	Bindings map[string]string `toml:"bindings"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var kf keyFile
	if _, err := toml.Decode(string(data), &kf); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}

	for keyStr, actionName := range kf.Bindings {
		action, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[bindings] key %q: %w", keyStr, err)
		}

		if k, ok := specialKeyNames[strings.ToLower(keyStr)]; ok {
			kt.SpecialKeys[k] = action
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[bindings] key %q: %w", keyStr, err)
		}
		kt.Runes[r] = action
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("%w: %q (expected single character, alias, or key name)", ErrUnknownKey, s)
}

func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := actionNames[name]
	if !ok {
		return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override entries
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.SpecialKeys {
		if v == ActionNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}

	return result
}
