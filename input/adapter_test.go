package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

type recordingTarget struct {
	dirs   []engine.Direction
	toggle int
	err    error
}

func (r *recordingTarget) SetDirection(d engine.Direction) { r.dirs = append(r.dirs, d) }

func (r *recordingTarget) PauseOrRestart() (engine.PauseResult, error) {
	r.toggle++
	return engine.Paused, r.err
}

func TestActionForKeyCode(t *testing.T) {
	tests := []struct {
		code int
		want Action
	}{
		{37, ActionLeft},
		{38, ActionUp},
		{39, ActionRight},
		{40, ActionDown},
		{32, ActionPauseRestart},
		{13, ActionNone},
		{0, ActionNone},
	}
	for _, tt := range tests {
		if got := ActionForKeyCode(tt.code); got != tt.want {
			t.Errorf("ActionForKeyCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestTranslateDefaults(t *testing.T) {
	a := NewAdapter(nil)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionUp},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionLeft},
		{"vi j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), ActionDown},
		{"wasd d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), ActionRight},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionPauseRestart},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"alt chord", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModAlt), ActionNone},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Translate(tt.ev); got != tt.want {
				t.Errorf("Translate = %v, want %v", got, tt.want)
			}
		})
	}

	if a.Translate(nil) != ActionNone {
		t.Error("nil event should translate to none")
	}
}

func TestDispatch(t *testing.T) {
	a := NewAdapter(nil)
	target := &recordingTarget{}

	if !a.Dispatch(ActionUp, target) || !a.Dispatch(ActionLeft, target) {
		t.Fatal("steering actions not consumed")
	}
	if len(target.dirs) != 2 || target.dirs[0] != engine.DirUp || target.dirs[1] != engine.DirLeft {
		t.Errorf("dirs = %v", target.dirs)
	}

	if !a.Dispatch(ActionPauseRestart, target) || target.toggle != 1 {
		t.Error("pause not forwarded")
	}

	target.err = errors.New("factory failed")
	if !a.Dispatch(ActionPauseRestart, target) {
		t.Error("failed restart should still be consumed")
	}

	if a.Dispatch(ActionQuit, target) || a.Dispatch(ActionNone, target) {
		t.Error("quit and none belong to the caller")
	}
}

func TestDispatchDrivesLoop(t *testing.T) {
	gs := engine.NewTestGameState(engine.NewTestRules(), 1)
	loop := engine.NewLoop(gs, engine.NewManualScheduler(), nil, nil, nil)
	a := NewAdapter(nil)

	a.Dispatch(a.Translate(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone)), loop)
	if gs.Snake.PendingDirection() != engine.DirUp {
		t.Errorf("pending = %v, want up", gs.Snake.PendingDirection())
	}

	// Reversal is ignored by the snake
	a.Dispatch(ActionLeft, loop)
	if gs.Snake.PendingDirection() != engine.DirUp {
		t.Errorf("pending = %v after reversal, want up", gs.Snake.PendingDirection())
	}

	a.Dispatch(ActionPauseRestart, loop)
	if !gs.Paused {
		t.Error("space did not pause")
	}
}
