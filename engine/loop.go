package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-snake/events"
)

// FrameDrawer paints a read-only view of the state
type FrameDrawer interface {
	DrawFrame(gs *GameState)
}

// StateFactory builds the GameState installed on restart
type StateFactory func() (*GameState, error)

// Loop drives one GameState through an external Scheduler
// All methods must be called from the goroutine that runs scheduler callbacks
type Loop struct {
	state   *GameState
	sched   Scheduler
	drawer  FrameDrawer
	router  *events.Router[*GameState]
	factory StateFactory

	// gen invalidates callbacks scheduled before a pause or restart
	gen uint64
}

// NewLoop wires a state to its collaborators; router and drawer may be nil
func NewLoop(state *GameState, sched Scheduler, drawer FrameDrawer, router *events.Router[*GameState], factory StateFactory) *Loop {
	return &Loop{
		state:   state,
		sched:   sched,
		drawer:  drawer,
		router:  router,
		factory: factory,
	}
}

// State returns the current session
func (l *Loop) State() *GameState {
	return l.state
}

// Start announces the session, draws the first frame and schedules the first tick if running
func (l *Loop) Start() {
	l.announce()
	l.dispatch()
	l.Redraw()
	if l.state.Ticking() {
		l.schedule()
	}
}

// Step runs one tick immediately, then dispatches events and draws
func (l *Loop) Step() MoveOutcome {
	out := l.state.Tick()
	l.dispatch()
	l.Redraw()
	return out
}

// SetDirection forwards a heading to the snake of a live session
func (l *Loop) SetDirection(d Direction) {
	if l.state.Over {
		return
	}
	l.state.Snake.SetDirection(d)
}

// PauseOrRestart toggles pause, resuming the schedule when needed,
// or replaces an ended session with a fresh one from the factory
func (l *Loop) PauseOrRestart() (PauseResult, error) {
	res := l.state.PauseOrRestart()

	switch res {
	case Paused:
		l.gen++
	case Resumed:
		l.schedule()
	case RestartRequested:
		if l.factory == nil {
			return res, fmt.Errorf("restart: no state factory")
		}
		gs, err := l.factory()
		if err != nil {
			return res, fmt.Errorf("restart: %w", err)
		}
		l.state = gs
		l.gen++
		l.announce()
		if gs.Ticking() {
			l.schedule()
		}
	}

	l.dispatch()
	l.Redraw()
	return res, nil
}

// Redraw hands the state to the drawer
func (l *Loop) Redraw() {
	if l.drawer != nil {
		l.drawer.DrawFrame(l.state)
	}
}

func (l *Loop) schedule() {
	l.gen++
	gen := l.gen
	l.sched.ScheduleNext(func() { l.fire(gen) }, l.state.TickInterval)
}

// fire runs a scheduled tick unless it went stale, and reschedules while running
func (l *Loop) fire(gen uint64) {
	if gen != l.gen || !l.state.Ticking() {
		return
	}
	l.Step()
	if l.state.Ticking() {
		l.schedule()
	}
}

func (l *Loop) announce() {
	if l.router == nil {
		return
	}
	l.router.Queue().Push(events.GameEvent{
		Type:      events.EventSessionStarted,
		Tick:      l.state.Ticks(),
		Timestamp: time.Now(),
	})
}

func (l *Loop) dispatch() {
	if l.router != nil {
		l.router.DispatchAll(l.state)
	}
}
