package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// Scheduler invokes a callback once after a delay
type Scheduler interface {
	ScheduleNext(fn func(), delay time.Duration)
}

// TimerScheduler is a wall-clock Scheduler that never runs callbacks itself
// Due callbacks are delivered on Fired() so the owner goroutine executes them,
// keeping every state mutation on a single goroutine
type TimerScheduler struct {
	mu    sync.Mutex
	timer *time.Timer

	fired    chan func()
	stopChan chan struct{}
	stopOnce sync.Once
	stopped  bool
}

// NewTimerScheduler creates a scheduler with a buffered delivery channel
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		fired:    make(chan func(), constants.SchedulerFireBuffer),
		stopChan: make(chan struct{}),
	}
}

// ScheduleNext arms a timer for fn, replacing any timer still outstanding
func (ts *TimerScheduler) ScheduleNext(fn func(), delay time.Duration) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.stopped {
		return
	}
	if ts.timer != nil {
		ts.timer.Stop()
	}
	ts.timer = time.AfterFunc(delay, func() {
		select {
		case ts.fired <- fn:
		case <-ts.stopChan:
		}
	})
}

// Fired delivers callbacks whose delay elapsed
func (ts *TimerScheduler) Fired() <-chan func() {
	return ts.fired
}

// Stop cancels the outstanding timer; later ScheduleNext calls are ignored
func (ts *TimerScheduler) Stop() {
	ts.stopOnce.Do(func() {
		ts.mu.Lock()
		ts.stopped = true
		if ts.timer != nil {
			ts.timer.Stop()
		}
		ts.mu.Unlock()
		close(ts.stopChan)
	})
}
