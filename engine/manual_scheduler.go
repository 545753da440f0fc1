package engine

import (
	"sort"
	"time"
)

// ManualScheduler is a deterministic Scheduler for tests
// Callbacks fire only from Advance, in due-time order, ties in scheduling order
type ManualScheduler struct {
	now     time.Duration
	seq     uint64
	pending []manualEntry
}

type manualEntry struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// NewManualScheduler creates a scheduler at virtual time zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// ScheduleNext queues fn at now+delay
func (m *ManualScheduler) ScheduleNext(fn func(), delay time.Duration) {
	m.seq++
	m.pending = append(m.pending, manualEntry{at: m.now + delay, seq: m.seq, fn: fn})
}

// Advance moves virtual time forward by d, firing every callback that comes due
// Callbacks scheduled while advancing fire too if they fall inside the window
func (m *ManualScheduler) Advance(d time.Duration) int {
	target := m.now + d
	fired := 0
	for {
		sort.SliceStable(m.pending, func(i, j int) bool {
			if m.pending[i].at != m.pending[j].at {
				return m.pending[i].at < m.pending[j].at
			}
			return m.pending[i].seq < m.pending[j].seq
		})
		if len(m.pending) == 0 || m.pending[0].at > target {
			break
		}
		next := m.pending[0]
		m.pending = m.pending[1:]
		m.now = next.at
		next.fn()
		fired++
	}
	m.now = target
	return fired
}

// Now returns the virtual time
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}

// Pending returns the number of queued callbacks
func (m *ManualScheduler) Pending() int {
	return len(m.pending)
}
