package constants

import "time"

// Game Loop Timing
const (
	// InitialTickInterval is the starting delay between snake steps
	InitialTickInterval = 130 * time.Millisecond

	// MinTickInterval is the floor the difficulty ramp never crosses
	MinTickInterval = 60 * time.Millisecond

	// SchedulerFireBuffer is the capacity of the fired-callback channel
	SchedulerFireBuffer = 4
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 64

	// EventBufferMask is the bitmask for fast modulo operations (64 - 1)
	EventBufferMask = 63
)
