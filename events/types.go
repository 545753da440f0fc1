package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventRewardConsumed signals the snake ate the reward item
	// Trigger: GameState.Tick on a consuming step
	// Consumer: SoundHandler, LogHandler | Payload: *RewardPayload
	EventRewardConsumed EventType = iota

	// EventCollision signals a terminal wall or self collision
	// Trigger: GameState.Tick on a terminal step
	// Consumer: SoundHandler, LogHandler | Payload: *CollisionPayload
	EventCollision

	// EventBoardFull signals no free interior cell remains for the reward
	// Trigger: GameState.Tick when relocation is exhausted | Payload: *RewardPayload
	EventBoardFull

	// EventPaused signals a Running to Paused transition
	// Trigger: GameState.PauseOrRestart | Payload: nil
	EventPaused

	// EventResumed signals a Paused to Running transition
	// Trigger: GameState.PauseOrRestart | Payload: nil
	EventResumed

	// EventSessionStarted signals a fresh GameState was installed
	// Trigger: Loop.Start, Loop restart | Payload: nil
	EventSessionStarted
)

var eventNames = [...]string{
	EventRewardConsumed: "reward_consumed",
	EventCollision:      "collision",
	EventBoardFull:      "board_full",
	EventPaused:         "paused",
	EventResumed:        "resumed",
	EventSessionStarted: "session_started",
}

// String returns the snake_case event name
func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64 // Game tick that produced the event
	Timestamp time.Time
}

// RewardPayload carries the consumed position and the post-consumption totals
type RewardPayload struct {
	X, Y       int
	Score      int
	Length     int
	IntervalMs int64
}

// CollisionPayload carries the crash cell and what was hit
type CollisionPayload struct {
	X, Y  int
	Cause string // "wall" or "self"
	Score int
}
