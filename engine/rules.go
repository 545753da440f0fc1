package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// Sentinel errors
var (
	ErrInvalidRules = errors.New("invalid rules")
	ErrNoFreeCell   = errors.New("no free interior cell")
)

// Rules holds the parameters of one session, read-only after NewGameState
type Rules struct {
	Grid Grid

	// Start layout: head spawns StartLength cells past Start along StartDirection
	Start          Coord
	StartLength    int
	StartDirection Direction

	// Difficulty ramp
	InitialInterval time.Duration
	MinInterval     time.Duration
	RampThreshold   int
	RampFastStep    time.Duration // Per reward below the threshold
	RampSlowStep    time.Duration // Per reward above the threshold

	// RewardAttempts bounds random draws before the free-cell scan
	RewardAttempts int

	// TailChase lets the head enter the cell the tail vacates on the same step
	TailChase bool

	// StartPaused holds the session in Idle until the first resume
	StartPaused bool
}

// DefaultRules returns the classic 40x30 board
func DefaultRules() Rules {
	return Rules{
		Grid:            Grid{Width: constants.GridWidth, Height: constants.GridHeight},
		Start:           Coord{X: constants.StartX, Y: constants.StartY},
		StartLength:     constants.StartLength,
		StartDirection:  DirRight,
		InitialInterval: constants.InitialTickInterval,
		MinInterval:     constants.MinTickInterval,
		RampThreshold:   constants.RampThreshold,
		RampFastStep:    constants.RampFastStepMs * time.Millisecond,
		RampSlowStep:    constants.RampSlowStepMs * time.Millisecond,
		RewardAttempts:  constants.RewardMaxAttempts,
	}
}

// Validate checks the board can hold the starting snake and the ramp is well formed
func (r Rules) Validate() error {
	if r.Grid.Width < constants.MinGridSize || r.Grid.Height < constants.MinGridSize {
		return fmt.Errorf("%w: grid %dx%d smaller than %d", ErrInvalidRules, r.Grid.Width, r.Grid.Height, constants.MinGridSize)
	}
	if r.StartLength < 1 {
		return fmt.Errorf("%w: start length %d", ErrInvalidRules, r.StartLength)
	}
	if r.StartDirection > DirRight {
		return fmt.Errorf("%w: start direction %d", ErrInvalidRules, r.StartDirection)
	}
	for _, c := range startBody(r.Start, r.StartLength, r.StartDirection) {
		if !r.Grid.InInterior(c) {
			return fmt.Errorf("%w: starting segment %s outside interior", ErrInvalidRules, c)
		}
	}
	if r.StartLength >= r.Grid.InteriorSize() {
		return fmt.Errorf("%w: snake of %d leaves no room for the reward", ErrInvalidRules, r.StartLength)
	}
	if r.MinInterval <= 0 || r.InitialInterval < r.MinInterval {
		return fmt.Errorf("%w: interval %v below floor %v", ErrInvalidRules, r.InitialInterval, r.MinInterval)
	}
	if r.RampFastStep < 0 || r.RampSlowStep < 0 {
		return fmt.Errorf("%w: negative ramp step", ErrInvalidRules)
	}
	if r.RewardAttempts < 0 {
		return fmt.Errorf("%w: reward attempts %d", ErrInvalidRules, r.RewardAttempts)
	}
	return nil
}
