package constants

// Board
const (
	// GridWidth is the board width in cells, boundary ring included
	GridWidth = 40

	// GridHeight is the board height in cells, boundary ring included
	GridHeight = 30

	// MinGridSize leaves at least a 3x3 interior inside the walls
	MinGridSize = 5
)

// Snake Start Layout
const (
	// StartX is the anchor column; the head spawns StartLength cells past it
	StartX = 5

	// StartY is the anchor row
	StartY = 5

	// StartLength is the initial segment count
	StartLength = 10
)

// Difficulty Ramp
const (
	// RampThreshold is the score at which the ramp switches from fast to slow steps
	// The threshold score itself leaves the interval unchanged
	RampThreshold = 25

	// RampFastStepMs is the interval reduction per reward below the threshold
	RampFastStepMs = 2

	// RampSlowStepMs is the interval reduction per reward above the threshold
	RampSlowStepMs = 1
)

// Reward Placement
const (
	// RewardMaxAttempts is the number of random draws before falling back to a free-cell scan
	RewardMaxAttempts = 100
)
