package engine

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/status"
)

// Phase is the session lifecycle position derived from GameState flags
type Phase uint8

const (
	PhaseIdle    Phase = iota // No tick has run yet
	PhaseRunning              // Ticking
	PhasePaused               // Ticking suspended by request
	PhaseOver                 // Terminal; needs a new GameState
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "over"
	}
}

// PauseResult tells the caller what PauseOrRestart did
type PauseResult uint8

const (
	Paused           PauseResult = iota // Running -> Paused, stop scheduling
	Resumed                             // Paused -> Running, resume scheduling
	RestartRequested                    // Session is over, caller must install a new GameState
)

// Option configures a GameState at construction
type Option func(*GameState)

// WithEvents attaches the queue that receives game events
func WithEvents(q *events.EventQueue) Option {
	return func(gs *GameState) { gs.events = q }
}

// WithStatus publishes counters to reg instead of a private registry
func WithStatus(reg *status.Registry) Option {
	return func(gs *GameState) { gs.statusReg = reg }
}

// GameState owns one session: the snake, the reward, score and pacing
// Accessed only from the goroutine running the loop
type GameState struct {
	// ===== SESSION (read-only after init) =====
	ID    uuid.UUID
	Rules Rules

	// ===== SIMULATION =====
	Snake        *Snake
	Reward       RewardItem
	Score        int
	TickInterval time.Duration
	Paused       bool
	Over         bool
	BoardFull    bool  // Over because no cell was left for the reward
	CrashPoint   Coord // Blocked cell of the terminal step, valid when Over && !BoardFull
	LastOutcome  MoveOutcome

	ticks uint64
	rng   *rand.Rand

	events    *events.EventQueue
	statusReg *status.Registry

	// Cached metric pointers
	statTicks      *atomic.Int64
	statScore      *atomic.Int64
	statLength     *atomic.Int64
	statInterval   *atomic.Int64
	statPlacements *atomic.Int64
	statAttempts   *atomic.Int64
	statOver       *atomic.Bool
}

// NewGameState validates rules, lays out the snake and places the first reward
func NewGameState(rules Rules, rng *rand.Rand, opts ...Option) (*GameState, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	snake := NewSnake(rules.Start, rules.StartLength, rules.StartDirection)
	snake.tailChase = rules.TailChase

	gs := &GameState{
		ID:           uuid.New(),
		Rules:        rules,
		Snake:        snake,
		TickInterval: rules.InitialInterval,
		Paused:       rules.StartPaused,
		rng:          rng,
	}
	for _, opt := range opts {
		opt(gs)
	}
	if gs.statusReg == nil {
		gs.statusReg = status.NewRegistry()
	}
	gs.cacheMetrics()

	if _, err := gs.placeReward(); err != nil {
		return nil, fmt.Errorf("initial reward: %w", err)
	}

	gs.statusReg.Strings.Get("session.id").Store(gs.ID.String())
	gs.statTicks.Store(0)
	gs.statScore.Store(0)
	gs.statLength.Store(int64(snake.Len()))
	gs.statInterval.Store(gs.TickInterval.Milliseconds())
	gs.statOver.Store(false)

	return gs, nil
}

func (gs *GameState) cacheMetrics() {
	gs.statTicks = gs.statusReg.Ints.Get("game.ticks")
	gs.statScore = gs.statusReg.Ints.Get("game.score")
	gs.statLength = gs.statusReg.Ints.Get("snake.length")
	gs.statInterval = gs.statusReg.Ints.Get("game.interval_ms")
	gs.statPlacements = gs.statusReg.Ints.Get("reward.placements")
	gs.statAttempts = gs.statusReg.Ints.Get("reward.attempts")
	gs.statOver = gs.statusReg.Bools.Get("game.over")
}

// Tick runs one simulation step
// No-op while paused or over; the zero MoveOutcome is returned in that case
func (gs *GameState) Tick() MoveOutcome {
	if gs.Paused || gs.Over {
		return MoveOutcome{}
	}

	gs.ticks++
	gs.statTicks.Store(int64(gs.ticks))

	out := gs.Snake.Step(gs.Rules.Grid, gs.Reward.Pos)
	gs.LastOutcome = out

	if out.Terminal() {
		gs.Over = true
		gs.CrashPoint = out.Head
		gs.statOver.Store(true)
		gs.emit(events.EventCollision, &events.CollisionPayload{
			X:     out.Head.X,
			Y:     out.Head.Y,
			Cause: out.Collision.String(),
			Score: gs.Score,
		})
		return out
	}

	if out.Consumed {
		gs.consume(out.Head)
	}
	gs.statLength.Store(int64(gs.Snake.Len()))

	return out
}

// consume scores the reward, ramps the pace and moves the reward
func (gs *GameState) consume(at Coord) {
	gs.Score++
	gs.TickInterval = NextInterval(gs.Score, gs.TickInterval, gs.Rules)
	gs.statScore.Store(int64(gs.Score))
	gs.statInterval.Store(gs.TickInterval.Milliseconds())

	payload := &events.RewardPayload{
		X:          at.X,
		Y:          at.Y,
		Score:      gs.Score,
		Length:     gs.Snake.Len(),
		IntervalMs: gs.TickInterval.Milliseconds(),
	}

	if _, err := gs.placeReward(); errors.Is(err, ErrNoFreeCell) {
		gs.Over = true
		gs.BoardFull = true
		gs.statOver.Store(true)
		gs.emit(events.EventBoardFull, payload)
		return
	}
	gs.emit(events.EventRewardConsumed, payload)
}

func (gs *GameState) placeReward() (Coord, error) {
	c, err := gs.Reward.Relocate(gs.Rules.Grid, gs.Snake.Occupied(), gs.rng, gs.Rules.RewardAttempts)
	gs.statAttempts.Add(int64(gs.Reward.Attempts))
	if err == nil {
		gs.statPlacements.Add(1)
	}
	return c, err
}

// PauseOrRestart toggles pause, or asks for a new session once over
func (gs *GameState) PauseOrRestart() PauseResult {
	if gs.Over {
		return RestartRequested
	}

	gs.Paused = !gs.Paused
	if gs.Paused {
		gs.emit(events.EventPaused, nil)
		return Paused
	}
	gs.emit(events.EventResumed, nil)
	return Resumed
}

// Phase derives the lifecycle position
func (gs *GameState) Phase() Phase {
	switch {
	case gs.Over:
		return PhaseOver
	case gs.ticks == 0:
		return PhaseIdle
	case gs.Paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

// Ticking reports whether the scheduler should keep firing
func (gs *GameState) Ticking() bool {
	return !gs.Paused && !gs.Over
}

// Ticks returns the number of steps taken
func (gs *GameState) Ticks() uint64 {
	return gs.ticks
}

// Status returns the registry the state publishes to
func (gs *GameState) Status() *status.Registry {
	return gs.statusReg
}

// Occupied returns the cells held by the snake
func (gs *GameState) Occupied() map[Coord]struct{} {
	return gs.Snake.Occupied()
}

// Entities returns every drawable cell: walls, reward, body, head, and the crash mark when over
func (gs *GameState) Entities() []Entity {
	walls := gs.Rules.Grid.Boundary()
	out := make([]Entity, 0, len(walls)+gs.Snake.Len()+2)
	for _, c := range walls {
		out = append(out, Entity{Pos: c, Kind: KindWall})
	}
	if !gs.BoardFull {
		out = append(out, gs.Reward.Entity())
	}

	segs := gs.Snake.Segments()
	for i := len(segs) - 1; i >= 1; i-- {
		out = append(out, Entity{Pos: segs[i], Kind: KindSegment})
	}
	out = append(out, Entity{Pos: segs[0], Kind: KindHead})

	if gs.Over && !gs.BoardFull {
		out = append(out, Entity{Pos: gs.CrashPoint, Kind: KindCrash})
	}
	return out
}

func (gs *GameState) emit(t events.EventType, payload any) {
	if gs.events == nil {
		return
	}
	gs.events.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Tick:      gs.ticks,
		Timestamp: time.Now(),
	})
}
