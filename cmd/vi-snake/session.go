package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/status"
)

// newSessionFactory returns a factory sharing one seeded source, queue and registry across restarts
func newSessionFactory(cfg *config.Config, queue *events.EventQueue, reg *status.Registry) (engine.StateFactory, error) {
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("session seed %d", seed)

	return func() (*engine.GameState, error) {
		return engine.NewGameState(rules, rng, engine.WithEvents(queue), engine.WithStatus(reg))
	}, nil
}

// loadKeyTable merges an optional keymap file over the default bindings
func loadKeyTable(path string) (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return input.MergeKeyTable(base, override), nil
}

// logHandler writes gameplay milestones to the debug log
type logHandler struct{}

func (logHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSessionStarted,
		events.EventRewardConsumed,
		events.EventCollision,
		events.EventBoardFull,
		events.EventPaused,
		events.EventResumed,
	}
}

func (logHandler) HandleEvent(gs *engine.GameState, ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.RewardPayload:
		log.Printf("tick %d %s at (%d,%d): score=%d length=%d interval=%dms",
			ev.Tick, ev.Type, p.X, p.Y, p.Score, p.Length, p.IntervalMs)
	case *events.CollisionPayload:
		log.Printf("tick %d %s at (%d,%d): cause=%s score=%d", ev.Tick, ev.Type, p.X, p.Y, p.Cause, p.Score)
	default:
		log.Printf("tick %d %s session=%s", ev.Tick, ev.Type, gs.ID)
	}
}
