package engine

import (
	"golang.org/x/exp/rand"
)

// NewTestRules returns DefaultRules with the session running from the first tick
func NewTestRules() Rules {
	r := DefaultRules()
	r.StartPaused = false
	return r
}

// NewTestGameState creates a seeded session for tests, panicking on invalid rules
func NewTestGameState(rules Rules, seed uint64, opts ...Option) *GameState {
	gs, err := NewGameState(rules, rand.New(rand.NewSource(seed)), opts...)
	if err != nil {
		panic(err)
	}
	return gs
}

// newSnakeFromBody builds a snake with an explicit layout heading dir
func newSnakeFromBody(dir Direction, body ...Coord) *Snake {
	b := make([]Coord, len(body))
	copy(b, body)
	return &Snake{body: b, current: dir, pending: dir}
}
