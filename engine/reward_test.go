package engine

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

func TestRelocateAvoidsWallsAndSnake(t *testing.T) {
	g := Grid{Width: 40, Height: 30}
	occupied := NewSnake(Coord{X: 5, Y: 5}, 10, DirRight).Occupied()
	rng := rand.New(rand.NewSource(7))

	var r RewardItem
	for i := 0; i < 1000; i++ {
		c, err := r.Relocate(g, occupied, rng, 100)
		if err != nil {
			t.Fatalf("Relocate: %v", err)
		}
		if !g.InInterior(c) {
			t.Fatalf("reward placed on wall %s", c)
		}
		if _, taken := occupied[c]; taken {
			t.Fatalf("reward placed on snake %s", c)
		}
		if r.Pos != c {
			t.Fatalf("Pos %s does not match returned %s", r.Pos, c)
		}
	}
}

func TestRelocateFindsLastFreeCell(t *testing.T) {
	g := Grid{Width: 5, Height: 5}
	free := Coord{X: 2, Y: 3}

	occupied := make(map[Coord]struct{})
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if (Coord{x, y}) != free {
				occupied[Coord{x, y}] = struct{}{}
			}
		}
	}

	for _, attempts := range []int{0, 1, 100} {
		var r RewardItem
		c, err := r.Relocate(g, occupied, rand.New(rand.NewSource(1)), attempts)
		if err != nil {
			t.Fatalf("attempts=%d: %v", attempts, err)
		}
		if c != free {
			t.Errorf("attempts=%d: got %s, want %s", attempts, c, free)
		}
		if r.Attempts > attempts {
			t.Errorf("attempts=%d: used %d draws", attempts, r.Attempts)
		}
	}
}

func TestRelocateFullInteriorFails(t *testing.T) {
	g := Grid{Width: 5, Height: 5}
	occupied := make(map[Coord]struct{})
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			occupied[Coord{x, y}] = struct{}{}
		}
	}

	r := RewardItem{Pos: Coord{X: 2, Y: 2}}
	_, err := r.Relocate(g, occupied, rand.New(rand.NewSource(1)), 25)
	if !errors.Is(err, ErrNoFreeCell) {
		t.Fatalf("err = %v, want ErrNoFreeCell", err)
	}
	if r.Attempts != 25 {
		t.Errorf("Attempts = %d, want the full budget of 25", r.Attempts)
	}
	if r.Pos != (Coord{X: 2, Y: 2}) {
		t.Errorf("Pos changed to %s on failure", r.Pos)
	}
}

func TestRelocateIsReproducibleForSeed(t *testing.T) {
	g := Grid{Width: 40, Height: 30}
	occupied := map[Coord]struct{}{}

	var a, b RewardItem
	ra := rand.New(rand.NewSource(99))
	rb := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		ca, _ := a.Relocate(g, occupied, ra, 10)
		cb, _ := b.Relocate(g, occupied, rb, 10)
		if ca != cb {
			t.Fatalf("draw %d diverged: %s vs %s", i, ca, cb)
		}
	}
}
