package engine

import (
	"golang.org/x/exp/rand"
)

// RewardItem is the single consumable cell
type RewardItem struct {
	Pos Coord

	// Attempts is the number of random draws used by the last Relocate
	Attempts int
}

// Relocate moves the reward to a uniformly chosen free interior cell
// Random draws are bounded by maxAttempts; past that the free cells are enumerated
// and one is picked, so the call fails only when the interior is fully occupied
func (r *RewardItem) Relocate(g Grid, occupied map[Coord]struct{}, rng *rand.Rand, maxAttempts int) (Coord, error) {
	if g.InteriorSize() == 0 {
		return r.Pos, ErrNoFreeCell
	}

	r.Attempts = 0
	for r.Attempts < maxAttempts {
		r.Attempts++
		c := Coord{
			X: 1 + rng.Intn(g.Width-2),
			Y: 1 + rng.Intn(g.Height-2),
		}
		if _, taken := occupied[c]; !taken {
			r.Pos = c
			return c, nil
		}
	}

	capacity := g.InteriorSize() - len(occupied)
	if capacity < 0 {
		capacity = 0
	}
	free := make([]Coord, 0, capacity)
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			c := Coord{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return r.Pos, ErrNoFreeCell
	}

	r.Pos = free[rng.Intn(len(free))]
	return r.Pos, nil
}

// Entity returns the reward as a drawable entity
func (r *RewardItem) Entity() Entity {
	return Entity{Pos: r.Pos, Kind: KindReward}
}
