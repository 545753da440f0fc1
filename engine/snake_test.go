package engine

import (
	"testing"

	"golang.org/x/exp/rand"
)

var offBoard = Coord{X: -10, Y: -10}

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(Coord{X: 5, Y: 5}, 10, DirRight)

	if s.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", s.Len())
	}
	if s.Head() != (Coord{X: 15, Y: 5}) {
		t.Errorf("Head() = %s, want (15,5)", s.Head())
	}
	segs := s.Segments()
	if segs[len(segs)-1] != (Coord{X: 6, Y: 5}) {
		t.Errorf("tail = %s, want (6,5)", segs[len(segs)-1])
	}
	for i := 1; i < len(segs); i++ {
		if segs[i-1].X-segs[i].X != 1 || segs[i-1].Y != segs[i].Y {
			t.Fatalf("segments %d and %d are not adjacent left to right", i-1, i)
		}
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	s := NewSnake(Coord{X: 5, Y: 5}, 3, DirRight)

	s.SetDirection(DirLeft)
	if s.PendingDirection() != DirRight {
		t.Errorf("reversal accepted: pending = %v", s.PendingDirection())
	}

	// Up then Left within one tick: Left is still the reverse of the committed heading
	s.SetDirection(DirUp)
	s.SetDirection(DirLeft)
	if s.PendingDirection() != DirUp {
		t.Errorf("pending = %v, want up", s.PendingDirection())
	}

	s.Step(Grid{Width: 40, Height: 30}, offBoard)
	if s.Direction() != DirUp {
		t.Fatalf("Direction() = %v after step, want up", s.Direction())
	}

	s.SetDirection(DirLeft)
	if s.PendingDirection() != DirLeft {
		t.Errorf("left should be accepted once heading up, got %v", s.PendingDirection())
	}
}

func TestDirectionNeverReversesAcrossTicks(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := Grid{Width: 40, Height: 30}
	s := NewSnake(Coord{X: 5, Y: 5}, 10, DirRight)

	for tick := 0; tick < 2000; tick++ {
		before := s.Direction()
		for n := rng.Intn(4); n >= 0; n-- {
			s.SetDirection(Direction(rng.Intn(4)))
		}
		out := s.Step(g, offBoard)
		if s.Direction() == before.Opposite() {
			t.Fatalf("tick %d: heading reversed from %v to %v", tick, before, s.Direction())
		}
		if out.Terminal() {
			s = NewSnake(Coord{X: 5, Y: 5}, 10, DirRight)
		}
	}
}

func TestStepKeepsLengthWithoutReward(t *testing.T) {
	s := NewSnake(Coord{X: 5, Y: 5}, 10, DirRight)
	out := s.Step(Grid{Width: 40, Height: 30}, offBoard)

	if out.Terminal() || out.Consumed {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if s.Len() != 10 {
		t.Errorf("Len() = %d, want 10", s.Len())
	}
	if s.Head() != (Coord{X: 16, Y: 5}) {
		t.Errorf("Head() = %s, want (16,5)", s.Head())
	}
	if s.Occupies(Coord{X: 6, Y: 5}) {
		t.Error("old tail cell still occupied")
	}
}

func TestStepGrowsOnReward(t *testing.T) {
	s := NewSnake(Coord{X: 5, Y: 5}, 10, DirRight)
	out := s.Step(Grid{Width: 40, Height: 30}, Coord{X: 16, Y: 5})

	if !out.Consumed {
		t.Fatal("reward in front of the head was not consumed")
	}
	if s.Len() != 11 {
		t.Errorf("Len() = %d, want 11", s.Len())
	}
	if !s.Occupies(Coord{X: 6, Y: 5}) {
		t.Error("tail should be retained on growth")
	}
}

func TestStepIntoWallIsTerminal(t *testing.T) {
	g := Grid{Width: 40, Height: 30}
	tests := []struct {
		name string
		dir  Direction
		head Coord
	}{
		{"right wall", DirRight, Coord{X: 38, Y: 10}},
		{"left wall", DirLeft, Coord{X: 1, Y: 10}},
		{"top wall", DirUp, Coord{X: 10, Y: 1}},
		{"bottom wall", DirDown, Coord{X: 10, Y: 28}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSnakeFromBody(tt.dir, tt.head)
			out := s.Step(g, offBoard)
			if out.Collision != CollisionWall {
				t.Fatalf("Collision = %v, want wall", out.Collision)
			}
			if !g.IsWall(out.Head) {
				t.Errorf("reported head %s is not a wall", out.Head)
			}
			if s.Head() != tt.head {
				t.Errorf("body moved on collision: head %s", s.Head())
			}
		})
	}
}

func TestStepIntoBodyIsTerminal(t *testing.T) {
	s := newSnakeFromBody(DirLeft,
		Coord{5, 5}, Coord{6, 5}, Coord{6, 6}, Coord{5, 6}, Coord{4, 6},
	)
	s.SetDirection(DirDown)
	out := s.Step(Grid{Width: 40, Height: 30}, offBoard)

	if out.Collision != CollisionSelf {
		t.Fatalf("Collision = %v, want self", out.Collision)
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, body must stay intact", s.Len())
	}
}

func TestStepOntoTailCell(t *testing.T) {
	body := []Coord{{5, 5}, {6, 5}, {6, 6}, {5, 6}}
	g := Grid{Width: 40, Height: 30}

	t.Run("default counts tail", func(t *testing.T) {
		s := newSnakeFromBody(DirLeft, body...)
		s.SetDirection(DirDown)
		if out := s.Step(g, offBoard); out.Collision != CollisionSelf {
			t.Errorf("Collision = %v, want self", out.Collision)
		}
	})

	t.Run("tail chase", func(t *testing.T) {
		s := newSnakeFromBody(DirLeft, body...)
		s.tailChase = true
		s.SetDirection(DirDown)
		out := s.Step(g, offBoard)
		if out.Terminal() {
			t.Fatalf("tail chase should allow entering the vacated tail, got %v", out.Collision)
		}
		if s.Head() != (Coord{5, 6}) || s.Len() != 4 {
			t.Errorf("head %s len %d", s.Head(), s.Len())
		}
	})

	t.Run("tail chase while growing", func(t *testing.T) {
		s := newSnakeFromBody(DirLeft, body...)
		s.tailChase = true
		s.SetDirection(DirDown)
		if out := s.Step(g, Coord{5, 6}); out.Collision != CollisionSelf {
			t.Errorf("growth keeps the tail, Collision = %v, want self", out.Collision)
		}
	})
}

func TestStepRunsToRightWall(t *testing.T) {
	g := Grid{Width: 40, Height: 30}
	s := NewSnake(Coord{X: 5, Y: 5}, 10, DirRight)
	reward := Coord{X: 1, Y: 28}

	steps := 0
	for {
		out := s.Step(g, reward)
		if out.Terminal() {
			break
		}
		steps++
		if s.Head().X != 15+steps {
			t.Fatalf("after %d steps head.x = %d, want %d", steps, s.Head().X, 15+steps)
		}
	}

	if s.Head().X != g.Width-2 {
		t.Errorf("last safe head.x = %d, want %d", s.Head().X, g.Width-2)
	}
	if steps != 23 {
		t.Errorf("safe steps = %d, want 23", steps)
	}
}
