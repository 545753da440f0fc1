package engine

// CollisionKind identifies what ended a step
type CollisionKind uint8

const (
	CollisionNone CollisionKind = iota
	CollisionWall
	CollisionSelf
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// MoveOutcome is the result of one snake step
type MoveOutcome struct {
	Head      Coord // Head after the step, or the blocked cell on collision
	Collision CollisionKind
	Consumed  bool // Reward eaten, tail retained
}

// Terminal reports whether the step ended the session
func (o MoveOutcome) Terminal() bool {
	return o.Collision != CollisionNone
}

// Snake is an ordered body with the head at index 0
type Snake struct {
	body    []Coord
	current Direction // Committed by the last step
	pending Direction // Applied at the next step

	tailChase bool
}

// startBody lays out length cells ending at start+length along dir, head first
func startBody(start Coord, length int, dir Direction) []Coord {
	dx, dy := dir.Delta()
	body := make([]Coord, 0, length)
	for i := length; i >= 1; i-- {
		body = append(body, Coord{X: start.X + dx*i, Y: start.Y + dy*i})
	}
	return body
}

// NewSnake creates a snake whose head sits length cells past start along dir
func NewSnake(start Coord, length int, dir Direction) *Snake {
	if length < 1 {
		length = 1
	}
	return &Snake{
		body:    startBody(start, length, dir),
		current: dir,
		pending: dir,
	}
}

// SetDirection buffers a heading for the next step
// A reversal of the committed heading is ignored
func (s *Snake) SetDirection(d Direction) {
	if d > DirRight || d == s.current.Opposite() {
		return
	}
	s.pending = d
}

// Step advances one cell; see MoveOutcome
// On collision the body is left untouched
func (s *Snake) Step(g Grid, reward Coord) MoveOutcome {
	s.current = s.pending
	newHead := s.body[0].Step(s.current)

	if g.IsWall(newHead) {
		return MoveOutcome{Head: newHead, Collision: CollisionWall}
	}

	consumed := newHead == reward
	if s.hitsBody(newHead, consumed) {
		return MoveOutcome{Head: newHead, Collision: CollisionSelf}
	}

	s.body = append(s.body, Coord{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
	if !consumed {
		s.body = s.body[:len(s.body)-1]
	}

	return MoveOutcome{Head: newHead, Consumed: consumed}
}

// hitsBody checks c against the pre-move body
// The tail counts unless tail chasing is on and the snake does not grow this step
func (s *Snake) hitsBody(c Coord, growing bool) bool {
	body := s.body
	if s.tailChase && !growing {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == c {
			return true
		}
	}
	return false
}

// Head returns the head coordinate
func (s *Snake) Head() Coord {
	return s.body[0]
}

// Len returns the segment count
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the committed heading
func (s *Snake) Direction() Direction {
	return s.current
}

// PendingDirection returns the heading applied at the next step
func (s *Snake) PendingDirection() Direction {
	return s.pending
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []Coord {
	out := make([]Coord, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies reports whether any segment is at c
func (s *Snake) Occupies(c Coord) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Occupied returns the body as a set
func (s *Snake) Occupied() map[Coord]struct{} {
	set := make(map[Coord]struct{}, len(s.body))
	for _, seg := range s.body {
		set[seg] = struct{}{}
	}
	return set
}
