package engine

// EntityKind selects how a cell is drawn
type EntityKind uint8

const (
	KindWall EntityKind = iota
	KindHead
	KindSegment
	KindReward
	KindCrash
)

// Entity is a positioned cell tagged with its kind
// Rendering picks a style per kind; the entity carries no drawing logic
type Entity struct {
	Pos  Coord
	Kind EntityKind
}

// SameCell reports whether two entities occupy the same coordinate, ignoring kind
func (e Entity) SameCell(o Entity) bool {
	return e.Pos == o.Pos
}
