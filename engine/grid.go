package engine

// Grid is the fixed board; its outermost ring of cells is wall
type Grid struct {
	Width, Height int
}

// Contains reports whether c lies inside [0,Width) x [0,Height)
func (g Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// IsWall reports whether c is on the boundary ring or off the board
func (g Grid) IsWall(c Coord) bool {
	if !g.Contains(c) {
		return true
	}
	return c.X == 0 || c.Y == 0 || c.X == g.Width-1 || c.Y == g.Height-1
}

// InInterior reports whether c is a traversable cell
func (g Grid) InInterior(c Coord) bool {
	return g.Contains(c) && !g.IsWall(c)
}

// InteriorSize returns the number of traversable cells
func (g Grid) InteriorSize() int {
	if g.Width < 3 || g.Height < 3 {
		return 0
	}
	return (g.Width - 2) * (g.Height - 2)
}

// Boundary returns every wall cell, clockwise from the top-left corner
func (g Grid) Boundary() []Coord {
	if g.Width <= 0 || g.Height <= 0 {
		return nil
	}
	cells := make([]Coord, 0, 2*(g.Width+g.Height))
	for x := 0; x < g.Width; x++ {
		cells = append(cells, Coord{X: x, Y: 0})
	}
	for y := 1; y < g.Height; y++ {
		cells = append(cells, Coord{X: g.Width - 1, Y: y})
	}
	if g.Height > 1 {
		for x := g.Width - 2; x >= 0; x-- {
			cells = append(cells, Coord{X: x, Y: g.Height - 1})
		}
	}
	if g.Width > 1 {
		for y := g.Height - 2; y >= 1; y-- {
			cells = append(cells, Coord{X: 0, Y: y})
		}
	}
	return cells
}
