package grid

import "fmt"

// Position is a location in the grid: an unbounded pair of signed
// coordinates. X grows with the column index, Y with the row index.
// Positions are never clamped; boundedness is enforced only when a cell
// is looked up.
type Position struct {
	X, Y int
}

// Add returns the position one step away in the given direction.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
