package grid

// Direction is one of the four unit movement vectors.
//
// The names follow the reference axis convention, which inverts west and
// east relative to geometry: West moves toward larger X, East toward
// smaller X. Program semantics depend on this mapping, so it is kept
// verbatim.
type Direction struct {
	DX, DY int
}

var (
	North = Direction{DX: 0, DY: -1}
	South = Direction{DX: 0, DY: 1}
	West  = Direction{DX: 1, DY: 0}
	East  = Direction{DX: -1, DY: 0}
)

// Clockwise returns the next heading in the fixed rotation cycle
// North -> West -> South -> East -> North.
func (d Direction) Clockwise() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default:
		return North
	}
}

// CounterClockwise returns the previous heading in the same cycle.
func (d Direction) CounterClockwise() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	default:
		return "invalid"
	}
}
