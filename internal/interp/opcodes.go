package interp

import (
	"unicode"

	"github.com/thruflo/argh/internal/grid"
)

// eofCodepoint is written into the grid by the e/E opcodes as an
// end-of-file marker.
const eofCodepoint = 0

// headings maps the movement opcode letters to direction vectors. The
// mapping is program semantics inherited from the reference
// implementation, not geometry: h and l set the inverted East/West
// vectors. It lives in one table so the inversion stays in a single,
// independently testable place.
var headings = map[rune]grid.Direction{
	'h': grid.East,
	'j': grid.South,
	'k': grid.North,
	'l': grid.West,
}

// operandOffset returns the direction of an opcode's neighbor cell:
// south for lowercase letters, north for uppercase.
func operandOffset(op rune) grid.Direction {
	if unicode.IsUpper(op) {
		return grid.North
	}
	return grid.South
}
