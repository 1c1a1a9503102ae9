// Package grid holds the program data model: positions, directions and
// the rectangular table of character codepoints that Argh! programs both
// execute from and mutate.
package grid

import "strings"

// Grid is a rectangular table of integer codepoints. Load establishes
// the rectangle invariant by padding short rows with the space
// codepoint; after that the grid is mutable but never resized.
type Grid struct {
	cells  [][]int
	width  int
	height int
}

// Load parses program text into a grid. The text is split into lines
// (carriage returns are stripped, a single trailing newline does not
// produce an extra row), each character becomes its codepoint, and every
// row is padded with spaces to the maximum observed row length.
func Load(text string) *Grid {
	text = strings.TrimSuffix(text, "\n")
	g := &Grid{}
	if text == "" {
		return g
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		row := make([]int, 0, len(line))
		for _, r := range line {
			row = append(row, int(r))
		}
		if len(row) > g.width {
			g.width = len(row)
		}
		g.cells = append(g.cells, row)
	}
	for i, row := range g.cells {
		for len(row) < g.width {
			row = append(row, ' ')
		}
		g.cells[i] = row
	}
	g.height = len(g.cells)
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Get returns the cell value at p. The second return is false when p
// lies outside the grid, including negative components.
func (g *Grid) Get(p Position) (int, bool) {
	if p.Y < 0 || p.Y >= g.height || p.X < 0 || p.X >= g.width {
		return 0, false
	}
	return g.cells[p.Y][p.X], true
}

// Set overwrites the cell at p and reports whether p was in bounds.
// The grid never grows: out-of-bounds writes are rejected unchanged.
func (g *Grid) Set(p Position, v int) bool {
	if p.Y < 0 || p.Y >= g.height || p.X < 0 || p.X >= g.width {
		return false
	}
	g.cells[p.Y][p.X] = v
	return true
}

// PrintableRune maps a codepoint to the rune used for rendering, program
// output and opcode decoding. Values outside (0, 255) map to a space,
// matching the reference conversion.
func PrintableRune(v int) rune {
	if v > 0 && v < 255 {
		return rune(v)
	}
	return ' '
}

// Render returns the grid as text for diagnostics, one line per row.
func (g *Grid) Render() string {
	var sb strings.Builder
	for _, row := range g.cells {
		for _, v := range row {
			sb.WriteRune(PrintableRune(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
