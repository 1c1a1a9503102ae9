package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PadsRowsToMaxWidth(t *testing.T) {
	t.Parallel()

	g := Load("abc\nd\n")

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())

	v, ok := g.Get(Position{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, int(' '), v)

	// Rendering an unmodified load reproduces the source with short
	// lines padded and one newline per row.
	assert.Equal(t, "abc\nd  \n", g.Render())
}

func TestLoad_Empty(t *testing.T) {
	t.Parallel()

	g := Load("")
	assert.Equal(t, 0, g.Width())
	assert.Equal(t, 0, g.Height())

	_, ok := g.Get(Position{})
	assert.False(t, ok)
}

func TestLoad_CarriageReturns(t *testing.T) {
	t.Parallel()

	g := Load("ab\r\ncd\r\n")
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, "ab\ncd\n", g.Render())
}

func TestLoad_InteriorEmptyLine(t *testing.T) {
	t.Parallel()

	g := Load("ab\n\ncd")
	require.Equal(t, 3, g.Height())

	v, ok := g.Get(Position{X: 0, Y: 1})
	require.True(t, ok)
	assert.Equal(t, int(' '), v)
}

func TestGet_OutOfBounds(t *testing.T) {
	t.Parallel()

	g := Load("ab\ncd")

	tests := []struct {
		name string
		pos  Position
	}{
		{"negative x", Position{X: -1, Y: 0}},
		{"negative y", Position{X: 0, Y: -1}},
		{"past last column", Position{X: 2, Y: 0}},
		{"past last row", Position{X: 0, Y: 2}},
		{"far away", Position{X: 100, Y: -100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := g.Get(tt.pos)
			assert.False(t, ok)
		})
	}
}

func TestSet_MutatesExactlyOneCell(t *testing.T) {
	t.Parallel()

	g := Load("ab\ncd")

	require.True(t, g.Set(Position{X: 1, Y: 0}, 'z'))

	v, ok := g.Get(Position{X: 1, Y: 0})
	require.True(t, ok)
	assert.Equal(t, int('z'), v)

	// All other cells unchanged.
	assert.Equal(t, "az\ncd\n", g.Render())
}

func TestSet_OutOfBoundsRejected(t *testing.T) {
	t.Parallel()

	g := Load("ab")

	assert.False(t, g.Set(Position{X: 2, Y: 0}, 'z'))
	assert.False(t, g.Set(Position{X: 0, Y: 1}, 'z'))
	assert.False(t, g.Set(Position{X: -1, Y: 0}, 'z'))
	assert.Equal(t, "ab\n", g.Render())
}

func TestPrintableRune(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 'a', PrintableRune('a'))
	assert.Equal(t, rune(254), PrintableRune(254))
	assert.Equal(t, ' ', PrintableRune(0))
	assert.Equal(t, ' ', PrintableRune(255))
	assert.Equal(t, ' ', PrintableRune(-5))
	assert.Equal(t, ' ', PrintableRune(8364))
}

func TestRender_NonPrintableCells(t *testing.T) {
	t.Parallel()

	g := Load("ab")
	require.True(t, g.Set(Position{X: 0, Y: 0}, 0))
	require.True(t, g.Set(Position{X: 1, Y: 0}, 1000))

	assert.Equal(t, "  \n", g.Render())
}
