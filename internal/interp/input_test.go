package interp

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputBuffer_ConsumesLineThenSentinel(t *testing.T) {
	t.Parallel()

	b := newInputBuffer(strings.NewReader("AB\nZ\n"))

	// The buffered line is consumed one character at a time, newline
	// included.
	for _, want := range []int{'A', 'B', '\n'} {
		code, ok, err := b.next()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, code)
	}

	// Sentinel: no character, buffer cleared.
	_, ok, err := b.next()
	require.NoError(t, err)
	assert.False(t, ok)

	// The following call reads a fresh line.
	code, ok, err := b.next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int('Z'), code)
}

func TestInputBuffer_EndOfStreamReadsAsEmptyLine(t *testing.T) {
	t.Parallel()

	b := newInputBuffer(strings.NewReader(""))

	for i := 0; i < 3; i++ {
		_, ok, err := b.next()
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestInputBuffer_PartialLineAtEndOfStream(t *testing.T) {
	t.Parallel()

	b := newInputBuffer(strings.NewReader("A"))

	code, ok, err := b.next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int('A'), code)

	_, ok, err = b.next()
	require.NoError(t, err)
	assert.False(t, ok)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestInputBuffer_ReadFailure(t *testing.T) {
	t.Parallel()

	readErr := errors.New("pipe closed")
	b := newInputBuffer(failingReader{err: readErr})

	_, _, err := b.next()
	require.Error(t, err)

	var inputErr *InputReadFailureError
	require.ErrorAs(t, err, &inputErr)
	assert.ErrorIs(t, err, readErr)
}
