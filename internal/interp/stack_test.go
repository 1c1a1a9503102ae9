package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_PushPop(t *testing.T) {
	t.Parallel()

	var s Stack
	s.Push(1)
	s.Push(2)

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	assert.Equal(t, 0, s.Len())
}

func TestStack_DupeAndDrop(t *testing.T) {
	t.Parallel()

	// [5] after dupe becomes [5, 5]; [5, 5] after drop becomes [5].
	var s Stack
	s.Push(5)

	top, err := s.Peek()
	require.NoError(t, err)
	s.Push(top)
	assert.Equal(t, []int{5, 5}, s.Snapshot())

	_, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, []int{5}, s.Snapshot())
}

func TestStack_Underflow(t *testing.T) {
	t.Parallel()

	var s Stack

	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrStackUnderflow)

	_, err = s.Peek()
	assert.ErrorIs(t, err, ErrStackUnderflow)
}

func TestStack_SnapshotIsACopy(t *testing.T) {
	t.Parallel()

	var s Stack
	s.Push(1)
	s.Push(2)

	snap := s.Snapshot()
	snap[0] = 99

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	v, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
