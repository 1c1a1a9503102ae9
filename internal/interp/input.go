package interp

import (
	"bufio"
	"io"
)

// inputSentinel marks the end of a buffered input line. It is consumed
// by the input opcodes but never written to the grid.
const inputSentinel = 0

// inputBuffer holds the unread characters of one input line. A nil
// pending slice means no line is buffered; a non-nil slice always ends
// with the sentinel.
type inputBuffer struct {
	r       *bufio.Reader
	pending []rune
}

func newInputBuffer(r io.Reader) *inputBuffer {
	return &inputBuffer{r: bufio.NewReader(r)}
}

// next returns the codepoint at the front of the buffer, reading a
// fresh line first when nothing is buffered. ok is false when the
// sentinel was reached: the buffer is cleared and no codepoint is
// produced. End of the input stream reads as an empty line; only a
// genuine read error is returned.
func (b *inputBuffer) next() (code int, ok bool, err error) {
	if b.pending == nil {
		line, err := b.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return 0, false, &InputReadFailureError{Err: err}
		}
		b.pending = append([]rune(line), inputSentinel)
	}
	r := b.pending[0]
	if r == inputSentinel {
		b.pending = nil
		return 0, false, nil
	}
	b.pending = b.pending[1:]
	return int(r), true, nil
}
