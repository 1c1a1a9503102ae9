package interp

import (
	"errors"
	"fmt"

	"github.com/thruflo/argh/internal/grid"
)

// ErrStackUnderflow reports an operation that needed stack values the
// stack did not have.
var ErrStackUnderflow = errors.New("stack underflow")

// IllegalPositionError reports the IP or an operand cell addressing a
// row or column outside the grid.
type IllegalPositionError struct {
	Pos grid.Position
}

func (e *IllegalPositionError) Error() string {
	return fmt.Sprintf("illegal position %s", e.Pos)
}

// UnknownInstructionError reports a fetched codepoint that maps to no
// recognized opcode.
type UnknownInstructionError struct {
	Code int
	Pos  grid.Position
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("unknown instruction %q (codepoint %d) at %s",
		grid.PrintableRune(e.Code), e.Code, e.Pos)
}

// InputReadFailureError reports a failed read from the input source.
type InputReadFailureError struct {
	Err error
}

func (e *InputReadFailureError) Error() string {
	return fmt.Sprintf("input read failed: %v", e.Err)
}

func (e *InputReadFailureError) Unwrap() error { return e.Err }
