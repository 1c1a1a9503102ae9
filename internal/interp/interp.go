// Package interp implements the Argh! execution engine: the
// fetch-decode-execute loop, the integer stack, the input buffer and
// the fatal error taxonomy.
//
// Opcode handlers never terminate the process. Every fatal condition is
// returned up to Run, and Run surfaces exactly one structured error so
// the CLI keeps a single point of exit-code control.
package interp

import (
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/thruflo/argh/internal/grid"
	"github.com/thruflo/argh/internal/logging"
)

// Interpreter owns the whole execution state for one program run: the
// loaded grid, the instruction pointer, the current heading, the stack
// and the pending input buffer. Execution is single threaded and
// synchronous; the only blocking operation is the lazy input line read.
type Interpreter struct {
	grid    *grid.Grid
	pos     grid.Position
	dir     grid.Direction
	stack   Stack
	input   *inputBuffer
	out     io.Writer
	running bool
	log     *logging.Logger
}

// Options configures an Interpreter. Zero-valued fields fall back to
// stdin, stdout and the default logger.
type Options struct {
	Input  io.Reader
	Output io.Writer
	Logger *logging.Logger
}

// New creates an interpreter bound to g, reading from stdin and
// writing to stdout.
func New(g *grid.Grid) *Interpreter {
	return NewWithOptions(g, Options{})
}

// NewWithOptions creates an interpreter with explicit collaborators.
// This allows tests to inject input and capture output.
func NewWithOptions(g *grid.Grid, opts Options) *Interpreter {
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}
	return &Interpreter{
		grid:  g,
		dir:   grid.West, // the default heading: rightward along row zero
		input: newInputBuffer(in),
		out:   out,
		log:   log,
	}
}

// Position returns the current instruction pointer location.
func (it *Interpreter) Position() grid.Position { return it.pos }

// Heading returns the current movement direction.
func (it *Interpreter) Heading() grid.Direction { return it.dir }

// StackValues returns a copy of the stack contents, bottom first.
func (it *Interpreter) StackValues() []int { return it.stack.Snapshot() }

// Run executes the program until the halt opcode or the first fatal
// condition. It returns nil on a normal halt and the fatal error
// otherwise. The halt opcode ends the loop without a final advance.
func (it *Interpreter) Run() error {
	it.running = true
	for it.running {
		code, ok := it.grid.Get(it.pos)
		if !ok {
			return &IllegalPositionError{Pos: it.pos}
		}
		op := grid.PrintableRune(code)
		it.log.Debug("step", "pos", it.pos, "op", string(op), "depth", it.stack.Len())
		if err := it.exec(op, code); err != nil {
			return err
		}
		if it.running {
			it.pos = it.pos.Add(it.dir)
		}
	}
	return nil
}

func (it *Interpreter) exec(op rune, code int) error {
	switch op {
	case 'h', 'j', 'k', 'l':
		it.dir = headings[op]
		return nil
	case 'H', 'J', 'K', 'L':
		it.dir = headings[unicode.ToLower(op)]
		return it.moveUntil()
	case 'a', 'A':
		return it.stackAdd(op)
	case 'r', 'R':
		return it.stackReduce(op)
	case 'd':
		v, err := it.stack.Peek()
		if err != nil {
			return err
		}
		it.stack.Push(v)
		return nil
	case 'D':
		_, err := it.stack.Pop()
		return err
	case 's', 'S':
		v, err := it.operand(op)
		if err != nil {
			return err
		}
		it.stack.Push(v)
		return nil
	case 'f', 'F':
		return it.alterCell(op)
	case 'e', 'E':
		return it.placeEOF(op)
	case 'g', 'G':
		return it.getInput(op)
	case 'p', 'P':
		return it.print(op)
	case 'x':
		v, err := it.stack.Peek()
		if err != nil {
			return err
		}
		if v > 0 {
			it.dir = it.dir.Clockwise()
		}
		return nil
	case 'X':
		v, err := it.stack.Peek()
		if err != nil {
			return err
		}
		if v < 0 {
			it.dir = it.dir.CounterClockwise()
		}
		return nil
	case '#':
		return it.shebang(code)
	case 'q':
		it.running = false
		return nil
	default:
		return &UnknownInstructionError{Code: code, Pos: it.pos}
	}
}

// moveUntil advances the IP one cell at a time until the cell value
// equals the current stack top. The top is peeked, not popped, and
// every comparison requires a non-empty stack and an in-bounds cell.
// The IP is left on the first matching cell; the main loop then
// advances past it.
func (it *Interpreter) moveUntil() error {
	for {
		it.pos = it.pos.Add(it.dir)
		top, err := it.stack.Peek()
		if err != nil {
			return err
		}
		v, ok := it.grid.Get(it.pos)
		if !ok {
			return &IllegalPositionError{Pos: it.pos}
		}
		if v == top {
			return nil
		}
	}
}

// operand reads the value of the opcode's neighbor cell.
func (it *Interpreter) operand(op rune) (int, error) {
	p := it.pos.Add(operandOffset(op))
	v, ok := it.grid.Get(p)
	if !ok {
		return 0, &IllegalPositionError{Pos: p}
	}
	return v, nil
}

func (it *Interpreter) stackAdd(op rune) error {
	v, err := it.operand(op)
	if err != nil {
		return err
	}
	top, err := it.stack.Pop()
	if err != nil {
		return err
	}
	it.stack.Push(top + v)
	return nil
}

func (it *Interpreter) stackReduce(op rune) error {
	v, err := it.operand(op)
	if err != nil {
		return err
	}
	top, err := it.stack.Pop()
	if err != nil {
		return err
	}
	it.stack.Push(top - v)
	return nil
}

func (it *Interpreter) alterCell(op rune) error {
	v, err := it.stack.Pop()
	if err != nil {
		return err
	}
	p := it.pos.Add(operandOffset(op))
	if !it.grid.Set(p, v) {
		return &IllegalPositionError{Pos: p}
	}
	return nil
}

func (it *Interpreter) placeEOF(op rune) error {
	p := it.pos.Add(operandOffset(op))
	if !it.grid.Set(p, eofCodepoint) {
		return &IllegalPositionError{Pos: p}
	}
	return nil
}

func (it *Interpreter) getInput(op rune) error {
	code, ok, err := it.input.next()
	if err != nil {
		return err
	}
	if !ok {
		// Sentinel reached: the buffer is cleared and nothing is
		// written. The next input opcode reads a fresh line.
		return nil
	}
	p := it.pos.Add(operandOffset(op))
	if !it.grid.Set(p, code) {
		return &IllegalPositionError{Pos: p}
	}
	return nil
}

func (it *Interpreter) print(op rune) error {
	v, err := it.operand(op)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(it.out, string(grid.PrintableRune(v))); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if f, ok := it.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("failed to flush output: %w", err)
		}
	}
	return nil
}

// shebang handles '#'. It is only valid as the first cell of a program
// whose second cell is '!', where it redirects execution south so
// program files with an interpreter line can run as scripts. Anywhere
// else it is an unknown instruction.
func (it *Interpreter) shebang(code int) error {
	if it.pos == (grid.Position{}) {
		if v, ok := it.grid.Get(it.pos.Add(grid.West)); ok && v == '!' {
			it.dir = grid.South
			return nil
		}
	}
	return &UnknownInstructionError{Code: code, Pos: it.pos}
}
