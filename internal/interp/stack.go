package interp

// Stack is the interpreter's LIFO of integers, unbounded except by
// memory. Reading or popping an empty stack is an error, never a
// silent default.
type Stack struct {
	items []int
}

// Push appends v to the top of the stack.
func (s *Stack) Push(v int) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (int, error) {
	if len(s.items) == 0 {
		return 0, ErrStackUnderflow
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (int, error) {
	if len(s.items) == 0 {
		return 0, ErrStackUnderflow
	}
	return s.items[len(s.items)-1], nil
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int { return len(s.items) }

// Snapshot returns a copy of the stack contents, bottom first.
func (s *Stack) Snapshot() []int {
	out := make([]int, len(s.items))
	copy(out, s.items)
	return out
}
