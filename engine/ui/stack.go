package ui

// stack is a fixed-capacity LIFO. The backing array is allocated once and
// reused every frame; push past the limit fails instead of growing.
type stack[T any] struct {
	name  string
	items []T
}

func newStack[T any](name string, limit int) stack[T] {
	return stack[T]{name: name, items: make([]T, 0, limit)}
}

func (s *stack[T]) push(v T) error {
	if len(s.items) == cap(s.items) {
		return &CapacityError{Resource: s.name + " stack", Limit: cap(s.items)}
	}
	s.items = append(s.items, v)
	return nil
}

func (s *stack[T]) pop() error {
	if len(s.items) == 0 {
		return &ScopeError{Stack: s.name, Depth: -1}
	}
	s.items = s.items[:len(s.items)-1]
	return nil
}

// top returns a pointer to the top item, or nil when empty.
func (s *stack[T]) top() *T {
	if len(s.items) == 0 {
		return nil
	}
	return &s.items[len(s.items)-1]
}

func (s *stack[T]) len() int { return len(s.items) }

func (s *stack[T]) reset() { s.items = s.items[:0] }

// check reports a non-empty stack at frame end.
func (s *stack[T]) check() error {
	if n := len(s.items); n != 0 {
		return &ScopeError{Stack: s.name, Depth: n}
	}
	return nil
}
