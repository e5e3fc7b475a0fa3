package ui

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity reports that a fixed bound (command list, text arena, a
	// stack, a pool) was exceeded. The frame is truncated; the next Begin
	// starts clean.
	ErrCapacity = errors.New("ui: capacity exceeded")
	// ErrScopeMismatch reports unbalanced begin/end or push/pop pairs.
	ErrScopeMismatch = errors.New("ui: scope mismatch")
	// ErrFrameState reports a call in the wrong frame state (Begin while
	// building, End while idle, any call after Close).
	ErrFrameState = errors.New("ui: invalid frame state")
)

// CapacityError names the bounded resource that overflowed.
type CapacityError struct {
	Resource string
	Limit    int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("ui: %s capacity exceeded (limit %d)", e.Resource, e.Limit)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }

// ScopeError names the stack that was left unbalanced.
type ScopeError struct {
	Stack string
	Depth int // items left on the stack; -1 when popped while empty
}

func (e *ScopeError) Error() string {
	if e.Depth < 0 {
		return fmt.Sprintf("ui: pop of empty %s stack", e.Stack)
	}
	return fmt.Sprintf("ui: %s stack not empty at end of frame (depth %d)", e.Stack, e.Depth)
}

func (e *ScopeError) Is(target error) bool { return target == ErrScopeMismatch }
