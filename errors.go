package ringdeque

import "github.com/pkg/errors"

// ErrFull is returned when pushing to a Deque that already holds Cap()
// elements. The Deque is left unchanged.
var ErrFull = errors.New("deque is full")

// ErrEmpty is returned when popping or peeking an empty Deque. The Deque is
// left unchanged.
var ErrEmpty = errors.New("deque is empty")

// ErrOutOfBounds is returned by indexed access outside [0, Len()). The
// returned error wraps ErrOutOfBounds with the offending index, so test for it
// with errors.Is.
var ErrOutOfBounds = errors.New("index out of bounds")

// ErrNegativeCapacity is returned when constructing a Deque with a negative
// capacity.
var ErrNegativeCapacity = errors.New("capacity cannot be negative")

func outOfBounds(i, n int) error {
	return errors.Wrapf(ErrOutOfBounds, "index %d with length %d", i, n)
}
