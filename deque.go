// Package ringdeque provides a fixed-capacity double-ended queue backed by a
// ring buffer that is allocated once and never grows.
//
// A Deque never allocates after construction. With MakeDequeOver the backing
// storage can be supplied by the caller, for example a package-level or stack
// array, so the Deque never touches the heap at all.
package ringdeque

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// Deque is a double-ended queue with a capacity fixed at construction. It can
// be used for LIFO or FIFO ordering, or something in between, and supports
// indexed access from front (index 0) to back (index Len()-1).
//
// To create a Deque instance, use one of the constructors: MakeDeque(cap),
// MakeDequeOver(buf) or CopySliceToDeque(s). nil Deques panic when called,
// except for Len and the iterators. Creating a Deque in the following way is
// wrong:
//
//	var deque Deque[int] // wrong
//
// Pushing to a full Deque fails with ErrFull and popping an empty one fails
// with ErrEmpty; in both cases the Deque is left untouched. Copying a Deque
// struct shares its storage, so use Clone to get an independent duplicate.
//
// Deque is not safe for concurrent use.
type Deque[T any] struct {
	// Logical element i lives in buf[(head+i) % len(buf)].
	// Invariants:
	// - 0 <= count <= len(buf), and len(buf) never changes.
	// - head < len(buf), or head == 0 if len(buf) == 0.
	// - Slots outside the window are zero.
	buf         []T
	head, count int
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeDeque allocates a buffer of exactly capacity zeroed slots. The buffer is
// never reallocated. A capacity of 0 is valid and yields a Deque that is
// always both empty and full. Returns an error if passed a negative value.
func MakeDeque[T any](capacity int) (*Deque[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	return &Deque[T]{buf: make([]T, capacity)}, nil
}

// MakeDequeOver creates an empty Deque that uses buf as its storage, with
// capacity len(buf). buf is zeroed and must not be used by the caller
// afterwards. This allows a Deque with no heap allocation:
//
//	var storage [64]Event
//	d := ringdeque.MakeDequeOver(storage[:])
func MakeDequeOver[T any](buf []T) *Deque[T] {
	clear(buf)
	return &Deque[T]{buf: buf}
}

// CopySliceToDeque allocates a buffer of exactly len(s) slots and copies every
// element of the slice to it, so the result is full. Memory is not shared.
func CopySliceToDeque[T any](s []T) *Deque[T] {
	buf := make([]T, len(s))
	copy(buf, s)
	return &Deque[T]{buf: buf, count: len(s)}
}

// Clone returns an independent duplicate of the Deque in O(Cap()). The clone
// always owns freshly allocated storage, even if d was made with
// MakeDequeOver.
func (d *Deque[T]) Clone() *Deque[T] {
	buf := make([]T, len(d.buf))
	copy(buf, d.buf)
	return &Deque[T]{buf: buf, head: d.head, count: d.count}
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.count
}

// Cap returns the fixed capacity of the Deque.
func (d *Deque[T]) Cap() int { return len(d.buf) }

// Empty returns whether the Deque is empty.
func (d *Deque[T]) Empty() bool { return d.count == 0 }

// Full returns whether the Deque is full. A Deque with capacity 0 is always
// full.
func (d *Deque[T]) Full() bool { return d.count == len(d.buf) }

// PushBack puts t at the back of the Deque. It returns ErrFull, and changes
// nothing, if the Deque is full. Use PushBack and PopFront for FIFO ordering,
// or PushBack and PopBack for LIFO ordering.
func (d *Deque[T]) PushBack(t T) error {
	if d.Full() {
		return ErrFull
	}
	d.buf[d.physical(d.count)] = t
	d.count++
	return nil
}

// PushFront puts t at the front of the Deque. It returns ErrFull, and changes
// nothing, if the Deque is full.
func (d *Deque[T]) PushFront(t T) error {
	if d.Full() {
		return ErrFull
	}
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = t
	d.count++
	return nil
}

// PushBackEvict puts t at the back of the Deque. If the Deque is full, the
// front element is removed first and returned with ok set to true, which is
// the classic overwriting ring buffer behaviour. With capacity 0 nothing can
// be stored, so t itself is returned as evicted.
func (d *Deque[T]) PushBackEvict(t T) (evicted T, ok bool) {
	if len(d.buf) == 0 {
		return t, true
	}
	if d.Full() {
		evicted, ok = d.popFront(), true
	}
	d.buf[d.physical(d.count)] = t
	d.count++
	return
}

// PeekBack returns the last element in the Deque, or ErrEmpty.
func (d *Deque[T]) PeekBack() (t T, err error) {
	if d.Empty() {
		return t, ErrEmpty
	}
	return d.buf[d.physical(d.count-1)], nil
}

// PeekFront returns the first element in the Deque, or ErrEmpty.
func (d *Deque[T]) PeekFront() (t T, err error) {
	if d.Empty() {
		return t, ErrEmpty
	}
	return d.buf[d.head], nil
}

// PopBack removes the last element in the Deque and returns it. Its slot is
// zeroed, so references it held can be garbage collected. If the Deque is
// empty, it returns ErrEmpty and changes nothing.
func (d *Deque[T]) PopBack() (t T, err error) {
	if d.Empty() {
		return t, ErrEmpty
	}
	i := d.physical(d.count - 1)
	t = d.buf[i]
	var zero T
	d.buf[i] = zero
	d.count--
	return t, nil
}

// PopFront removes the first element in the Deque and returns it. Its slot is
// zeroed. If the Deque is empty, it returns ErrEmpty and changes nothing.
func (d *Deque[T]) PopFront() (t T, err error) {
	if d.Empty() {
		return t, ErrEmpty
	}
	return d.popFront(), nil
}

// Preconditions: !d.Empty().
func (d *Deque[T]) popFront() T {
	t := d.buf[d.head]
	var zero T
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.count--
	return t
}

// DropFront removes the n first elements of the Deque in O(n), zeroing their
// slots, and returns how many were removed. If the Deque has fewer than n
// elements, it drops every element. If n is negative, nothing is dropped.
func (d *Deque[T]) DropFront(n int) int {
	n = min(max(n, 0), d.count)
	if n == 0 {
		return 0
	}
	var zero T
	for i := range n {
		d.buf[d.physical(i)] = zero
	}
	d.head = d.physical(n)
	d.count -= n
	return n
}

// DropBack removes the n last elements of the Deque in O(n), zeroing their
// slots, and returns how many were removed. If the Deque has fewer than n
// elements, it drops every element. If n is negative, nothing is dropped.
func (d *Deque[T]) DropBack(n int) int {
	n = min(max(n, 0), d.count)
	var zero T
	for i := d.count - n; i < d.count; i++ {
		d.buf[d.physical(i)] = zero
	}
	d.count -= n
	return n
}

// Clear empties the Deque in O(Len()), zeroing existing elements. Capacity
// is unchanged.
func (d *Deque[T]) Clear() {
	d.DropFront(d.count)
	d.head = 0
}

/*****************************************************************************
 * INDEX API
 *****************************************************************************/

// Get returns the i-th element from the front. It returns an error wrapping
// ErrOutOfBounds if i is not in [0, Len()).
func (d *Deque[T]) Get(i int) (t T, err error) {
	if !d.inBounds(i) {
		return t, outOfBounds(i, d.count)
	}
	return d.buf[d.physical(i)], nil
}

// Set overwrites the i-th element from the front with t. It returns an error
// wrapping ErrOutOfBounds, and changes nothing, if i is not in [0, Len()).
func (d *Deque[T]) Set(i int, t T) error {
	if !d.inBounds(i) {
		return outOfBounds(i, d.count)
	}
	d.buf[d.physical(i)] = t
	return nil
}

// At indexes into the i-th position in the Deque, like d[i] would for a
// slice. Panics if out of bounds; use Get to get an error instead.
func (d *Deque[T]) At(i int) T {
	d.checkBounds(i)
	return d.buf[d.physical(i)]
}

// SetAt writes t to the i-th position in the Deque, like d[i] = t would for a
// slice. Panics if out of bounds; use Set to get an error instead.
func (d *Deque[T]) SetAt(i int, t T) {
	d.checkBounds(i)
	d.buf[d.physical(i)] = t
}

// Swap swaps the elements in the i-th and j-th positions. If either index is
// out of bounds, nothing is swapped and an error wrapping ErrOutOfBounds is
// returned.
func (d *Deque[T]) Swap(i, j int) error {
	for _, k := range [...]int{i, j} {
		if !d.inBounds(k) {
			return outOfBounds(k, d.count)
		}
	}
	pi, pj := d.physical(i), d.physical(j)
	d.buf[pi], d.buf[pj] = d.buf[pj], d.buf[pi]
	return nil
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// Helper to reuse the slices package functions. a and b are views of the
// elements in order; b is nil unless the elements wrap around.
func (d *Deque[T]) slices() (a, b []T) {
	if d == nil || d.Empty() {
		return nil, nil
	}
	end := d.head + d.count
	if end <= len(d.buf) {
		return d.buf[d.head:end], nil
	}
	return d.buf[d.head:], d.buf[:end-len(d.buf)]
}

// MakeSliceCopy allocates a slice to hold every Deque element and copies them
// in order. Prefer passing a buffer to CopySlice for memory reuse.
func (d *Deque[T]) MakeSliceCopy() []T {
	s := make([]T, d.Len())
	d.CopySlice(0, s)
	return s
}

// CopySlice has the same semantics as the copy() built-in function. It copies
// elements in the Deque starting at the start index up until buf is full or
// the Deque is over, whichever happens first. Nothing is copied if start is
// out of bounds.
//
// CopySlice returns the number of elements copied.
func (d *Deque[T]) CopySlice(start int, buf []T) int {
	if !d.inBounds(start) {
		return 0
	}
	s1, s2 := d.slices()
	if start < len(s1) {
		n := copy(buf, s1[start:])
		return n + copy(buf[n:], s2)
	}
	return copy(buf, s2[start-len(s1):])
}

// String formats the elements from front to back like a slice, e.g. [1 2 3].
func (d *Deque[T]) String() string {
	return fmt.Sprint(d.MakeSliceCopy())
}

// Contains returns whether the element is in the Deque. This must not be a
// method, otherwise Deque would be constrained to comparable elements. It has
// the same semantics as slices.Contains.
func Contains[T comparable](d *Deque[T], t T) bool {
	a, b := d.slices()
	return slices.Contains(a, t) || slices.Contains(b, t)
}

// ContainsFunc returns whether an element satisfying f is in the Deque. It has
// the same semantics as slices.ContainsFunc.
func (d *Deque[T]) ContainsFunc(f func(T) bool) bool {
	a, b := d.slices()
	return slices.ContainsFunc(a, f) || slices.ContainsFunc(b, f)
}

// Equal returns whether both Deques have the same length and the same elements
// in the same order. Capacity and the physical layout are ignored. Two nil
// Deques are equal, but an empty Deque and nil are not.
func Equal[T comparable](d1, d2 *Deque[T]) bool {
	return d1.EqualFunc(d2, func(a, b T) bool { return a == b })
}

// EqualFunc returns whether both Deques have the same length and f reports
// every pair of elements in the same position as equal. Two nil Deques are
// equal, but an empty Deque and nil are not.
func (d1 *Deque[T]) EqualFunc(d2 *Deque[T], f func(T, T) bool) bool {
	if d1 == nil || d2 == nil {
		return d1 == d2
	}
	if d1.count != d2.count {
		return false
	}
	for i := range d1.count {
		if !f(d1.buf[d1.physical(i)], d2.buf[d2.physical(i)]) {
			return false
		}
	}
	return true
}

// Index returns the index of the first ocurrence of t in the Deque or -1 if
// absent. It has the same semantics as slices.Index.
func Index[T comparable](d *Deque[T], t T) int {
	return d.IndexFunc(func(u T) bool { return u == t })
}

// IndexFunc returns the index of the first element that satisfies f in the
// Deque or -1 if none do. It has the same semantics as slices.IndexFunc.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	s1, s2 := d.slices()
	if i := slices.IndexFunc(s1, f); i != -1 {
		return i
	}
	if i := slices.IndexFunc(s2, f); i != -1 {
		return i + len(s1)
	}
	return -1
}

// Max returns the maximum element in the Deque, or ErrEmpty. Unlike
// slices.Max, it does not panic on an empty Deque.
func Max[T cmp.Ordered](d *Deque[T]) (t T, err error) {
	s1, s2 := d.slices()
	if len(s1) == 0 {
		return t, ErrEmpty
	}
	t = slices.Max(s1)
	if len(s2) > 0 {
		t = max(t, slices.Max(s2))
	}
	return t, nil
}

// Min returns the minimum element in the Deque, or ErrEmpty. Unlike
// slices.Min, it does not panic on an empty Deque.
func Min[T cmp.Ordered](d *Deque[T]) (t T, err error) {
	s1, s2 := d.slices()
	if len(s1) == 0 {
		return t, ErrEmpty
	}
	t = slices.Min(s1)
	if len(s2) > 0 {
		t = min(t, slices.Min(s2))
	}
	return t, nil
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Iter returns an iterator over copies of the values from front to back. If
// you need indexes, use All instead. Every call returns a fresh iterator.
//
// Does not panic if the Deque is modified during iteration: each step reads
// the current Len(), so iteration stops early if elements are removed.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range d.All() {
			if !yield(t) {
				return
			}
		}
	}
}

// RIter returns an iterator over copies of the values from back to front. If
// you need indexes, use Backward instead. Does not panic if the Deque is
// modified during iteration.
func (d *Deque[T]) RIter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range d.Backward() {
			if !yield(t) {
				return
			}
		}
	}
}

// All returns an iterator over index-value pairs from front to back. It has
// the same semantics as slices.All.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil {
			return
		}
		for i := 0; i < d.count; i++ {
			if !yield(i, d.buf[d.physical(i)]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from back to front. It
// has the same semantics as slices.Backward.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil {
			return
		}
		// Clamp to the current length in case yield popped elements.
		for i := d.count - 1; i >= 0; i = min(i, d.count) - 1 {
			if !yield(i, d.buf[d.physical(i)]) {
				return
			}
		}
	}
}

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// physical maps logical index i to its slot in buf. It must only be called
// with len(d.buf) > 0 and 0 <= i <= d.count.
func (d *Deque[T]) physical(i int) int {
	return (d.head + i) % len(d.buf)
}

func (d *Deque[T]) inBounds(i int) bool {
	return i >= 0 && i < d.Len()
}

func (d *Deque[T]) checkBounds(i int) {
	if !d.inBounds(i) {
		panic(fmt.Sprintf("deque: index %d out of bounds with length %d", i, d.Len()))
	}
}
