package ringdeque

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// wrapped returns [3 4 5 6] stored as [5 6 3 4].
func wrapped(t *testing.T) *Deque[int] {
	t.Helper()
	d := makeDeque[int](t, 4)
	pushBack(t, d, 1, 2, 3, 4)
	require.Equal(t, 2, d.DropFront(2))
	pushBack(t, d, 5, 6)
	return d
}

func TestIterOrder(t *testing.T) {
	d := wrapped(t)
	require.Equal(t, []int{3, 4, 5, 6}, slices.Collect(d.Iter()))
	require.Equal(t, []int{6, 5, 4, 3}, slices.Collect(d.RIter()))

	var idx, vals []int
	for i, v := range d.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	require.Equal(t, []int{0, 1, 2, 3}, idx)
	require.Equal(t, []int{3, 4, 5, 6}, vals)

	idx, vals = nil, nil
	for i, v := range d.Backward() {
		idx = append(idx, i)
		vals = append(vals, v)
		require.Equal(t, d.At(i), v)
	}
	require.Equal(t, []int{3, 2, 1, 0}, idx)
	require.Equal(t, []int{6, 5, 4, 3}, vals)
}

func TestIterRestartable(t *testing.T) {
	d := wrapped(t)
	seq := d.Iter()
	require.Equal(t, slices.Collect(seq), slices.Collect(seq))

	rseq := d.RIter()
	require.Equal(t, slices.Collect(rseq), slices.Collect(rseq))
}

func TestIterEarlyBreak(t *testing.T) {
	d := wrapped(t)
	var got []int
	for v := range d.Iter() {
		if v == 5 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{3, 4}, got)

	got = nil
	for v := range d.RIter() {
		if v == 4 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{6, 5}, got)
}

func TestIterYieldsCopies(t *testing.T) {
	d := makeDeque[[2]int](t, 3)
	pushBack(t, d, [2]int{1, 1}, [2]int{2, 2})

	got := slices.Collect(d.Iter())
	require.NoError(t, d.Set(0, [2]int{9, 9}))
	d.Clear()
	require.Equal(t, [][2]int{{1, 1}, {2, 2}}, got)
}

func TestIterMutation(t *testing.T) {
	d := makeDeque[int](t, 4)
	pushBack(t, d, 1, 2, 3, 4)
	var got []int
	for v := range d.RIter() {
		got = append(got, v)
		_, err := d.PopBack()
		require.NoError(t, err)
	}
	require.Equal(t, []int{4, 3, 2, 1}, got)
	require.True(t, d.Empty())

	pushBack(t, d, 1, 2, 3, 4)
	got = nil
	for v := range d.Iter() {
		got = append(got, v)
		d.Clear()
	}
	require.Equal(t, []int{1}, got)

	pushBack(t, d, 1, 2, 3)
	got = nil
	for v := range d.RIter() {
		got = append(got, v)
		d.DropBack(2)
	}
	require.Equal(t, []int{3, 1}, got)
}
