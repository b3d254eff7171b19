package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vailen/structures/list"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var l list.List[int]
	require.True(t, l.IsEmpty())
	require.Zero(t, l.Len())
	require.Nil(t, l.Slice())

	require.Equal(t, list.New[int](), l)
}

func TestPushAndLen(t *testing.T) {
	l := list.New[int]().Push(3).Push(2).Push(1)
	require.Equal(t, 3, l.Len())
	require.False(t, l.IsEmpty())
	require.Equal(t, []int{1, 2, 3}, l.Slice())
}

func TestPushIsPersistent(t *testing.T) {
	a := list.New[string]().Push("bye")
	b := a.Push("hi")

	// a still describes the one-element list; b shares a's tail.
	require.Equal(t, []string{"bye"}, a.Slice())
	require.Equal(t, []string{"hi", "bye"}, b.Slice())
}

func TestPop(t *testing.T) {
	l := list.New[string]().Push("bye").Push("hi")

	first, rest, ok := l.Pop()
	require.True(t, ok)
	require.Equal(t, "hi", first)
	require.Equal(t, []string{"bye"}, rest.Slice())

	// The original value is untouched.
	require.Equal(t, 2, l.Len())
}

func TestPopEmpty(t *testing.T) {
	var l list.List[int]
	v, rest, ok := l.Pop()
	require.False(t, ok)
	require.Zero(t, v)
	require.True(t, rest.IsEmpty())
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name  string
		start []int // built with FromSlice, so iteration order reverses
		index int
		item  int
		want  []int
	}{
		{"in bounds", []int{4, 3, 1}, 1, 2, []int{1, 2, 3, 4}},
		{"at front", []int{2, 1}, 0, 0, []int{0, 1, 2}},
		{"at end", []int{2}, 1, 12, []int{2, 12}},
		{"into empty", nil, 0, 5, []int{5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := list.FromSlice(tc.start).Insert(tc.index, tc.item)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.Slice())
		})
	}
}

func TestInsertOutOfRangeHandsBackOriginal(t *testing.T) {
	l := list.New[int]().Push(2)

	got, err := l.Insert(2, 12)
	require.ErrorIs(t, err, list.ErrIndexOutOfRange)
	require.Equal(t, l.Slice(), got.Slice(), "failed Insert must return the original list")

	_, err = l.Insert(-1, 12)
	require.ErrorIs(t, err, list.ErrIndexOutOfRange)
}

func TestRemove(t *testing.T) {
	l := list.New[int]().Push(4).Push(3).Push(2).Push(1)

	item, rest, err := l.Remove(1)
	require.NoError(t, err)
	require.Equal(t, 2, item)
	require.Equal(t, []int{1, 3, 4}, rest.Slice())

	// Removing the last index.
	item, rest, err = l.Remove(3)
	require.NoError(t, err)
	require.Equal(t, 4, item)
	require.Equal(t, []int{1, 2, 3}, rest.Slice())

	// The original list still has all four elements.
	require.Equal(t, []int{1, 2, 3, 4}, l.Slice())
}

func TestRemoveOutOfRangeHandsBackOriginal(t *testing.T) {
	l := list.New[int]().Push(2)

	item, rest, err := l.Remove(1)
	require.ErrorIs(t, err, list.ErrIndexOutOfRange)
	require.Zero(t, item)
	require.Equal(t, l.Slice(), rest.Slice(), "failed Remove must return the original list")
}

func TestFromSliceReversesOrder(t *testing.T) {
	l := list.FromSlice([]int{0, 1, 2, 3})
	require.Equal(t, []int{3, 2, 1, 0}, l.Slice())
}

func TestAll(t *testing.T) {
	l := list.New[int]().Push(3).Push(2).Push(1)

	var got []int
	for v := range l.All() {
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 3}, got)

	// Early break must terminate cleanly.
	count := 0
	for range l.All() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestStructuralSharingSurvivesDivergence(t *testing.T) {
	base := list.FromSlice([]int{1, 2, 3}) // 3, 2, 1
	left := base.Push(10)
	right := base.Push(20)

	require.Equal(t, []int{10, 3, 2, 1}, left.Slice())
	require.Equal(t, []int{20, 3, 2, 1}, right.Slice())
	require.Equal(t, []int{3, 2, 1}, base.Slice())
}
