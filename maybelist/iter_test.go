package maybelist_test

import (
	"slices"
	"testing"

	"github.com/on-the-ground/maybe_list_go/maybelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_Restartable(t *testing.T) {
	l := maybelist.FromSlice([]int{1, 2, 3})
	seq := l.All()

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, l.Len(), "iteration must not mutate the list")
}

func TestAll_EarlyBreak(t *testing.T) {
	l := maybelist.FromSlice([]int{1, 2, 3})

	var got []int
	for v := range l.All() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2}, got)
}

func TestDrain_YieldsInOrderAndConsumes(t *testing.T) {
	l := maybelist.One("a")
	l.Push("b")
	l.Push("c")

	got := slices.Collect(l.Drain())

	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
}

func TestDrain_OneVariant(t *testing.T) {
	l := maybelist.One(7)

	got := slices.Collect(l.Drain())

	require.Equal(t, []int{7}, got)
	assert.True(t, l.IsEmpty(), "a drained list is empty, not One")
}
