package cells_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"commons/cells"
	"commons/seqs"
)

func TestBox(t *testing.T) {
	count := cells.NewBox(0)
	for range seqs.Repeat(struct{}{}, 3) {
		count.Update(func(v int) int { return v + 1 })
	}
	assert.Equal(t, 3, count.Get())

	count.Set(10)
	assert.Equal(t, 10, count.Value)
}

func TestLazy(t *testing.T) {
	calls := 0
	l := cells.NewLazy(func() string {
		calls++
		return "resolved"
	})

	assert.False(t, l.IsSet())
	assert.Equal(t, "resolved", l.Get())
	assert.Equal(t, "resolved", l.Get())
	assert.Equal(t, 1, calls)
	assert.True(t, l.IsSet())

	assert.Equal(t, "resolved", l.GetOr(func() string { return "other" }))
}

func TestLazyZeroValue(t *testing.T) {
	var l cells.Lazy[[]int]

	assert.Nil(t, l.Get())
	assert.False(t, l.IsSet())

	assert.Equal(t, []int{1}, l.GetOr(func() []int { return []int{1} }))
	assert.Equal(t, []int{1}, l.Get())

	l.Set(nil)
	assert.True(t, l.IsSet())
	assert.Nil(t, l.GetOr(func() []int { return []int{2} }))
}
