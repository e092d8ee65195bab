package sliceutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"commons/sliceutil"
)

func TestLast(t *testing.T) {
	assert.Equal(t, 3, sliceutil.Last([]int{1, 2, 3}))
	assert.Panics(t, func() { sliceutil.Last([]int{}) })

	v, ok := sliceutil.LastOk([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = sliceutil.LastOk[string](nil)
	assert.False(t, ok)
}

func TestIsOrdered(t *testing.T) {
	assert.True(t, sliceutil.IsOrdered(1, 2))
	assert.True(t, sliceutil.IsOrdered("a", "a"))
	assert.False(t, sliceutil.IsOrdered(2.5, 1.0))

	byLen := func(a, b string) int { return len(a) - len(b) }
	assert.True(t, sliceutil.IsOrderedFunc(byLen, "zz", "aaa"))
	assert.False(t, sliceutil.IsOrderedFunc(strings.Compare, "b", "a"))
}
