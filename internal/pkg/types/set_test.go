package types

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		set := NewSet[string]()
		assert.Empty(t, set)
		assert.Equal(t, 0, set.Len())
	})

	t.Run("duplicate elements", func(t *testing.T) {
		set := NewSet("a", "b", "b", "c", "c", "c")
		assert.Equal(t, 3, set.Len())
		for _, v := range []string{"a", "b", "c"} {
			assert.True(t, set.Has(v))
		}
	})
}

func TestSet_AddDelete(t *testing.T) {
	set := NewSet("tx1")

	set.Add("tx2", "tx3", "tx1")
	assert.Equal(t, 3, set.Len())

	set.Delete("tx1", "missing")
	assert.Equal(t, 2, set.Len())
	assert.False(t, set.Has("tx1"))
	assert.True(t, set.Has("tx2"))
}

func TestSet_Clone(t *testing.T) {
	t.Run("clone is independent", func(t *testing.T) {
		original := NewSet("tx1", "tx2")
		clone := original.Clone()

		clone.Add("tx3")
		original.Delete("tx1")

		assert.Equal(t, 1, original.Len())
		assert.Equal(t, 3, clone.Len())
		assert.True(t, clone.Has("tx1"))
	})

	t.Run("clone of nil set is empty and usable", func(t *testing.T) {
		var nilSet Set[string]
		clone := nilSet.Clone()

		require.NotNil(t, clone)
		clone.Add("tx1")
		assert.True(t, clone.Has("tx1"))
	})
}

func TestSet_ToSlice(t *testing.T) {
	set := NewSet("b", "a", "c")

	got := set.ToSlice()
	slices.Sort(got)

	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSet_ToIter(t *testing.T) {
	set := NewSet(1, 2, 3)

	sum := 0
	for v := range set.ToIter() {
		sum += v
	}

	assert.Equal(t, 6, sum)
}
