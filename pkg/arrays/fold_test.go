package arrays

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 34, Sum(12, 3, 4, 15))
	assert.Equal(t, 7, Sum(7))
	assert.Equal(t, -2, Sum(-2))
	assert.Equal(t, 0, Sum[int]())
	assert.InDelta(t, 1.5, Sum(0.5, 1.0), 1e-9)
}

func TestSum_Permutations(t *testing.T) {
	perms := [][]int{
		{12, 3, 4, 15},
		{15, 4, 3, 12},
		{3, 12, 15, 4},
		{4, 15, 12, 3},
	}
	for _, p := range perms {
		assert.Equal(t, 34, Sum(p...), "permutation %v", p)
	}
}

func TestReduce(t *testing.T) {
	t.Run("Seeds With First Element", func(t *testing.T) {
		got, err := Reduce([]int{10, 3, 2}, func(a, b int) int { return a - b })
		require.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("Single Element", func(t *testing.T) {
		got, err := Reduce([]int{42}, func(a, b int) int { return a + b })
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Reduce([]int{}, func(a, b int) int { return a + b })
		assert.ErrorIs(t, err, ErrEmpty)
	})
}

func TestFold_LeftToRight(t *testing.T) {
	got := Fold([]int{1, 2, 3}, "", func(acc string, x int) string {
		return acc + strconv.Itoa(x)
	})
	assert.Equal(t, "123", got)
}
