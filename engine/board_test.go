package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardShape(t *testing.T) {
	for _, size := range []int{1, 2, 4, 10, 500} {
		board, err := NewBoard(size)
		require.NoError(t, err)
		require.Len(t, board, 2*size)

		counts := map[int]int{}
		for _, c := range board {
			assert.False(t, c.Cleared)
			assert.GreaterOrEqual(t, c.Value, 0)
			assert.Less(t, c.Value, size)
			counts[c.Value]++
		}
		// Every value appears exactly twice.
		require.Len(t, counts, size)
		for v, n := range counts {
			assert.Equalf(t, 2, n, "value %d appears %d times", v, n)
		}
	}
}

func TestNewBoardRejectsBadSize(t *testing.T) {
	for _, size := range []int{0, -1, -500} {
		board, err := NewBoard(size)
		require.ErrorIs(t, err, ErrBoardSize)
		assert.Nil(t, board)
	}
}

func TestMatchPoints(t *testing.T) {
	assert.Equal(t, 1, MatchPoints(1))
	assert.Equal(t, 4, MatchPoints(2))
	assert.Equal(t, 25, MatchPoints(5))
}
