package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedBoard returns a deterministic size-2 board: values 0, 1, 0, 1.
func fixedBoard() []Card {
	return []Card{{Value: 0}, {Value: 1}, {Value: 0}, {Value: 1}}
}

func TestApplyMoveMatch(t *testing.T) {
	board := fixedBoard()
	matched, err := ApplyMove(board, 0, 2)
	require.NoError(t, err)
	assert.True(t, matched)
	assert.True(t, board[0].Cleared)
	assert.True(t, board[2].Cleared)
	assert.False(t, board[1].Cleared)
	assert.False(t, board[3].Cleared)
}

func TestApplyMoveMismatchLeavesBoardUnchanged(t *testing.T) {
	board := fixedBoard()
	matched, err := ApplyMove(board, 0, 1)
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Equal(t, fixedBoard(), board)
}

func TestApplyMoveRejections(t *testing.T) {
	cleared := fixedBoard()
	cleared[0].Cleared = true
	cleared[2].Cleared = true

	tests := []struct {
		name    string
		board   []Card
		c1, c2  int
		wantErr error
	}{
		{"index below range", fixedBoard(), -1, 0, ErrIndexOutOfRange},
		{"index above range", fixedBoard(), 0, 4, ErrIndexOutOfRange},
		{"both out of range", fixedBoard(), 17, 42, ErrIndexOutOfRange},
		{"same card twice", fixedBoard(), 2, 2, ErrSameCard},
		{"first card cleared", cleared, 0, 1, ErrCardUnavailable},
		{"second card cleared", cleared, 1, 2, ErrCardUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := make([]Card, len(tt.board))
			copy(before, tt.board)

			matched, err := ApplyMove(tt.board, tt.c1, tt.c2)
			require.ErrorIs(t, err, tt.wantErr)
			assert.False(t, matched)
			// A rejected move must not touch the board.
			assert.Equal(t, before, tt.board)
		})
	}
}

func TestIsComplete(t *testing.T) {
	assert.True(t, IsComplete(nil))
	assert.True(t, IsComplete([]Card{}))

	board := fixedBoard()
	assert.False(t, IsComplete(board))

	_, err := ApplyMove(board, 0, 2)
	require.NoError(t, err)
	assert.False(t, IsComplete(board))

	_, err = ApplyMove(board, 1, 3)
	require.NoError(t, err)
	assert.True(t, IsComplete(board))
}
