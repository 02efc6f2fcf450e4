package engine

// ApplyMove validates a guess against the board and applies it. When both
// referenced cards hold the same value they are flipped to cleared and the
// move reports a match; otherwise the board is left untouched. A move that
// fails any precondition mutates nothing.
//
// The caller owns the move history: append the pair after a nil-error
// return, match or not.
func ApplyMove(board []Card, card1, card2 int) (matched bool, err error) {
	if card1 < 0 || card1 >= len(board) || card2 < 0 || card2 >= len(board) {
		return false, ErrIndexOutOfRange
	}
	if card1 == card2 {
		return false, ErrSameCard
	}
	if board[card1].Cleared || board[card2].Cleared {
		return false, ErrCardUnavailable
	}

	if board[card1].Value != board[card2].Value {
		return false, nil
	}

	board[card1].Cleared = true
	board[card2].Cleared = true
	return true, nil
}

// IsComplete reports whether every card on the board has been cleared.
// An empty board counts as complete.
func IsComplete(board []Card) bool {
	for _, c := range board {
		if !c.Cleared {
			return false
		}
	}
	return true
}
