package engine

import "math/rand"

// NewBoard builds a freshly shuffled board of 2*size cards. Each value in
// [0, size) appears exactly twice and every permutation of the slots is
// equally likely. All cards start uncleared.
func NewBoard(size int) ([]Card, error) {
	if size < 1 {
		return nil, ErrBoardSize
	}

	board := make([]Card, 0, 2*size)
	for v := 0; v < size; v++ {
		board = append(board, Card{Value: v}, Card{Value: v})
	}

	rand.Shuffle(len(board), func(i, j int) {
		board[i], board[j] = board[j], board[i]
	})
	return board, nil
}

// MatchPoints returns the points awarded for a single match in a game of
// the given board size: size squared, so larger boards pay better.
func MatchPoints(size int) int {
	return size * size
}
