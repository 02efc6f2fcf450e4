// Package engine holds the pure game logic for the memory-matching game:
// board generation, move evaluation and completion checks. It performs no
// I/O; persistence and transport live elsewhere.
package engine

import "errors"

// Card is a single board slot. Value is hidden from players while a game
// is active; Cleared marks a slot whose pair has been found.
type Card struct {
	Value   int  `json:"value"`
	Cleared bool `json:"cleared"`
}

// Move records one guess: the two board indices the player flipped.
type Move struct {
	Card1 int `json:"card1"`
	Card2 int `json:"card2"`
}

var (
	// ErrBoardSize is returned when a board is requested with size < 1.
	ErrBoardSize = errors.New("board size must be greater than zero")

	// ErrIndexOutOfRange is returned when a move references a slot outside the board.
	ErrIndexOutOfRange = errors.New("card index out of range")

	// ErrSameCard is returned when both move indices point at the same slot.
	// A card cannot be matched against itself.
	ErrSameCard = errors.New("cannot match a card with itself")

	// ErrCardUnavailable is returned when a referenced card was already cleared.
	ErrCardUnavailable = errors.New("card is no longer on the board")
)
