package services

import "errors"

var (
	// ErrUserNotFound is returned when a referenced player does not exist.
	ErrUserNotFound = errors.New("a player with that name does not exist")

	// ErrUserExists is returned when registering a name that is already taken.
	ErrUserExists = errors.New("a player with that name already exists")

	// ErrGameNotFound is returned when a referenced game does not exist.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameOver is returned when a move or cancellation targets a game
	// that already reached a terminal status.
	ErrGameOver = errors.New("game is already over")
)
