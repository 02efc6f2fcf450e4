// models/game.go
package models

import (
	"time"

	"memory-game-service/engine"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Game is one memory-matching session, owned by exactly one User. The board
// and move history are stored as jsonb documents; Size is half the board
// length (the number of distinct card values).
type Game struct {
	ID       string        `json:"id" gorm:"primaryKey"`
	UserName string        `json:"user" gorm:"index;not null"`
	User     *User         `json:"-" gorm:"foreignKey:UserName;references:Name"`
	Board    []engine.Card `json:"board" gorm:"type:jsonb;serializer:json;not null"`
	Status   string        `json:"status" gorm:"default:'active'"` // active | completed | cancelled
	Score    int           `json:"score" gorm:"default:0"`
	Size     int           `json:"size" gorm:"not null"`
	History  []engine.Move `json:"history" gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsActive reports whether the game can still accept moves.
func (g *Game) IsActive() bool {
	return g.Status == StatusActive
}

// CardView is one board slot as shown to the player. Value is nil while
// the card is still face down.
type CardView struct {
	Value   *int `json:"value,omitempty"`
	Cleared bool `json:"cleared"`
}

// GameForm is the outbound representation of a game, with card values
// filtered per the reveal policy.
type GameForm struct {
	ID     string     `json:"id"`
	User   string     `json:"user"`
	Status string     `json:"status"`
	Score  int        `json:"score"`
	Size   int        `json:"size"`
	Board  []CardView `json:"board"`
}

// ToForm renders the game with no move in progress: an active game shows
// no card values at all, a terminal game shows the full board.
func (g *Game) ToForm() GameForm {
	return g.renderForm(-1, -1)
}

// ToFormWithMove renders the game as the response to a move on card1 and
// card2. While the game is active only those two slots reveal their value;
// once the game is completed or cancelled the whole board is revealed
// regardless of the move being reported.
func (g *Game) ToFormWithMove(card1, card2 int) GameForm {
	return g.renderForm(card1, card2)
}

func (g *Game) renderForm(card1, card2 int) GameForm {
	board := make([]CardView, len(g.Board))
	for i := range g.Board {
		board[i].Cleared = g.Board[i].Cleared
		if !g.IsActive() || i == card1 || i == card2 {
			v := g.Board[i].Value
			board[i].Value = &v
		}
	}
	return GameForm{
		ID:     g.ID,
		User:   g.UserName,
		Status: g.Status,
		Score:  g.Score,
		Size:   g.Size,
		Board:  board,
	}
}
