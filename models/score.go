package models

import (
	"time"

	"memory-game-service/engine"
)

// Score is the terminal snapshot of a completed game. Exactly one row is
// created when a game reaches the completed status; cancelled games never
// produce one. Rows are immutable after creation.
type Score struct {
	ID       string    `json:"id" gorm:"primaryKey"`
	GameID   string    `json:"game" gorm:"uniqueIndex;not null"`
	Game     *Game     `json:"-" gorm:"foreignKey:GameID"`
	UserName string    `json:"user" gorm:"index;not null"`
	Date     time.Time `json:"date" gorm:"not null"`
	Size     int       `json:"size" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
}

// ScoreForm is the outbound representation of a completed-game score.
// Points is the per-match award for that board size (size squared), which
// is what the original score listing reported.
type ScoreForm struct {
	Date   string `json:"date"`
	Size   int    `json:"size"`
	Points int    `json:"points"`
	User   string `json:"user"`
	Game   string `json:"game"`
}

func (s *Score) ToForm() ScoreForm {
	return ScoreForm{
		Date:   s.Date.Format("2006-01-02"),
		Size:   s.Size,
		Points: engine.MatchPoints(s.Size),
		User:   s.UserName,
		Game:   s.GameID,
	}
}
