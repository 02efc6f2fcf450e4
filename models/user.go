package models

import "time"

// User is a registered player. Name is the primary identifier (already
// slug-normalized by the handler layer); Games and Score are the lifetime
// ledger totals mutated by the ledger operations in services.
type User struct {
	Name      string    `json:"name" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"not null"`
	Games     int       `json:"games" gorm:"default:0"`
	Score     int       `json:"score" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserForm is the outbound representation of a player.
type UserForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Games int    `json:"games"`
	Score int    `json:"score"`
}

func (u *User) ToForm() UserForm {
	return UserForm{
		Name:  u.Name,
		Email: u.Email,
		Games: u.Games,
		Score: u.Score,
	}
}
