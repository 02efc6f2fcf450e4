// services/ledger.go
//
// Lifetime ledger operations on a player's User row. Score and Games are
// only ever mutated through these three functions, always inside the
// caller's transaction, so every change to the totals has a single audited
// code path.
package services

import (
	"gorm.io/gorm"

	"memory-game-service/engine"
	"memory-game-service/models"
)

// addMatchPoints credits the award for one match (board size squared) to
// the player's cumulative score and returns the points so the caller can
// mirror them onto the game.
func addMatchPoints(tx *gorm.DB, user *models.User, size int) (int, error) {
	points := engine.MatchPoints(size)
	user.Score += points
	if err := tx.Model(user).Update("score", user.Score).Error; err != nil {
		return 0, err
	}
	return points, nil
}

// addCompletedGame increments the player's completed-game counter.
func addCompletedGame(tx *gorm.DB, user *models.User) error {
	user.Games++
	return tx.Model(user).Update("games", user.Games).Error
}

// removePoints debits points that were awarded during a now-cancelled
// game. The historic implementation computed the subtraction and threw it
// away; the debit here is intentional. Points removed never exceed what
// the same game awarded, so the total stays non-negative.
func removePoints(tx *gorm.DB, user *models.User, points int) error {
	user.Score -= points
	return tx.Model(user).Update("score", user.Score).Error
}
