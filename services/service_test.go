package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"memory-game-service/models"
)

// newTestDB opens a fresh in-memory SQLite database. The pool is pinned to
// a single connection so transactions see the same :memory: database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Score{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func reloadUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, "name = ?", name).Error)
	return &user
}

func reloadGame(t *testing.T, db *gorm.DB, id string) *models.Game {
	t.Helper()
	var game models.Game
	require.NoError(t, db.First(&game, "id = ?", id).Error)
	return &game
}

// completionRecord mirrors the notifier call signature for assertions.
type completionRecord struct {
	UserName string
	GameID   string
	Score    int
}

type stubNotifier struct {
	events []completionRecord
}

func (n *stubNotifier) GameCompleted(userName, gameID string, score int) {
	n.events = append(n.events, completionRecord{UserName: userName, GameID: gameID, Score: score})
}
