package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"memory-game-service/engine"
	"memory-game-service/models"
)

// seedCompletedGame inserts a completed game plus its Score row, as the
// completed transition would.
func seedCompletedGame(t *testing.T, db *gorm.DB, userName string, size int, when time.Time) *models.Score {
	t.Helper()

	board, err := engine.NewBoard(size)
	require.NoError(t, err)
	for i := range board {
		board[i].Cleared = true
	}
	game := &models.Game{
		ID:       uuid.NewString(),
		UserName: userName,
		Board:    board,
		Status:   models.StatusCompleted,
		Size:     size,
	}
	require.NoError(t, db.Create(game).Error)

	score := &models.Score{
		ID:        uuid.NewString(),
		GameID:    game.ID,
		UserName:  userName,
		Date:      when,
		Size:      size,
		CreatedAt: when,
	}
	require.NoError(t, db.Create(score).Error)
	return score
}

func TestHighScoresDefaultThreeBySize(t *testing.T) {
	db := newTestDB(t)
	svc := NewScoreService(db)
	createTestUser(t, db, "alice")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, size := range []int{2, 7, 3, 5, 4} {
		seedCompletedGame(t, db, "alice", size, base.Add(time.Duration(i)*time.Hour))
	}

	scores, err := svc.highScores(defaultHighScoreResults)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	sizes := []int{scores[0].Size, scores[1].Size, scores[2].Size}
	assert.Equal(t, []int{7, 5, 4}, sizes)
}

func TestHighScoresFewerThanRequested(t *testing.T) {
	db := newTestDB(t)
	svc := NewScoreService(db)
	createTestUser(t, db, "alice")
	seedCompletedGame(t, db, "alice", 2, time.Now())

	scores, err := svc.highScores(10)
	require.NoError(t, err)
	assert.Len(t, scores, 1)
}

func TestUserScores(t *testing.T) {
	db := newTestDB(t)
	svc := NewScoreService(db)
	createTestUser(t, db, "alice")
	createTestUser(t, db, "bob")

	now := time.Now()
	seedCompletedGame(t, db, "alice", 2, now)
	seedCompletedGame(t, db, "alice", 3, now.Add(time.Hour))
	seedCompletedGame(t, db, "bob", 4, now)

	scores, err := svc.userScores("alice")
	require.NoError(t, err)
	require.Len(t, scores, 2)
	for _, sc := range scores {
		assert.Equal(t, "alice", sc.UserName)
	}

	_, err = svc.userScores("nobody")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAllScores(t *testing.T) {
	db := newTestDB(t)
	svc := NewScoreService(db)
	createTestUser(t, db, "alice")

	now := time.Now()
	for i := 0; i < 4; i++ {
		seedCompletedGame(t, db, "alice", i+2, now.Add(time.Duration(i)*time.Minute))
	}

	scores, err := svc.allScores()
	require.NoError(t, err)
	assert.Len(t, scores, 4)
}

func TestScoreFormReportsMatchPoints(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "alice")
	score := seedCompletedGame(t, db, "alice", 4, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	form := score.ToForm()
	assert.Equal(t, "2026-03-01", form.Date)
	assert.Equal(t, 4, form.Size)
	assert.Equal(t, 16, form.Points)
	assert.Equal(t, "alice", form.User)
}
