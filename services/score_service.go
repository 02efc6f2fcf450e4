// services/score_service.go
package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"memory-game-service/models"
)

// defaultHighScoreResults is how many entries the leaderboard returns when
// the caller does not ask for a specific count.
const defaultHighScoreResults = 3

type ScoreService struct {
	DB *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{DB: db}
}

func (s *ScoreService) allScores() ([]models.Score, error) {
	var scores []models.Score
	err := s.DB.Order("created_at").Find(&scores).Error
	return scores, err
}

// highScores returns the top games ordered by descending board size —
// the leaderboard ranks by difficulty, not by raw points. Creation date
// breaks ties deterministically.
func (s *ScoreService) highScores(limit int) ([]models.Score, error) {
	var scores []models.Score
	err := s.DB.Order("size DESC, created_at DESC").Limit(limit).Find(&scores).Error
	return scores, err
}

func (s *ScoreService) userScores(userName string) ([]models.Score, error) {
	var user models.User
	if err := s.DB.First(&user, "name = ?", userName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	var scores []models.Score
	err := s.DB.Where("user_name = ?", user.Name).Order("created_at").Find(&scores).Error
	return scores, err
}

// --- Fiber handlers ---

// GetScores returns the scores of all completed games.
func (s *ScoreService) GetScores(c *fiber.Ctx) error {
	scores, err := s.allScores()
	if err != nil {
		log.Error().Err(err).Msg("score query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(scoreForms(scores))
}

// GetHighScores returns the top-N completed games in descending board-size
// order. N defaults to 3 when the results parameter is absent.
func (s *ScoreService) GetHighScores(c *fiber.Ctx) error {
	results := c.QueryInt("results", defaultHighScoreResults)
	if results < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "results must be greater than zero"})
	}

	scores, err := s.highScores(results)
	if err != nil {
		log.Error().Err(err).Msg("high score query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(scoreForms(scores))
}

// GetUserScores returns all of one player's completed-game scores.
func (s *ScoreService) GetUserScores(c *fiber.Ctx) error {
	scores, err := s.userScores(c.Params("name"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		log.Error().Err(err).Msg("user score query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(scoreForms(scores))
}

func scoreForms(scores []models.Score) []models.ScoreForm {
	forms := make([]models.ScoreForm, len(scores))
	for i := range scores {
		forms[i] = scores[i].ToForm()
	}
	return forms
}
