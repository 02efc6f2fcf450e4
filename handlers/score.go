// handlers/score.go
package handlers

import (
	"memory-game-service/services"

	"github.com/gofiber/fiber/v2"
)

func SetupScoreRoutes(app *fiber.App, scoreService *services.ScoreService) {
	app.Get("/scores", scoreService.GetScores)
	app.Get("/scores/highest", scoreService.GetHighScores)

	app.Get("/users/:name/scores", scoreService.GetUserScores)
}
