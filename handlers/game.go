// handlers/game.go
package handlers

import (
	"memory-game-service/services"

	"github.com/gofiber/fiber/v2"
)

func SetupGameRoutes(app *fiber.App, gameService *services.GameService) {
	app.Post("/games", gameService.CreateGame)
	app.Get("/games/:id", gameService.GetGame)
	app.Put("/games/:id/move", gameService.MakeMove)
	app.Put("/games/:id/cancel", gameService.CancelGame)
	app.Get("/games/:id/history", gameService.GetGameHistory)

	app.Get("/users/:name/games", gameService.GetUserGames)
}
