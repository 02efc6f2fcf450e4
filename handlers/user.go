// handlers/user.go
package handlers

import (
	"memory-game-service/services"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, userService *services.UserService) {
	app.Post("/users", userService.CreateUser)
	app.Get("/users/rankings", userService.GetUserRankings)
}
