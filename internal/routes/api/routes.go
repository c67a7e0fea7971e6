package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Board routes
	apiGroup.Get("/board/start", GetStartBoard)
	apiGroup.Post("/board/moves", GetMoves)
	apiGroup.Post("/board/apply", ApplyMove)

	// Game routes
	apiGroup.Post("/simulate", middleware.Token(), Simulate)
	apiGroup.Get("/stats", GetStats)
}
