package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal/routes/api"
	"github.com/lk16/othello/internal/routes/version"
)

func rootHandler(c *fiber.Ctx) error {
	return c.Redirect("/api/board/start")
}

func SetupRoutes(app *fiber.App) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve version info
	version.SetupRoutes(app)

	// Serve root page
	app.Get("/", rootHandler)
}
