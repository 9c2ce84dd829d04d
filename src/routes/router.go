package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	authRoutes(app)
	studentRoutes(app)
	attendanceRoutes(app)
	marksRoutes(app)
	outpassRoutes(app)
	examRoutes(app)
	blobRoutes(app)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
