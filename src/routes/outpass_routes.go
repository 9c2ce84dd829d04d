package routes

import (
	"Backend-SriSudha-School/src/controllers"
	"Backend-SriSudha-School/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func outpassRoutes(router fiber.Router) {
	outpassGroup := router.Group("/outpasses")
	// หน้าประตูสแกน QR ได้โดยไม่ต้อง login
	outpassGroup.Get("/gate/:token", controllers.GetGatePassQR)

	outpassGroup.Use(middleware.AuthJWT)
	outpassGroup.Get("/", controllers.GetOutpasses)
	outpassGroup.Post("/", controllers.CreateOutpass)
	outpassGroup.Put("/:id/status", controllers.UpdateOutpassStatus)
}
