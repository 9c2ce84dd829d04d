package routes

import (
	"Backend-SriSudha-School/src/controllers"
	"Backend-SriSudha-School/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func marksRoutes(router fiber.Router) {
	marksGroup := router.Group("/marks")
	marksGroup.Use(middleware.AuthJWT)
	marksGroup.Get("/", controllers.GetMarksByMonth)
	marksGroup.Post("/", controllers.UpsertMark)
	marksGroup.Post("/import", controllers.ImportMarks)
	marksGroup.Get("/:admissionNo", controllers.GetMarkSheet)
}
