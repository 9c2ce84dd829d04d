package routes

import (
	"Backend-SriSudha-School/src/controllers"
	"Backend-SriSudha-School/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func examRoutes(router fiber.Router) {
	examGroup := router.Group("/exam-schedules")
	examGroup.Use(middleware.AuthJWT)
	examGroup.Get("/", controllers.GetExamSchedules)
	examGroup.Post("/", controllers.CreateExamSchedule)
	examGroup.Put("/:id", controllers.UpdateExamSchedule)
	examGroup.Delete("/:id", controllers.DeleteExamSchedule)
}
