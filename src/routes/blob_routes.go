package routes

import (
	"Backend-SriSudha-School/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// blobRoutes - path เดิมที่ frontend เรียกอยู่แล้ว อย่าเปลี่ยน
func blobRoutes(router fiber.Router) {
	blobGroup := router.Group("/api/blob")
	blobGroup.Get("/get-students", controllers.GetStudentsBlob)
	blobGroup.Post("/save-students", controllers.SaveStudentsBlob)
}
