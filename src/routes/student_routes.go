package routes

import (
	"Backend-SriSudha-School/src/controllers"
	"Backend-SriSudha-School/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// studentRoutes กำหนดเส้นทางสำหรับ Student API
func studentRoutes(router fiber.Router) {
	studentGroup := router.Group("/students")
	studentGroup.Use(middleware.AuthJWT)
	studentGroup.Get("/", controllers.GetStudents)                      // ดึงนักเรียนทั้งหมด
	studentGroup.Post("/", controllers.CreateStudent)                   // สร้างนักเรียนใหม่
	studentGroup.Post("/bulk", controllers.CreateStudentsBulk)          // นำเข้าหลายคน
	studentGroup.Post("/bulk-delete", controllers.DeleteStudentsBulk)   // ลบหลายคน
	studentGroup.Get("/groups", controllers.GetGroups)                  // รายชื่อกลุ่ม
	studentGroup.Get("/:admissionNo", controllers.GetStudentByAdmissionNo)
	studentGroup.Put("/:admissionNo", controllers.UpdateStudent)
	studentGroup.Delete("/:admissionNo", controllers.DeleteStudent)
}
