package routes

import (
	"Backend-SriSudha-School/src/controllers"
	"Backend-SriSudha-School/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// attendanceRoutes กำหนดเส้นทางสำหรับ Attendance API
func attendanceRoutes(router fiber.Router) {
	attendanceGroup := router.Group("/attendance")
	attendanceGroup.Use(middleware.AuthJWT)
	attendanceGroup.Get("/", controllers.GetAttendanceSheet)            // sheet ของวันนี้
	attendanceGroup.Patch("/record", controllers.SetAttendanceField)    // แก้ 1 field
	attendanceGroup.Get("/session", controllers.GetSessionState)        // window + session ปัจจุบัน
	attendanceGroup.Get("/report", controllers.GetAttendanceReport)     // report ที่ cache ไว้
	attendanceGroup.Post("/report/regenerate", controllers.RegenerateAttendanceReport)
	attendanceGroup.Post("/lock", middleware.AdminOnly, controllers.LockAttendanceSession)
}
