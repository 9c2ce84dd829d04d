package routes

import (
	"Backend-SriSudha-School/src/controllers"
	"Backend-SriSudha-School/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(router fiber.Router) {
	authGroup := router.Group("/auth")
	authGroup.Post("/login", controllers.LoginUser)
	authGroup.Post("/refresh", controllers.RefreshToken)
	authGroup.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
}
