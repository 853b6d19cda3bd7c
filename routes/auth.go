package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docdash/docdash-server/controllers"
	"github.com/docdash/docdash-server/middleware"
)

// SetupAuthRoutes configures patient account routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/verify", controllers.Verify)
	auth.Post("/resend", controllers.ResendVerification)
	auth.Post("/login", controllers.Login)

	// Protected routes
	auth.Get("/me", middleware.Protected(), middleware.RequireRole(middleware.RolePatient), controllers.GetUserProfile)
	auth.Patch("/me", middleware.Protected(), middleware.RequireRole(middleware.RolePatient), controllers.UpdateUserProfile)
}
