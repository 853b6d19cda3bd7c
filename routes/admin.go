package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docdash/docdash-server/controllers"
	"github.com/docdash/docdash-server/middleware"
)

// SetupAdminRoutes configures the admin panel routes
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin")

	admin.Post("/login", controllers.AdminLogin)

	protected := admin.Group("", middleware.Protected(), middleware.RequireRole(middleware.RoleAdmin))
	protected.Post("/doctors", controllers.AddDoctor)
	protected.Get("/doctors", controllers.ListAllDoctors)
	protected.Post("/doctors/:id/availability", controllers.ToggleDoctorAvailability)
	protected.Get("/appointments", controllers.ListAllAppointments)
	protected.Post("/appointments/:id/cancel", controllers.CancelAppointmentByAdmin)
	protected.Get("/dashboard", controllers.AdminDashboard)
}
