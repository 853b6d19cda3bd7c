package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docdash/docdash-server/controllers"
	"github.com/docdash/docdash-server/middleware"
)

// SetupDoctorRoutes configures the doctor-facing routes
func SetupDoctorRoutes(app *fiber.App) {
	doctor := app.Group("/doctor")

	// Public routes
	doctor.Post("/login", controllers.DoctorLogin)
	doctor.Get("/list", controllers.ListDoctors)

	// Protected routes
	protected := doctor.Group("", middleware.Protected(), middleware.RequireRole(middleware.RoleDoctor))
	protected.Get("/appointments", controllers.ListDoctorAppointments)
	protected.Post("/appointments/:id/complete", controllers.CompleteAppointment)
	protected.Post("/appointments/:id/cancel", controllers.CancelAppointmentByDoctor)
	protected.Get("/dashboard", controllers.DoctorDashboard)
	protected.Get("/profile", controllers.GetDoctorProfile)
	protected.Patch("/profile", controllers.UpdateDoctorProfile)
}
