package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docdash/docdash-server/controllers"
	"github.com/docdash/docdash-server/middleware"
)

// SetupAppointmentRoutes configures the patient booking routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments", middleware.Protected(), middleware.RequireRole(middleware.RolePatient))
	appointment.Post("/", controllers.BookAppointment)
	appointment.Get("/", controllers.ListMyAppointments)
	appointment.Delete("/:id", controllers.CancelAppointment)
}
