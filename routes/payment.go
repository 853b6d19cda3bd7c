package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docdash/docdash-server/controllers"
	"github.com/docdash/docdash-server/middleware"
)

// SetupPaymentRoutes configures the payment routes
func SetupPaymentRoutes(app *fiber.App) {
	payment := app.Group("/payment", middleware.Protected(), middleware.RequireRole(middleware.RolePatient))
	payment.Post("/session", controllers.CreatePaymentSession)
	payment.Post("/confirm", controllers.ConfirmPayment)
}
