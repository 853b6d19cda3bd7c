package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// CreatePaymentSession returns the provider checkout URL for an appointment.
func CreatePaymentSession(c *fiber.Ctx) error {
	patientID, ok := callerID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "User ID not found in context")
	}

	var input struct {
		AppointmentID uint `json:"appointment_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	url, err := Booking.CreatePaymentSession(c.Context(), patientID, input.AppointmentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"url":     url,
	})
}

// ConfirmPayment marks an appointment paid after the provider signals
// success, and triggers the receipt email.
func ConfirmPayment(c *fiber.Ctx) error {
	patientID, ok := callerID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "User ID not found in context")
	}

	var input struct {
		AppointmentID uint `json:"appointment_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if err := Booking.ConfirmPayment(c.Context(), patientID, input.AppointmentID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment confirmed",
	})
}
