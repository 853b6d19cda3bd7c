package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// BookAppointment books a slot for the authenticated patient.
func BookAppointment(c *fiber.Ctx) error {
	patientID, ok := callerID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "User ID not found in context")
	}

	var input struct {
		DoctorID uint   `json:"doctor_id"`
		SlotDate string `json:"slot_date"`
		SlotTime string `json:"slot_time"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if _, err := Booking.Book(c.Context(), patientID, input.DoctorID, input.SlotDate, input.SlotTime); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Appointment booked successfully",
	})
}

// ListMyAppointments returns the authenticated patient's appointments.
func ListMyAppointments(c *fiber.Ctx) error {
	patientID, ok := callerID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "User ID not found in context")
	}

	appointments, err := Booking.AppointmentsForPatient(c.Context(), patientID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"appointments": appointments,
	})
}

// CancelAppointment cancels one of the authenticated patient's appointments.
func CancelAppointment(c *fiber.Ctx) error {
	patientID, ok := callerID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "User ID not found in context")
	}
	appointmentID, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid appointment id")
	}

	if err := Booking.CancelByPatient(c.Context(), patientID, appointmentID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Appointment cancelled successfully",
	})
}
