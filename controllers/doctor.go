package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/docdash/docdash-server/db"
	"github.com/docdash/docdash-server/middleware"
	"github.com/docdash/docdash-server/models"
)

// DoctorLogin authenticates a doctor.
func DoctorLogin(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var doctor models.Doctor
	if db.DB.Where("email = ?", input.Email).First(&doctor).RowsAffected == 0 {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(input.Password)); err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := issueToken(doctor.ID, doctor.Email, middleware.RoleDoctor)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to generate token")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}

// ListDoctors is the public doctor directory. Credentials are stripped and
// each doctor carries their booked-slot map from the ledger so clients can
// grey out taken slots.
func ListDoctors(c *fiber.Ctx) error {
	var doctors []models.Doctor
	if err := db.DB.Find(&doctors).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch doctors")
	}

	for i := range doctors {
		doctors[i].Sanitize()
		slots, err := Slots.BookedSlots(c.Context(), doctors[i].ID)
		if err != nil {
			return fail(c, fiber.StatusInternalServerError, "Failed to fetch booked slots")
		}
		doctors[i].SlotsBooked = slots
	}

	return c.JSON(fiber.Map{
		"success": true,
		"doctors": doctors,
	})
}

// ListDoctorAppointments returns the authenticated doctor's appointments.
func ListDoctorAppointments(c *fiber.Ctx) error {
	doctorID, ok := callerID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "User ID not found in context")
	}

	appointments, err := Booking.AppointmentsForDoctor(c.Context(), doctorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"appointments": appointments,
	})
}

// CompleteAppointment marks one of the doctor's appointments completed.
func CompleteAppointment(c *fiber.Ctx) error {
	doctorID, ok := callerID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "User ID not found in context")
	}
	appointmentID, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid appointment id")
	}

	if err := Booking.MarkCompleted(c.Context(), doctorID, appointmentID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Appointment marked as completed",
	})
}

// CancelAppointmentByDoctor cancels one of the doctor's appointments.
func CancelAppointmentByDoctor(c *fiber.Ctx) error {
	doctorID, ok := callerID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "User ID not found in context")
	}
	appointmentID, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid appointment id")
	}

	if err := Booking.CancelByDoctor(c.Context(), doctorID, appointmentID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Appointment cancelled",
	})
}

// DoctorDashboard returns the doctor's earnings and appointment aggregates.
func DoctorDashboard(c *fiber.Ctx) error {
	doctorID, ok := callerID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "User ID not found in context")
	}

	dash, err := Booking.DashboardForDoctor(c.Context(), doctorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"dashboard": dash,
	})
}

// GetDoctorProfile returns the authenticated doctor's profile.
func GetDoctorProfile(c *fiber.Ctx) error {
	doctorID, ok := callerID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "User ID not found in context")
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, doctorID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Doctor not found")
	}
	doctor.Sanitize()
	return c.JSON(fiber.Map{
		"success": true,
		"doctor":  doctor,
	})
}

// UpdateDoctorProfile updates the fields a doctor may edit. Snapshots on
// existing appointments keep the values from booking time.
func UpdateDoctorProfile(c *fiber.Ctx) error {
	doctorID, ok := callerID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "User ID not found in context")
	}

	var input struct {
		Fees         float64 `json:"fees"`
		About        string  `json:"about"`
		Available    bool    `json:"available"`
		AddressLine1 string  `json:"address_line1"`
		AddressLine2 string  `json:"address_line2"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	updates := map[string]interface{}{
		"fees":          input.Fees,
		"about":         input.About,
		"available":     input.Available,
		"address_line1": input.AddressLine1,
		"address_line2": input.AddressLine2,
	}
	if err := db.DB.Model(&models.Doctor{}).Where("id = ?", doctorID).Updates(updates).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
	})
}
