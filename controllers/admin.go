package controllers

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/docdash/docdash-server/db"
	"github.com/docdash/docdash-server/middleware"
	"github.com/docdash/docdash-server/models"
	"github.com/docdash/docdash-server/utils"
)

// AdminLogin authenticates against the env-configured admin credentials.
func AdminLogin(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Email != os.Getenv("ADMIN_EMAIL") || input.Password != os.Getenv("ADMIN_PASSWORD") {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := issueToken(0, input.Email, middleware.RoleAdmin)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to generate token")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}

// AddDoctor creates a doctor account, uploading the profile image to
// Cloudinary when one is attached.
func AddDoctor(c *fiber.Ctx) error {
	doctor := new(models.Doctor)
	if err := c.BodyParser(doctor); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse request body")
	}
	if doctor.Email == "" || doctor.Password == "" || doctor.Name == "" {
		return fail(c, fiber.StatusBadRequest, "Missing required fields")
	}
	if doctor.Fees <= 0 {
		return fail(c, fiber.StatusBadRequest, "Fees must be positive")
	}

	var existing models.Doctor
	if db.DB.Where("email = ?", doctor.Email).First(&existing).RowsAffected > 0 {
		return fail(c, fiber.StatusConflict, "Doctor with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(doctor.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	doctor.Password = string(hashedPassword)
	doctor.Available = true

	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Cannot read image")
		}
		defer f.Close()
		url, err := utils.UploadDoctorImage(c.Context(), f, fmt.Sprintf("doctor_%s", doctor.Email))
		if err != nil {
			log.Printf("Error uploading doctor image: %v", err)
			return fail(c, fiber.StatusBadGateway, "Failed to upload image")
		}
		doctor.Image = url
	}

	if err := db.DB.Create(&doctor).Error; err != nil {
		log.Printf("Error creating doctor: %v", err)
		return fail(c, fiber.StatusInternalServerError, "Failed to create doctor")
	}

	doctor.Sanitize()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"doctor":  doctor,
	})
}

// ListAllDoctors returns every doctor for the admin panel.
func ListAllDoctors(c *fiber.Ctx) error {
	var doctors []models.Doctor
	if err := db.DB.Find(&doctors).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch doctors")
	}
	for i := range doctors {
		doctors[i].Sanitize()
	}
	return c.JSON(fiber.Map{
		"success": true,
		"doctors": doctors,
	})
}

// ToggleDoctorAvailability flips whether a doctor accepts new bookings.
// Existing appointments are unaffected.
func ToggleDoctorAvailability(c *fiber.Ctx) error {
	doctorID, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid doctor id")
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, doctorID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Doctor not found")
	}
	if err := db.DB.Model(&doctor).Update("available", !doctor.Available).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to update availability")
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"available": !doctor.Available,
	})
}

// ListAllAppointments returns every appointment for the admin panel.
func ListAllAppointments(c *fiber.Ctx) error {
	appointments, err := Booking.AllAppointments(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"appointments": appointments,
	})
}

// CancelAppointmentByAdmin cancels any appointment.
func CancelAppointmentByAdmin(c *fiber.Ctx) error {
	appointmentID, err := paramID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid appointment id")
	}

	if err := Booking.CancelByAdmin(c.Context(), appointmentID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Appointment cancelled",
	})
}

// AdminDashboard returns platform-wide counts and the latest bookings.
func AdminDashboard(c *fiber.Ctx) error {
	dash, err := Booking.DashboardForAdmin(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"dashboard": dash,
	})
}
