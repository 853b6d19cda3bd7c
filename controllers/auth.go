package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/docdash/docdash-server/db"
	"github.com/docdash/docdash-server/middleware"
	"github.com/docdash/docdash-server/models"
	"github.com/docdash/docdash-server/redis"
	"github.com/docdash/docdash-server/utils"
)

// Register creates a patient account and emails a verification code.
func Register(c *fiber.Ctx) error {
	user := new(models.User)
	if err := c.BodyParser(user); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if user.Email == "" || user.Password == "" || user.Name == "" {
		return fail(c, fiber.StatusBadRequest, "Missing required fields")
	}

	var existingUser models.User
	if db.DB.Where("email = ?", user.Email).First(&existingUser).RowsAffected > 0 {
		return fail(c, fiber.StatusConflict, "User with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	user.Password = string(hashedPassword)
	user.IsVerified = false

	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return fail(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	if err := sendVerificationCode(c, user); err != nil {
		log.Printf("Error sending verification code to %s: %v", user.Email, err)
		return fail(c, fiber.StatusInternalServerError, "Failed to send verification code")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Verification code sent to your email",
		"user_id": user.ID,
	})
}

// Verify consumes the emailed code and issues a patient token.
func Verify(c *fiber.Ctx) error {
	var input struct {
		UserID uint   `json:"user_id"`
		Code   string `json:"code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if err := Verifications.Consume(c.Context(), input.UserID, input.Code); err != nil {
		if errors.Is(err, redis.ErrCodeMismatch) {
			return fail(c, fiber.StatusBadRequest, "Invalid verification code")
		}
		return fail(c, fiber.StatusInternalServerError, "Verification failed")
	}

	var user models.User
	if err := db.DB.First(&user, input.UserID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "User not found")
	}
	if err := db.DB.Model(&user).Update("is_verified", true).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Verification failed")
	}

	token, err := issueToken(user.ID, user.Email, middleware.RolePatient)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Account verified successfully",
		"token":   token,
	})
}

// ResendVerification issues a fresh code for an unverified account.
func ResendVerification(c *fiber.Ctx) error {
	var input struct {
		UserID uint `json:"user_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var user models.User
	if err := db.DB.First(&user, input.UserID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "User not found")
	}
	if user.IsVerified {
		return fail(c, fiber.StatusBadRequest, "Account already verified")
	}

	if err := sendVerificationCode(c, &user); err != nil {
		log.Printf("Error resending verification code to %s: %v", user.Email, err)
		return fail(c, fiber.StatusInternalServerError, "Failed to send verification code")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "New verification code sent",
	})
}

// Login authenticates a verified patient.
func Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsVerified {
		return fail(c, fiber.StatusForbidden, "Account not verified")
	}

	token, err := issueToken(user.ID, user.Email, middleware.RolePatient)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	user.Sanitize()
	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// GetUserProfile returns the current patient's profile.
func GetUserProfile(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "User ID not found in context")
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "User not found")
	}
	user.Sanitize()
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// UpdateUserProfile updates mutable patient profile fields. Appointment
// snapshots taken earlier are not touched.
func UpdateUserProfile(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "User ID not found in context")
	}

	var input struct {
		Name         string `json:"name"`
		Phone        string `json:"phone"`
		Gender       string `json:"gender"`
		DOB          string `json:"dob"`
		AddressLine1 string `json:"address_line1"`
		AddressLine2 string `json:"address_line2"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	updates := map[string]interface{}{
		"name":          input.Name,
		"phone":         input.Phone,
		"gender":        input.Gender,
		"dob":           input.DOB,
		"address_line1": input.AddressLine1,
		"address_line2": input.AddressLine2,
	}
	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
	})
}

// sendVerificationCode stores a fresh code in Redis and emails it.
func sendVerificationCode(c *fiber.Ctx, user *models.User) error {
	code := utils.GenerateVerificationCode()
	if err := Verifications.Put(c.Context(), user.ID, code); err != nil {
		return err
	}
	Notify.VerificationCode(user.Name, user.Email, code)
	return nil
}
