package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/docdash/docdash-server/booking"
	"github.com/docdash/docdash-server/ledger"
	"github.com/docdash/docdash-server/middleware"
	"github.com/docdash/docdash-server/notify"
	"github.com/docdash/docdash-server/redis"
	"github.com/docdash/docdash-server/utils"
)

// Package-level collaborators, wired once from main. Handlers stay free
// functions the way the routes reference them.
var (
	Booking       *booking.Service
	Slots         ledger.Store
	Verifications *redis.VerificationStore
	Notify        *notify.Notifier
)

// Setup injects the services the handlers depend on.
func Setup(svc *booking.Service, slots ledger.Store, verifications *redis.VerificationStore, notifier *notify.Notifier) {
	Booking = svc
	Slots = slots
	Verifications = verifications
	Notify = notifier
}

// issueToken signs a 7-day bearer token for the given identity and role.
func issueToken(id uint, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":    id,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.Secret())
}

// callerID reads the authenticated user id set by the JWT middleware.
func callerID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok
}

// paramID parses a numeric path parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	raw, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}

// fail writes the uniform failure payload.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(utils.ErrorResponse{Message: message})
}

// respondError maps the booking taxonomy onto HTTP statuses. Every failure
// leaves through here so no handler invents its own shape.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrDoctorNotFound),
		errors.Is(err, booking.ErrPatientNotFound),
		errors.Is(err, booking.ErrAppointmentNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrDoctorUnavailable),
		errors.Is(err, booking.ErrInvalidSlot):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrSlotTaken),
		errors.Is(err, booking.ErrAlreadyCancelled),
		errors.Is(err, booking.ErrAlreadyCompleted),
		errors.Is(err, booking.ErrAppointmentCancelled):
		return fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, booking.ErrForbidden):
		return fail(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, booking.ErrUpstream):
		return fail(c, fiber.StatusBadGateway, err.Error())
	default:
		return fail(c, fiber.StatusInternalServerError, "Something went wrong")
	}
}
