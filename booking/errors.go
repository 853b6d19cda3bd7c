package booking

import "errors"

// The full failure taxonomy for the booking core. Controllers map these to
// HTTP statuses; services never return an untyped failure for a state or
// authorization problem.
var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")

	ErrDoctorUnavailable = errors.New("doctor is not available")
	ErrSlotTaken         = errors.New("slot is already booked")
	ErrInvalidSlot       = errors.New("invalid slot date or time")

	ErrForbidden = errors.New("not allowed to act on this appointment")

	ErrAlreadyCancelled     = errors.New("appointment is already cancelled")
	ErrAlreadyCompleted     = errors.New("appointment is already completed")
	ErrAppointmentCancelled = errors.New("appointment has been cancelled")

	ErrUpstream = errors.New("upstream provider failure")
)
