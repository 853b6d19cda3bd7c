package booking

import (
	"context"
	"errors"
	"log"

	"github.com/docdash/docdash-server/ledger"
	"github.com/docdash/docdash-server/models"
)

// CancelByPatient cancels an appointment on behalf of the patient who owns
// it. A patient asking about someone else's appointment gets ErrForbidden,
// not ErrAppointmentNotFound.
func (s *Service) CancelByPatient(ctx context.Context, patientID, appointmentID uint) error {
	return s.cancel(ctx, appointmentID, func(a *models.Appointment) error {
		if a.PatientID != patientID {
			return ErrForbidden
		}
		return nil
	})
}

// CancelByDoctor cancels an appointment on behalf of the doctor it belongs to.
func (s *Service) CancelByDoctor(ctx context.Context, doctorID, appointmentID uint) error {
	return s.cancel(ctx, appointmentID, func(a *models.Appointment) error {
		if a.DoctorID != doctorID {
			return ErrForbidden
		}
		return nil
	})
}

// CancelByAdmin cancels any appointment.
func (s *Service) CancelByAdmin(ctx context.Context, appointmentID uint) error {
	return s.cancel(ctx, appointmentID, func(*models.Appointment) error { return nil })
}

// cancel is the single cancellation path: authorize, flip the flag with a
// conditional update, release the slot, notify. The ledger release tolerates
// an already-missing entry because the appointment record is authoritative.
func (s *Service) cancel(ctx context.Context, appointmentID uint, authorize func(*models.Appointment) error) error {
	appt, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		return err
	}
	if err := authorize(appt); err != nil {
		return err
	}
	if err := guardTransition(appt, StateCancelled); err != nil {
		return err
	}

	updated, err := s.appointments.MarkCancelled(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !updated {
		// A concurrent transition won; reload to report which one.
		return s.conflictError(ctx, appointmentID, StateCancelled)
	}
	appt.Cancelled = true

	if err := s.slots.Release(ctx, appt.DoctorID, appt.SlotDate, appt.SlotTime); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			log.Printf("booking: slot %s %s for doctor %d already released", appt.SlotDate, appt.SlotTime, appt.DoctorID)
		} else {
			// Cancellation stands; the ledger is a derived index and the
			// failure is logged for reconciliation.
			log.Printf("booking: failed to release slot for appointment %d: %v", appointmentID, err)
		}
	}

	s.notifier.AppointmentCancelled(appt)
	return nil
}

// conflictError re-reads the appointment after a conditional update matched
// no rows and maps the winner's state onto the taxonomy.
func (s *Service) conflictError(ctx context.Context, appointmentID uint, attempted State) error {
	appt, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		return err
	}
	if guardErr := guardTransition(appt, attempted); guardErr != nil {
		return guardErr
	}
	// Row reads as transitionable yet the update matched nothing; surface a
	// conflict rather than pretending success.
	return ErrAlreadyCancelled
}
