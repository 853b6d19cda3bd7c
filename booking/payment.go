package booking

import (
	"context"
	"fmt"
)

// MarkCompleted transitions an appointment to completed. Only the owning
// doctor may complete, and a cancelled appointment can never be completed.
func (s *Service) MarkCompleted(ctx context.Context, doctorID, appointmentID uint) error {
	appt, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.DoctorID != doctorID {
		return ErrForbidden
	}
	if err := guardTransition(appt, StateCompleted); err != nil {
		return err
	}

	updated, err := s.appointments.MarkCompleted(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !updated {
		return s.conflictError(ctx, appointmentID, StateCompleted)
	}
	return nil
}

// CreatePaymentSession asks the payment provider for a checkout URL for the
// appointment's fee. It records the provider reference but does not mark the
// appointment paid; that happens on ConfirmPayment.
func (s *Service) CreatePaymentSession(ctx context.Context, patientID, appointmentID uint) (string, error) {
	appt, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		return "", err
	}
	if appt.PatientID != patientID {
		return "", ErrForbidden
	}
	if appt.Cancelled {
		return "", ErrAppointmentCancelled
	}

	ref, url, err := s.payments.CreateSession(ctx, appt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if err := s.appointments.SetPaymentRef(ctx, appointmentID, ref); err != nil {
		return "", err
	}
	return url, nil
}

// ConfirmPayment marks the appointment paid and sends the receipt. Payment
// on a cancelled appointment is rejected; payment on a completed one is
// fine (the visit may be settled afterwards).
func (s *Service) ConfirmPayment(ctx context.Context, patientID, appointmentID uint) error {
	appt, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.PatientID != patientID {
		return ErrForbidden
	}
	if appt.Cancelled {
		return ErrAppointmentCancelled
	}
	if appt.Payment {
		// Confirming twice is a client bug but changes nothing.
		return nil
	}

	updated, err := s.appointments.MarkPaid(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !updated {
		// A cancellation slipped in between the read and the update.
		return ErrAppointmentCancelled
	}
	appt.Payment = true

	s.notifier.PaymentReceived(appt)
	return nil
}
