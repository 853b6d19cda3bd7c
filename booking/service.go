// Package booking implements the appointment lifecycle: slot reservation,
// cancellation, completion and payment, plus the dashboard read views
// derived from them.
package booking

import (
	"context"
	"errors"
	"log"

	"github.com/docdash/docdash-server/ledger"
	"github.com/docdash/docdash-server/models"
	"github.com/docdash/docdash-server/utils"
)

// Service orchestrates every mutation of appointments and slots. All
// handlers go through it; nothing else writes the appointment table or the
// ledger.
type Service struct {
	appointments AppointmentStore
	doctors      DoctorStore
	patients     PatientStore
	slots        ledger.Store
	notifier     Notifier
	payments     PaymentProvider
}

func NewService(appointments AppointmentStore, doctors DoctorStore, patients PatientStore, slots ledger.Store, notifier Notifier, payments PaymentProvider) *Service {
	return &Service{
		appointments: appointments,
		doctors:      doctors,
		patients:     patients,
		slots:        slots,
		notifier:     notifier,
		payments:     payments,
	}
}

// Book reserves a slot and creates the appointment record with both profile
// snapshots. The appointment row is written first and the ledger reservation
// second; if the reservation loses a race the fresh row is cancelled again
// so a live appointment always has a ledger entry.
func (s *Service) Book(ctx context.Context, patientID, doctorID uint, dateKey, slotTime string) (*models.Appointment, error) {
	if !utils.ValidDateKey(dateKey) || !utils.ValidSlotTime(slotTime) {
		return nil, ErrInvalidSlot
	}

	doctor, err := s.doctors.Get(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.Available {
		return nil, ErrDoctorUnavailable
	}

	free, err := s.slots.IsFree(ctx, doctorID, dateKey, slotTime)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotTaken
	}

	patient, err := s.patients.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	patient.Sanitize()
	doctor.Sanitize()

	appt := models.NewAppointment(patient, doctor, dateKey, slotTime)
	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}

	if err := s.reserveSlot(ctx, appt); err != nil {
		return nil, err
	}

	s.notifier.BookingConfirmed(appt)
	return appt, nil
}

// reserveSlot writes the ledger entry for a freshly created appointment and
// reconciles when it cannot: the appointment must not stay live without a
// matching reservation.
func (s *Service) reserveSlot(ctx context.Context, appt *models.Appointment) error {
	err := s.slots.Reserve(ctx, appt.DoctorID, appt.SlotDate, appt.SlotTime)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ledger.ErrAlreadyBooked) {
		// Transient ledger failure: retry once before giving up.
		if retryErr := s.slots.Reserve(ctx, appt.DoctorID, appt.SlotDate, appt.SlotTime); retryErr == nil {
			return nil
		} else if errors.Is(retryErr, ledger.ErrAlreadyBooked) {
			err = retryErr
		}
	}

	// The reservation lost (or the ledger is down): void the appointment so
	// it never counts as a live booking.
	if _, voidErr := s.appointments.MarkCancelled(ctx, appt.ID); voidErr != nil {
		log.Printf("booking: failed to void appointment %d after reserve failure: %v", appt.ID, voidErr)
	}
	appt.Cancelled = true

	if errors.Is(err, ledger.ErrAlreadyBooked) {
		return ErrSlotTaken
	}
	return err
}

// AppointmentsForPatient lists a patient's appointment history, newest first.
func (s *Service) AppointmentsForPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	return s.appointments.ListByPatient(ctx, patientID)
}

// AppointmentsForDoctor lists a doctor's appointments, newest first.
func (s *Service) AppointmentsForDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	return s.appointments.ListByDoctor(ctx, doctorID)
}

// AllAppointments is the admin view over every appointment.
func (s *Service) AllAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.appointments.ListAll(ctx)
}
