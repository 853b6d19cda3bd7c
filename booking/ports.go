package booking

import (
	"context"

	"github.com/docdash/docdash-server/models"
)

// AppointmentStore persists appointment records. Implementations must return
// ErrAppointmentNotFound for missing ids, and the Mark* methods must be
// conditional single-step updates: they report updated=false (with no error)
// when the row's current flags no longer satisfy the transition's
// precondition, which is how a lost race is detected.
type AppointmentStore interface {
	Create(ctx context.Context, appt *models.Appointment) error
	Get(ctx context.Context, id uint) (*models.Appointment, error)
	ListByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
	Count(ctx context.Context) (int64, error)

	// MarkCancelled and MarkCompleted require the appointment to still be
	// active; MarkPaid only requires it not to be cancelled.
	MarkCancelled(ctx context.Context, id uint) (bool, error)
	MarkCompleted(ctx context.Context, id uint) (bool, error)
	MarkPaid(ctx context.Context, id uint) (bool, error)

	SetPaymentRef(ctx context.Context, id uint, ref string) error
}

// DoctorStore is the read side the booking core needs; profile CRUD stays in
// the controllers.
type DoctorStore interface {
	Get(ctx context.Context, id uint) (*models.Doctor, error)
	Count(ctx context.Context) (int64, error)
}

// PatientStore resolves the patient being snapshotted into a booking.
type PatientStore interface {
	Get(ctx context.Context, id uint) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

// Notifier is a fire-and-forget sink. Calls must not block the caller and
// their failure never affects the state transition that triggered them.
type Notifier interface {
	BookingConfirmed(appt *models.Appointment)
	AppointmentCancelled(appt *models.Appointment)
	PaymentReceived(appt *models.Appointment)
}

// PaymentProvider is the external checkout gateway. CreateSession returns a
// redirect URL plus the provider's reference for the session.
type PaymentProvider interface {
	CreateSession(ctx context.Context, appt *models.Appointment) (ref string, url string, err error)
}
