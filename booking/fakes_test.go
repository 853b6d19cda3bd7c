package booking

import (
	"context"
	"sync"

	"github.com/docdash/docdash-server/models"
)

// fakeAppointmentStore mirrors the conditional-update contract of the GORM
// store, including the updated=false signal when a precondition fails.
type fakeAppointmentStore struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]*models.Appointment
	order  []uint
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{nextID: 1, rows: make(map[uint]*models.Appointment)}
}

func (f *fakeAppointmentStore) Create(_ context.Context, appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	appt.ID = f.nextID
	f.nextID++
	clone := *appt
	f.rows[appt.ID] = &clone
	f.order = append(f.order, appt.ID)
	return nil
}

func (f *fakeAppointmentStore) Get(_ context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	clone := *row
	return &clone, nil
}

func (f *fakeAppointmentStore) list(match func(*models.Appointment) bool) []models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	// Newest first, matching the GORM store's ordering.
	for i := len(f.order) - 1; i >= 0; i-- {
		row := f.rows[f.order[i]]
		if match(row) {
			out = append(out, *row)
		}
	}
	return out
}

func (f *fakeAppointmentStore) ListByPatient(_ context.Context, patientID uint) ([]models.Appointment, error) {
	return f.list(func(a *models.Appointment) bool { return a.PatientID == patientID }), nil
}

func (f *fakeAppointmentStore) ListByDoctor(_ context.Context, doctorID uint) ([]models.Appointment, error) {
	return f.list(func(a *models.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (f *fakeAppointmentStore) ListAll(_ context.Context) ([]models.Appointment, error) {
	return f.list(func(*models.Appointment) bool { return true }), nil
}

func (f *fakeAppointmentStore) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows)), nil
}

func (f *fakeAppointmentStore) MarkCancelled(_ context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.Cancelled || row.IsCompleted {
		return false, nil
	}
	row.Cancelled = true
	return true, nil
}

func (f *fakeAppointmentStore) MarkCompleted(_ context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.Cancelled || row.IsCompleted {
		return false, nil
	}
	row.IsCompleted = true
	return true, nil
}

func (f *fakeAppointmentStore) MarkPaid(_ context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.Cancelled {
		return false, nil
	}
	row.Payment = true
	return true, nil
}

func (f *fakeAppointmentStore) SetPaymentRef(_ context.Context, id uint, ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return ErrAppointmentNotFound
	}
	row.PaymentRef = ref
	return nil
}

type fakeDoctorStore struct {
	mu      sync.Mutex
	doctors map[uint]*models.Doctor
}

func newFakeDoctorStore(doctors ...*models.Doctor) *fakeDoctorStore {
	f := &fakeDoctorStore{doctors: make(map[uint]*models.Doctor)}
	for _, d := range doctors {
		f.doctors[d.ID] = d
	}
	return f
}

func (f *fakeDoctorStore) Get(_ context.Context, id uint) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.doctors[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	clone := *d
	return &clone, nil
}

func (f *fakeDoctorStore) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.doctors)), nil
}

type fakePatientStore struct {
	mu       sync.Mutex
	patients map[uint]*models.User
}

func newFakePatientStore(patients ...*models.User) *fakePatientStore {
	f := &fakePatientStore{patients: make(map[uint]*models.User)}
	for _, p := range patients {
		f.patients[p.ID] = p
	}
	return f
}

func (f *fakePatientStore) Get(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.patients[id]
	if !ok {
		return nil, ErrPatientNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakePatientStore) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.patients)), nil
}

// recordingNotifier captures which notifications fired, by kind.
type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) record(kind string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, kind)
}

func (n *recordingNotifier) BookingConfirmed(*models.Appointment)     { n.record("booked") }
func (n *recordingNotifier) AppointmentCancelled(*models.Appointment) { n.record("cancelled") }
func (n *recordingNotifier) PaymentReceived(*models.Appointment)      { n.record("paid") }

func (n *recordingNotifier) Events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.events...)
}

// stubProvider answers CreateSession with canned values.
type stubProvider struct {
	ref   string
	url   string
	err   error
	calls int
}

func (p *stubProvider) CreateSession(_ context.Context, _ *models.Appointment) (string, string, error) {
	p.calls++
	if p.err != nil {
		return "", "", p.err
	}
	return p.ref, p.url, nil
}
