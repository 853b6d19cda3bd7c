package booking

import (
	"context"

	"github.com/docdash/docdash-server/models"
)

const latestAppointments = 5

// DoctorDashboard is the read-only aggregate a doctor sees on login.
type DoctorDashboard struct {
	Earnings           float64              `json:"earnings"`
	Patients           int                  `json:"patients"`
	Appointments       int                  `json:"appointments"`
	Cancelled          int                  `json:"cancelled_appointments"`
	Completed          int                  `json:"completed_appointments"`
	LatestAppointments []models.Appointment `json:"latest_appointments"`
}

// AdminDashboard is the platform-wide aggregate.
type AdminDashboard struct {
	Doctors            int64                `json:"doctors"`
	Patients           int64                `json:"patients"`
	Appointments       int64                `json:"appointments"`
	LatestAppointments []models.Appointment `json:"latest_appointments"`
}

// DashboardForDoctor aggregates a doctor's appointments: earnings over
// completed-or-paid visits, distinct patients as a set, latest five by
// creation order.
func (s *Service) DashboardForDoctor(ctx context.Context, doctorID uint) (*DoctorDashboard, error) {
	appointments, err := s.appointments.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	dash := &DoctorDashboard{Appointments: len(appointments)}
	patients := make(map[uint]struct{})
	for _, a := range appointments {
		if a.IsCompleted || a.Payment {
			dash.Earnings += a.Amount
		}
		if a.Cancelled {
			dash.Cancelled++
		}
		if a.IsCompleted {
			dash.Completed++
		}
		patients[a.PatientID] = struct{}{}
	}
	dash.Patients = len(patients)

	// ListByDoctor returns newest first.
	if len(appointments) > latestAppointments {
		appointments = appointments[:latestAppointments]
	}
	dash.LatestAppointments = appointments
	return dash, nil
}

// DashboardForAdmin counts doctors, patients and appointments and attaches
// the latest five bookings platform-wide.
func (s *Service) DashboardForAdmin(ctx context.Context) (*AdminDashboard, error) {
	doctors, err := s.doctors.Count(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := s.patients.Count(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.appointments.Count(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := s.appointments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(latest) > latestAppointments {
		latest = latest[:latestAppointments]
	}
	return &AdminDashboard{
		Doctors:            doctors,
		Patients:           patients,
		Appointments:       total,
		LatestAppointments: latest,
	}, nil
}
