package models

import (
	"time"
)

// PatientSnapshot is the patient profile copied onto an appointment at
// booking time. Later profile edits never touch it.
type PatientSnapshot struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Image string `json:"image"`
}

// DoctorSnapshot is the doctor profile copied onto an appointment at
// booking time.
type DoctorSnapshot struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Speciality   string  `json:"speciality"`
	Degree       string  `json:"degree"`
	Image        string  `json:"image"`
	Fees         float64 `json:"fees"`
	AddressLine1 string  `json:"address_line1"`
	AddressLine2 string  `json:"address_line2"`
}

// Appointment is created only by the booking service and never hard-deleted;
// lifecycle is tracked through the Cancelled/IsCompleted/Payment flags.
// Cancelled and IsCompleted are mutually exclusive, and each is terminal.
type Appointment struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	PatientID uint `json:"patient_id" gorm:"index"`
	DoctorID  uint `json:"doctor_id" gorm:"index"`

	SlotDate string  `json:"slot_date"` // date key, e.g. "15_06_2025"
	SlotTime string  `json:"slot_time"` // e.g. "10:00 AM"
	Amount   float64 `json:"amount"`    // doctor's fee at booking time

	Patient PatientSnapshot `json:"patient" gorm:"embedded;embeddedPrefix:patient_"`
	Doctor  DoctorSnapshot  `json:"doctor" gorm:"embedded;embeddedPrefix:doctor_"`

	Cancelled   bool   `json:"cancel" gorm:"column:cancelled"`
	IsCompleted bool   `json:"is_completed"`
	Payment     bool   `json:"payment"`
	PaymentRef  string `json:"payment_ref,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAppointment builds the immutable booking snapshot. Callers must have
// sanitized both profiles first.
func NewAppointment(patient *User, doctor *Doctor, dateKey, slotTime string) *Appointment {
	return &Appointment{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		SlotDate:  dateKey,
		SlotTime:  slotTime,
		Amount:    doctor.Fees,
		Patient: PatientSnapshot{
			Name:  patient.Name,
			Email: patient.Email,
			Phone: patient.Phone,
			Image: patient.Image,
		},
		Doctor: DoctorSnapshot{
			Name:         doctor.Name,
			Email:        doctor.Email,
			Speciality:   doctor.Speciality,
			Degree:       doctor.Degree,
			Image:        doctor.Image,
			Fees:         doctor.Fees,
			AddressLine1: doctor.AddressLine1,
			AddressLine2: doctor.AddressLine2,
		},
	}
}
