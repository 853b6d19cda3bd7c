package models

import (
	"time"
)

// Doctor is created by an admin. Availability gates new bookings; the
// booked-slot map itself lives in the ledger, not on this row.
type Doctor struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Email        string    `json:"email" gorm:"unique"`
	Password     string    `json:"password,omitempty"`
	Image        string    `json:"image"`
	Speciality   string    `json:"speciality"`
	Degree       string    `json:"degree"`
	Experience   string    `json:"experience"`
	About        string    `json:"about"`
	Fees         float64   `json:"fees"`
	Available    bool      `json:"available"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// SlotsBooked is assembled from the slot ledger when the doctor is
	// served over the API; it is never persisted on this table.
	SlotsBooked map[string][]string `json:"slots_booked,omitempty" gorm:"-"`
}

// Sanitize strips credential fields before the doctor is written to a
// response or embedded in an appointment snapshot.
func (d *Doctor) Sanitize() {
	d.Password = ""
}
