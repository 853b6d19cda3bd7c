package models

import (
	"time"
)

// User is a patient account. Doctors and admins authenticate separately.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Email        string    `json:"email" gorm:"unique"`
	Password     string    `json:"password,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	Image        string    `json:"image"`
	Phone        string    `json:"phone"`
	Gender       string    `json:"gender"`
	DOB          string    `json:"dob"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitize strips credential fields before the user is written to a
// response or embedded in an appointment snapshot.
func (u *User) Sanitize() {
	u.Password = ""
}
