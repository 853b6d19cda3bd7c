// Package ledger tracks which (doctor, date, time) slots are booked. It is a
// derived availability index: the appointment table stays the record of
// truth, so Release tolerates a missing entry while Reserve must be a single
// atomic conditional write.
package ledger

import (
	"context"
	"errors"
)

var (
	// ErrAlreadyBooked is returned by Reserve when the slot is held.
	ErrAlreadyBooked = errors.New("ledger: slot already booked")
	// ErrNotFound is returned by Release when no reservation exists.
	ErrNotFound = errors.New("ledger: reservation not found")
)

// Store is the slot-availability ledger. Reserve is check-and-set in one
// step: two concurrent reservations for the same slot must resolve to
// exactly one success.
type Store interface {
	IsFree(ctx context.Context, doctorID uint, dateKey, slotTime string) (bool, error)
	Reserve(ctx context.Context, doctorID uint, dateKey, slotTime string) error
	Release(ctx context.Context, doctorID uint, dateKey, slotTime string) error

	// BookedSlots returns every reserved slot for a doctor keyed by date,
	// in the shape the doctor API exposes as slots_booked.
	BookedSlots(ctx context.Context, doctorID uint) (map[string][]string, error)
}
