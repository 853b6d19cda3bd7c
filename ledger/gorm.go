package ledger

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlotReservation is one booked slot. The composite unique index is what
// makes Reserve atomic: the insert either lands or conflicts, there is no
// read-then-write window.
type SlotReservation struct {
	ID        uint   `gorm:"primaryKey"`
	DoctorID  uint   `gorm:"uniqueIndex:idx_doctor_slot,priority:1"`
	SlotDate  string `gorm:"uniqueIndex:idx_doctor_slot,priority:2"`
	SlotTime  string `gorm:"uniqueIndex:idx_doctor_slot,priority:3"`
	CreatedAt time.Time
}

// GormStore is the Postgres-backed ledger.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) IsFree(ctx context.Context, doctorID uint, dateKey, slotTime string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&SlotReservation{}).
		Where("doctor_id = ? AND slot_date = ? AND slot_time = ?", doctorID, dateKey, slotTime).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (s *GormStore) Reserve(ctx context.Context, doctorID uint, dateKey, slotTime string) error {
	res := SlotReservation{DoctorID: doctorID, SlotDate: dateKey, SlotTime: slotTime}
	tx := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&res)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrAlreadyBooked
	}
	return nil
}

func (s *GormStore) Release(ctx context.Context, doctorID uint, dateKey, slotTime string) error {
	tx := s.db.WithContext(ctx).
		Where("doctor_id = ? AND slot_date = ? AND slot_time = ?", doctorID, dateKey, slotTime).
		Delete(&SlotReservation{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) BookedSlots(ctx context.Context, doctorID uint) (map[string][]string, error) {
	var reservations []SlotReservation
	err := s.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	slots := make(map[string][]string, len(reservations))
	for _, r := range reservations {
		slots[r.SlotDate] = append(slots[r.SlotDate], r.SlotTime)
	}
	return slots, nil
}
