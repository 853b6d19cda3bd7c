package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/docdash/docdash-server/booking"
	"github.com/docdash/docdash-server/models"
)

// AppointmentStore is the Postgres implementation of
// booking.AppointmentStore. The Mark* methods are conditional updates whose
// WHERE clause carries the transition precondition, so a lost race shows up
// as zero affected rows instead of a silent overwrite.
type AppointmentStore struct {
	db *gorm.DB
}

func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

func (s *AppointmentStore) Create(ctx context.Context, appt *models.Appointment) error {
	return s.db.WithContext(ctx).Create(appt).Error
}

func (s *AppointmentStore) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.db.WithContext(ctx).First(&appt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appt, nil
}

func (s *AppointmentStore) ListByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&appointments).Error
	return appointments, err
}

func (s *AppointmentStore) ListByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&appointments).Error
	return appointments, err
}

func (s *AppointmentStore) ListAll(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&appointments).Error
	return appointments, err
}

func (s *AppointmentStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Appointment{}).Count(&count).Error
	return count, err
}

func (s *AppointmentStore) MarkCancelled(ctx context.Context, id uint) (bool, error) {
	tx := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ? AND cancelled = ? AND is_completed = ?", id, false, false).
		Update("cancelled", true)
	return tx.RowsAffected > 0, tx.Error
}

func (s *AppointmentStore) MarkCompleted(ctx context.Context, id uint) (bool, error) {
	tx := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ? AND cancelled = ? AND is_completed = ?", id, false, false).
		Update("is_completed", true)
	return tx.RowsAffected > 0, tx.Error
}

func (s *AppointmentStore) MarkPaid(ctx context.Context, id uint) (bool, error) {
	tx := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ? AND cancelled = ?", id, false).
		Update("payment", true)
	return tx.RowsAffected > 0, tx.Error
}

func (s *AppointmentStore) SetPaymentRef(ctx context.Context, id uint, ref string) error {
	return s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("payment_ref", ref).Error
}

// DoctorStore is the Postgres implementation of booking.DoctorStore.
type DoctorStore struct {
	db *gorm.DB
}

func NewDoctorStore(db *gorm.DB) *DoctorStore {
	return &DoctorStore{db: db}
}

func (s *DoctorStore) Get(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := s.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrDoctorNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

func (s *DoctorStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Doctor{}).Count(&count).Error
	return count, err
}

// PatientStore is the Postgres implementation of booking.PatientStore.
type PatientStore struct {
	db *gorm.DB
}

func NewPatientStore(db *gorm.DB) *PatientStore {
	return &PatientStore{db: db}
}

func (s *PatientStore) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrPatientNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *PatientStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}
