package db

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/docdash/docdash-server/booking"
)

func newMockedDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func TestMarkCancelledConditionalUpdate(t *testing.T) {
	gdb, mock := newMockedDB(t)
	store := NewAppointmentStore(gdb)

	// The precondition rides in the WHERE clause: only a still-active row
	// can flip to cancelled.
	mock.ExpectExec(`UPDATE "appointments" SET .* WHERE id = .* AND cancelled = .* AND is_completed = `).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := store.MarkCancelled(context.Background(), 12)
	require.NoError(t, err)
	assert.True(t, updated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkCancelledLostRace(t *testing.T) {
	gdb, mock := newMockedDB(t)
	store := NewAppointmentStore(gdb)

	mock.ExpectExec(`UPDATE "appointments"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := store.MarkCancelled(context.Background(), 12)
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestMarkPaidIgnoresCompletedFlag(t *testing.T) {
	gdb, mock := newMockedDB(t)
	store := NewAppointmentStore(gdb)

	// Payment only requires the row not be cancelled; a completed visit can
	// still be settled.
	mock.ExpectExec(`UPDATE "appointments" SET .* WHERE id = .* AND cancelled = [^A]*$`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := store.MarkPaid(context.Background(), 12)
	require.NoError(t, err)
	assert.True(t, updated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentGetNotFound(t *testing.T) {
	gdb, mock := newMockedDB(t)
	store := NewAppointmentStore(gdb)

	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.Get(context.Background(), 404)
	assert.ErrorIs(t, err, booking.ErrAppointmentNotFound)
}

func TestDoctorGetNotFound(t *testing.T) {
	gdb, mock := newMockedDB(t)
	store := NewDoctorStore(gdb)

	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.Get(context.Background(), 404)
	assert.ErrorIs(t, err, booking.ErrDoctorNotFound)
}

func TestPatientGetNotFound(t *testing.T) {
	gdb, mock := newMockedDB(t)
	store := NewPatientStore(gdb)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.Get(context.Background(), 404)
	assert.ErrorIs(t, err, booking.ErrPatientNotFound)
}
