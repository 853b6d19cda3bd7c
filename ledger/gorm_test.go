package ledger

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockedStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewGormStore(gdb), mock
}

func TestGormStoreReserveInsertsOnce(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectQuery(`INSERT INTO "slot_reservations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err := store.Reserve(context.Background(), 1, "15_06_2025", "10:00 AM")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreReserveConflict(t *testing.T) {
	store, mock := newMockedStore(t)

	// ON CONFLICT DO NOTHING returns no rows when the slot is held.
	mock.ExpectQuery(`INSERT INTO "slot_reservations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := store.Reserve(context.Background(), 1, "15_06_2025", "10:00 AM")
	assert.ErrorIs(t, err, ErrAlreadyBooked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreReleaseMissing(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectExec(`DELETE FROM "slot_reservations"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Release(context.Background(), 1, "15_06_2025", "10:00 AM")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreRelease(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectExec(`DELETE FROM "slot_reservations"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Release(context.Background(), 1, "15_06_2025", "10:00 AM")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreIsFree(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	free, err := store.IsFree(context.Background(), 1, "15_06_2025", "10:00 AM")
	require.NoError(t, err)
	assert.True(t, free)
	require.NoError(t, mock.ExpectationsWereMet())
}
