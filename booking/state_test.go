package booking

import (
	"testing"

	"github.com/docdash/docdash-server/models"
	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateActive, StateOf(&models.Appointment{}))
	assert.Equal(t, StateCancelled, StateOf(&models.Appointment{Cancelled: true}))
	assert.Equal(t, StateCompleted, StateOf(&models.Appointment{IsCompleted: true}))
	// Cancelled wins if both flags ever coexist.
	assert.Equal(t, StateCancelled, StateOf(&models.Appointment{Cancelled: true, IsCompleted: true}))
}

func TestGuardTransition(t *testing.T) {
	active := &models.Appointment{}
	cancelled := &models.Appointment{Cancelled: true}
	completed := &models.Appointment{IsCompleted: true}

	assert.NoError(t, guardTransition(active, StateCancelled))
	assert.NoError(t, guardTransition(active, StateCompleted))

	assert.ErrorIs(t, guardTransition(cancelled, StateCancelled), ErrAlreadyCancelled)
	assert.ErrorIs(t, guardTransition(cancelled, StateCompleted), ErrAppointmentCancelled)

	assert.ErrorIs(t, guardTransition(completed, StateCompleted), ErrAlreadyCompleted)
	assert.ErrorIs(t, guardTransition(completed, StateCancelled), ErrAlreadyCompleted)
}
