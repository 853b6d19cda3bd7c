package booking

import "github.com/docdash/docdash-server/models"

// State is the lifecycle position of an appointment, derived from its flags.
type State string

const (
	StateActive    State = "active"
	StateCancelled State = "cancelled"
	StateCompleted State = "completed"
)

// transitions is the only place the lifecycle is encoded: cancellation and
// completion are terminal, and only an active appointment may move.
var transitions = map[State]map[State]bool{
	StateActive: {
		StateCancelled: true,
		StateCompleted: true,
	},
	StateCancelled: {},
	StateCompleted: {},
}

// StateOf derives the state from the appointment flags.
func StateOf(a *models.Appointment) State {
	switch {
	case a.Cancelled:
		return StateCancelled
	case a.IsCompleted:
		return StateCompleted
	default:
		return StateActive
	}
}

// guardTransition rejects a move the lifecycle does not allow, naming the
// terminal state that blocks it. Every mutating operation on an appointment
// goes through this guard; no handler re-checks flags on its own.
func guardTransition(a *models.Appointment, to State) error {
	from := StateOf(a)
	if transitions[from][to] {
		return nil
	}
	switch from {
	case StateCancelled:
		if to == StateCancelled {
			return ErrAlreadyCancelled
		}
		return ErrAppointmentCancelled
	case StateCompleted:
		return ErrAlreadyCompleted
	default:
		return ErrForbidden
	}
}
