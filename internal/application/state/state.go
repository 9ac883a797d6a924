package state

import "github.com/younwookim/fruitmachine/internal/domain/entity"

// MachineState represents the aggregate state of the reel bank
type MachineState int

const (
	StateReady MachineState = iota
	StateSpinning
	StateSettling
)

// String returns the string representation of the machine state
func (s MachineState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateSpinning:
		return "Spinning"
	case StateSettling:
		return "Settling"
	default:
		return "Unknown"
	}
}

// FromReels derives the machine state from individual reel states.
// Any spinning reel wins over settling ones.
func FromReels(states []entity.ReelState) MachineState {
	result := StateReady
	for _, s := range states {
		switch s {
		case entity.ReelSpinning:
			return StateSpinning
		case entity.ReelSettling:
			result = StateSettling
		}
	}
	return result
}
