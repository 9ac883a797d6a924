package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/fruitmachine/internal/domain/entity"
)

func TestMachineState_String(t *testing.T) {
	tests := []struct {
		state    MachineState
		expected string
	}{
		{StateReady, "Ready"},
		{StateSpinning, "Spinning"},
		{StateSettling, "Settling"},
		{MachineState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestMachineStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, MachineState(0), StateReady)
	assert.Equal(t, MachineState(1), StateSpinning)
	assert.Equal(t, MachineState(2), StateSettling)
}

func TestFromReels(t *testing.T) {
	tests := []struct {
		name   string
		states []entity.ReelState
		want   MachineState
	}{
		{"all idle", []entity.ReelState{entity.ReelIdle, entity.ReelIdle, entity.ReelIdle}, StateReady},
		{"one spinning", []entity.ReelState{entity.ReelIdle, entity.ReelIdle, entity.ReelSpinning}, StateSpinning},
		{"settling only", []entity.ReelState{entity.ReelIdle, entity.ReelSettling, entity.ReelIdle}, StateSettling},
		{"spinning beats settling", []entity.ReelState{entity.ReelSettling, entity.ReelSpinning, entity.ReelIdle}, StateSpinning},
		{"empty", nil, StateReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromReels(tt.states))
		})
	}
}
