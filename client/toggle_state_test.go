package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleState_OptimisticFlow(t *testing.T) {
	state := NewToggleState(false)

	target, ok := state.Begin()
	assert.True(t, ok)
	assert.True(t, target)
	assert.True(t, state.Value())

	state.Confirm(true)
	assert.True(t, state.Value())

	target, ok = state.Begin()
	assert.True(t, ok)
	assert.False(t, target)

	state.Confirm(false)
	assert.False(t, state.Value())
}

func TestToggleState_Rollback(t *testing.T) {
	state := NewToggleState(true)

	_, ok := state.Begin()
	assert.True(t, ok)
	assert.False(t, state.Value())

	state.Rollback()
	assert.True(t, state.Value())

	// A new toggle is allowed after rollback.
	_, ok = state.Begin()
	assert.True(t, ok)
}

func TestToggleState_RefusesWhileInFlight(t *testing.T) {
	state := NewToggleState(false)

	_, ok := state.Begin()
	assert.True(t, ok)

	_, ok = state.Begin()
	assert.False(t, ok)

	state.Confirm(true)

	_, ok = state.Begin()
	assert.True(t, ok)
}

func TestToggleState_ConfirmAdoptsServerValue(t *testing.T) {
	state := NewToggleState(false)

	// The server may disagree with the speculation, for example when the
	// quota check rejects the add. The confirmed value wins.
	target, _ := state.Begin()
	assert.True(t, target)

	state.Confirm(false)
	assert.False(t, state.Value())
}
