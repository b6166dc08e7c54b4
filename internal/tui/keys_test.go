package tui

import (
	"testing"

	"go-spike-rush/internal/input"

	"github.com/stretchr/testify/assert"
)

func TestKeyStateHoldExpires(t *testing.T) {
	k := NewKeyState()
	k.TriggerRune('d')

	snap := k.Snapshot(0.2)
	assert.True(t, snap.Held(input.MoveRight))
	assert.True(t, snap.Pressed(input.MoveRight))

	snap = k.Snapshot(0.016)
	assert.False(t, snap.Held(input.MoveRight), "hold must expire without autorepeat")
}

func TestKeyStateAutorepeatKeepsHold(t *testing.T) {
	k := NewKeyState()
	k.TriggerRune('w')
	k.Snapshot(0.1)
	k.TriggerRune('w')

	snap := k.Snapshot(0.1)
	assert.True(t, snap.Held(input.MoveUp))
	assert.False(t, snap.Pressed(input.MoveUp), "autorepeat is not a new press")
}

func TestKeyStatePressedOnce(t *testing.T) {
	k := NewKeyState()
	k.TriggerRune('e')

	assert.True(t, k.Snapshot(0.016).Pressed(input.Dash))
	assert.False(t, k.Snapshot(0.016).Pressed(input.Dash))
}

func TestKeyStateUppercaseWalks(t *testing.T) {
	k := NewKeyState()
	assert.True(t, k.TriggerRune('A'))
	assert.False(t, k.TriggerRune('?'))

	snap := k.Snapshot(0.016)
	assert.True(t, snap.Held(input.MoveLeft))
	assert.True(t, snap.Held(input.Walk))
}
