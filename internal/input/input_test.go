package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPressImpliesHeld(t *testing.T) {
	var s Snapshot
	s.Press(Dash)

	assert.True(t, s.Pressed(Dash))
	assert.True(t, s.Held(Dash))
	assert.False(t, s.Pressed(Smoke))
}

func TestDirection(t *testing.T) {
	var s Snapshot
	s.Hold(MoveRight)
	s.Hold(MoveUp)

	dx, dy := s.Direction()
	assert.Equal(t, 1.0, dx)
	assert.Equal(t, -1.0, dy)
	assert.True(t, s.Moving())

	s.Hold(MoveLeft)
	dx, _ = s.Direction()
	assert.Equal(t, 0.0, dx, "opposite keys cancel out")
}

func TestEmptySnapshotIsIdle(t *testing.T) {
	var s Snapshot
	dx, dy := s.Direction()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.False(t, s.Moving())
}
