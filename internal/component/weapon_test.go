package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeaponUnknown(t *testing.T) {
	_, err := NewWeapon("Odin")
	assert.Error(t, err)
	assert.Panics(t, func() { MustWeapon("Odin") })
}

func TestReloadGating(t *testing.T) {
	w := MustWeapon("Classic")
	assert.False(t, w.Reload(), "full magazine")

	w.Mag = 3
	require.True(t, w.Reload())
	assert.True(t, w.Reloading())
	assert.False(t, w.Reload(), "already reloading")

	empty := MustWeapon("Classic")
	empty.Mag = 0
	empty.Reserve = 0
	assert.False(t, empty.Reload(), "no reserve")
}

func TestReloadConservesRounds(t *testing.T) {
	w := MustWeapon("Classic")
	w.Mag = 4
	w.Reserve = 5
	total := w.Mag + w.Reserve
	require.True(t, w.Reload())

	assert.False(t, w.Update(1.0))
	assert.Equal(t, 4, w.Mag, "rounds move only when the reload completes")
	assert.True(t, w.Update(0.5))

	assert.Equal(t, 9, w.Mag)
	assert.Equal(t, 0, w.Reserve)
	assert.Equal(t, total, w.Mag+w.Reserve)
	assert.False(t, w.Reloading())
}

func TestAbilityTick(t *testing.T) {
	a := Ability{Cooldown: 6}
	assert.True(t, a.Ready())
	a.Start()
	assert.False(t, a.Ready())
	a.Tick(7)
	assert.Equal(t, 0.0, a.Timer)
	assert.True(t, a.Ready())
}
