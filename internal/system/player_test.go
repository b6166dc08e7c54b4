package system

import (
	"math"
	"testing"

	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/input"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aimRight: курсор правее игрока, камера в нуле
func aimRight(p *component.Player) input.Snapshot {
	return input.Snapshot{PointerX: p.X + 200, PointerY: p.Y}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name   string
		keys   []input.Action
		dx, dy float64
	}{
		{"right", []input.Action{input.MoveRight}, 21, 0},
		{"walk", []input.Action{input.MoveRight, input.Walk}, 12.6, 0},
		{"diagonal", []input.Action{input.MoveRight, input.MoveDown}, 21 / math.Sqrt2, 21 / math.Sqrt2},
		{"idle", nil, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 12)
			p := f.world.Player
			in := aimRight(p)
			for _, k := range tt.keys {
				in.Hold(k)
			}
			f.player.Update(0.1, in, 0, 0)

			assert.InDelta(t, config.PlayerSpawnX+tt.dx, p.X, 1e-9)
			assert.InDelta(t, config.PlayerSpawnY+tt.dy, p.Y, 1e-9)
			assert.Equal(t, len(tt.keys) > 0, p.Moving)
		})
	}
}

func TestPlayerClampedToMap(t *testing.T) {
	f := newFixture(t, 12)
	p := f.world.Player
	p.X = config.MapWidth - 1
	var in input.Snapshot
	in.Hold(input.MoveRight)
	f.player.Update(0.1, in, 0, 0)

	assert.Equal(t, config.MapWidth, p.X)
}

func TestDashCooldown(t *testing.T) {
	f := newFixture(t, 12)
	p := f.world.Player
	in := input.Snapshot{PointerX: 1000, PointerY: p.Y}
	in.Press(input.Dash)

	f.player.Update(0.5, in, 0, 0)
	assert.Equal(t, config.PlayerSpawnX+config.DashDistance, p.X)
	assert.Contains(t, f.toasts, "Dash!")

	for i := 0; i < 11; i++ {
		f.player.Update(0.5, in, 0, 0)
	}
	assert.Equal(t, config.PlayerSpawnX+config.DashDistance, p.X, "still cooling down")

	f.player.Update(0.5, in, 0, 0)
	assert.Equal(t, config.PlayerSpawnX+2*config.DashDistance, p.X)
}

func TestSmokeThrownAlongAim(t *testing.T) {
	f := newFixture(t, 12)
	p := f.world.Player
	in := aimRight(p)
	in.Press(input.Smoke)
	f.player.Update(0.016, in, 0, 0)

	require.Len(t, f.world.Smokes, 1)
	assert.InDelta(t, config.PlayerSpawnX+config.SmokeThrowDist, f.world.Smokes[0].X, 1e-9)
	assert.InDelta(t, config.PlayerSpawnY, f.world.Smokes[0].Y, 1e-9)
	assert.False(t, p.Smoke.Ready())

	f.player.Update(0.016, in, 0, 0)
	assert.Len(t, f.world.Smokes, 1, "second smoke waits for the cooldown")
}

func TestNoFiringDuringBuyPhase(t *testing.T) {
	f := newFixture(t, 12)
	p := f.world.Player
	in := aimRight(p)
	in.Fire = true

	f.player.Update(0.016, in, 0, 0)
	assert.Empty(t, f.world.Projectiles)

	f.live()
	f.player.Update(0.016, in, 0, 0)
	require.Len(t, f.world.Projectiles, 1)
	assert.Equal(t, component.KindPlayer, f.world.Projectiles[0].Owner)
	assert.Equal(t, 11, p.Weapon.Mag)
}

func TestZoomNeedsScope(t *testing.T) {
	f := newFixture(t, 12)
	p := f.world.Player
	in := aimRight(p)
	in.Zoom = true

	f.player.Update(0.016, in, 0, 0)
	assert.False(t, p.Zoom, "Classic has no scope")

	p.Weapon = component.MustWeapon("Vandal")
	f.player.Update(0.016, in, 0, 0)
	assert.True(t, p.Zoom)
}

func TestReloadOnPress(t *testing.T) {
	f := newFixture(t, 12)
	p := f.world.Player
	p.Weapon.Mag = 5
	in := aimRight(p)
	in.Press(input.Reload)

	f.player.Update(0.016, in, 0, 0)
	assert.True(t, p.Weapon.Reloading())
}

func TestDeadPlayerIgnoresInput(t *testing.T) {
	f := newFixture(t, 12)
	p := f.world.Player
	p.Alive = false
	var in input.Snapshot
	in.Hold(input.MoveRight)
	in.Press(input.Dash)

	f.player.Update(0.1, in, 0, 0)
	assert.Equal(t, config.PlayerSpawnX, p.X)
	assert.True(t, p.Dash.Ready())
}

func TestAimAngleUsesCamera(t *testing.T) {
	p := &component.Player{Body: component.NewBody(1, component.KindPlayer, 500, 300, 14, 100)}
	in := input.Snapshot{PointerX: 100, PointerY: 200}

	assert.InDelta(t, math.Pi/2, AimAngle(p, in, 400, 200), 1e-12)
}
