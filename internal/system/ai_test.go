package system

import (
	"testing"

	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerceive(t *testing.T) {
	f := newFixture(t, 12)
	// игрок на споте (260, 420)
	tests := []struct {
		name string
		x, y float64
		want component.AIState
	}{
		{"visible in range", 500, 420, component.AIChase},
		{"behind wall", 760, 420, component.AIPatrol},
		{"out of range", 1000, 420, component.AIPatrol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := f.placeEnemy(tt.x, tt.y)
			assert.Equal(t, tt.want, f.ai.Perceive(e))
		})
	}
}

func TestPerceiveSmoke(t *testing.T) {
	f := newFixture(t, 12)
	e := f.placeEnemy(500, 420)

	f.effects.SpawnSmoke(380, 420)
	assert.Equal(t, component.AIPatrol, f.ai.Perceive(e), "smoke on the midpoint blocks sight")

	f.effects.SpawnSmoke(500, 420)
	assert.Equal(t, component.AISmoked, f.ai.Perceive(e))
}

func TestPerceiveDeadPlayer(t *testing.T) {
	f := newFixture(t, 12)
	e := f.placeEnemy(500, 420)
	f.world.Player.Alive = false
	assert.Equal(t, component.AIPatrol, f.ai.Perceive(e))
}

func TestChaseMovesAndFires(t *testing.T) {
	f := newFixture(t, 12)
	f.live()
	e := f.placeEnemy(500, 420)

	f.ai.Update(0.5)

	assert.Equal(t, component.AIChase, e.State)
	assert.InDelta(t, 452.0, e.X, 1e-9)
	assert.InDelta(t, 420.0, e.Y, 1e-9)
	require.Len(t, f.world.Projectiles, 1)
	assert.Equal(t, component.KindEnemy, f.world.Projectiles[0].Owner)
	assert.Less(t, f.world.Projectiles[0].VX, 0.0, "shot toward the player")
}

func TestPatrolWiggle(t *testing.T) {
	f := newFixture(t, 12)
	e := f.placeEnemy(1000, 420)
	f.rng.Values = []float64{1, 0}

	f.ai.Update(0.5)

	assert.Equal(t, component.AIPatrol, e.State)
	assert.InDelta(t, 1010.0, e.X, 1e-9)
	assert.InDelta(t, 410.0, e.Y, 1e-9)
	assert.Empty(t, f.world.Projectiles)
}

func TestDeadEnemyIsSkipped(t *testing.T) {
	f := newFixture(t, 12)
	f.live()
	e := f.placeEnemy(500, 420)
	e.Alive = false
	e.State = component.AIPatrol

	f.ai.Update(0.5)

	assert.Equal(t, component.AIPatrol, e.State, "no perception for the dead")
	assert.Equal(t, 500.0, e.X)
	assert.Equal(t, 420.0, e.Y)
	assert.Empty(t, f.world.Projectiles)
	assert.Equal(t, e.Weapon.Def.MagSize, e.Weapon.Mag)
}

func TestEnemyStaysInsideMap(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		values []float64
	}{
		{"far corner", config.MapWidth, config.MapHeight, []float64{1, 1}},
		{"origin", 0, 0, []float64{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 12)
			f.world.Player.Alive = false
			e := f.placeEnemy(tt.x, tt.y)
			f.rng.Values = tt.values

			f.ai.Update(0.5)

			assert.Equal(t, component.AIPatrol, e.State)
			assert.Equal(t, tt.x, e.X)
			assert.Equal(t, tt.y, e.Y)
			assert.True(t, f.world.Map.InBounds(e.X, e.Y))
		})
	}
}
