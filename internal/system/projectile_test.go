package system

import (
	"testing"

	"go-spike-rush/internal/component"

	"github.com/stretchr/testify/assert"
)

func TestProjectileWallBeforeTarget(t *testing.T) {
	f := newFixture(t, 12)
	// стена x 620..660, y 300..580; враг задевает её краем
	e := f.placeEnemy(660, 400)
	f.shoot(component.KindPlayer, 650, 400, 39, 156)

	f.projectiles.Update(0)

	assert.Equal(t, 100.0, e.Health, "the wall absorbs the bullet")
	assert.Empty(t, f.world.Projectiles)
}

func TestProjectileLeavesMap(t *testing.T) {
	f := newFixture(t, 12)
	f.world.Enemies = nil
	p := f.shoot(component.KindPlayer, 1995, 600, 39, 156)
	p.VX = 1400

	f.projectiles.Update(0.01)

	assert.False(t, p.Alive)
	assert.Empty(t, f.world.Projectiles)
}

func TestProjectileExpires(t *testing.T) {
	f := newFixture(t, 12)
	f.world.Enemies = nil
	p := f.shoot(component.KindPlayer, 1000, 1000, 39, 156)
	p.Life = 0.01

	f.projectiles.Update(0.01)

	assert.False(t, p.Alive)
}

func TestProjectileHitsOneTarget(t *testing.T) {
	f := newFixture(t, 12)
	a := f.placeEnemy(1000, 1000)
	b := &component.Enemy{Body: component.NewBody(f.world.NewEntity(), component.KindEnemy, 1000, 1000, 14, 100), Weapon: a.Weapon}
	f.world.Enemies = append(f.world.Enemies, b)

	f.shoot(component.KindPlayer, 1000, 1010, 39, 156)
	f.projectiles.Update(0)

	assert.Equal(t, 61.0, a.Health)
	assert.Equal(t, 100.0, b.Health)
}

func TestProjectileIgnoresOwnFaction(t *testing.T) {
	f := newFixture(t, 12)
	e := f.placeEnemy(1000, 1000)
	p := f.shoot(component.KindEnemy, 1000, 1000, 39, 156)

	f.projectiles.Update(0)

	assert.Equal(t, 100.0, e.Health)
	assert.True(t, p.Alive)
}

func TestEnemyProjectileHitsPlayerArmor(t *testing.T) {
	f := newFixture(t, 12)
	f.world.Enemies = nil
	player := f.world.Player
	player.Armor = 50

	f.shoot(component.KindEnemy, player.X, player.Y+10, 40, 160)
	f.projectiles.Update(0)

	assert.InDelta(t, 22.0, player.Armor, 1e-9)
	assert.InDelta(t, 88.0, player.Health, 1e-9)
}
