package system

import (
	"testing"

	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/defs"
	"go-spike-rush/internal/entity"
	"go-spike-rush/internal/event"
	"go-spike-rush/internal/utils"
)

// fixture собирает мир и все системы с детерминированным рандомом:
// по умолчанию источник всегда отдаёт 0.5, то есть нулевой разброс.
type fixture struct {
	world       *entity.World
	events      *event.Dispatcher
	rng         *utils.SequenceSource
	effects     *VisualEffectSystem
	combat      *CombatSystem
	weapons     *WeaponSystem
	projectiles *ProjectileSystem
	ai          *EnemyAISystem
	rounds      *RoundSystem
	spike       *SpikeSystem
	player      *PlayerSystem

	killed []event.KillData
	toasts []string
}

func newFixture(t *testing.T, maxRounds int) *fixture {
	t.Helper()
	f := &fixture{
		world:  entity.NewWorld(defs.DefaultMap(), maxRounds),
		events: event.NewDispatcher(),
		rng:    utils.NewSequenceSource(),
	}
	f.effects = NewVisualEffectSystem(f.world, utils.NewSequenceSource())
	f.combat = NewCombatSystem(f.world, f.effects, f.events)
	f.weapons = NewWeaponSystem(f.world, f.rng, f.effects, f.events)
	f.projectiles = NewProjectileSystem(f.world, f.combat)
	f.ai = NewEnemyAISystem(f.world, f.rng, f.weapons)
	f.rounds = NewRoundSystem(f.world, f.rng, f.effects, f.projectiles, f.events, "test")
	f.spike = NewSpikeSystem(f.world, f.events)
	f.player = NewPlayerSystem(f.world, f.weapons, f.effects, f.spike, f.events)

	f.events.Subscribe(event.EntityKilled, event.ListenerFunc(func(e event.Event) {
		f.killed = append(f.killed, e.Data.(event.KillData))
	}))
	f.events.Subscribe(event.Toast, event.ListenerFunc(func(e event.Event) {
		f.toasts = append(f.toasts, e.Data.(event.ToastData).Text)
	}))

	f.rounds.StartMatch()
	return f
}

// live закрывает меню покупки и переводит раунд в бой
func (f *fixture) live() {
	f.rounds.DismissBuyMenu()
	f.rounds.Update(0)
}

// placeEnemy ставит единственного врага в точку
func (f *fixture) placeEnemy(x, y float64) *component.Enemy {
	e := &component.Enemy{
		Body:   component.NewBody(f.world.NewEntity(), component.KindEnemy, x, y, config.EnemyRadius, config.EnemyMaxHealth),
		Weapon: component.MustWeapon(config.DefaultEnemyGun),
		State:  component.AIPatrol,
	}
	f.world.Enemies = []*component.Enemy{e}
	return e
}

// shoot кладёт в мир неподвижную пулю в точке
func (f *fixture) shoot(owner component.Kind, x, y float64, body, head int) *component.Projectile {
	p := &component.Projectile{
		Position:   component.Position{X: x, Y: y},
		Owner:      owner,
		Life:       config.ProjectileLife,
		Falloff:    1,
		BodyDamage: body,
		HeadDamage: head,
		Alive:      true,
	}
	f.world.Projectiles = append(f.world.Projectiles, p)
	return p
}
