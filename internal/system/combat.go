package system

import (
	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/entity"
	"go-spike-rush/internal/event"
)

// CombatSystem применяет попадания: урон, частицы и событие смерти
type CombatSystem struct {
	world           *entity.World
	effects         *VisualEffectSystem
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, effects *VisualEffectSystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		effects:         effects,
		eventDispatcher: eventDispatcher,
	}
}

// Hit наносит урон пули цели в точке попадания
func (s *CombatSystem) Hit(target *component.Body, p *component.Projectile) {
	headshot := IsHeadshot(p.Y, target)
	damage := p.BodyDamage
	burst := config.BodyHitColor
	if headshot {
		damage = p.HeadDamage
		burst = config.HeadshotColor
	}
	s.ApplyDamage(target, float64(damage))
	s.effects.Burst(p.X, p.Y, config.HitBurst, burst)
}

// ApplyDamage вызывает общую функцию для нанесения урона и сообщает о смерти.
func (s *CombatSystem) ApplyDamage(target *component.Body, damage float64) {
	if _, killed := ApplyDamage(target, damage); killed {
		s.effects.Burst(target.X, target.Y, config.DeathBurst, config.DeathBurstColor)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EntityKilled,
			Data: event.KillData{ID: target.ID, Kind: target.Kind},
		})
	}
}
