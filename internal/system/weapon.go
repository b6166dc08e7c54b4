// internal/system/weapon.go
package system

import (
	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/entity"
	"go-spike-rush/internal/event"
	"go-spike-rush/internal/utils"
	"math"
)

// Trigger: кто и куда жмёт на спуск в этом шаге
type Trigger struct {
	Owner  *component.Body
	Weapon *component.Weapon
	Angle  float64
	Moving bool
	Zoom   bool
}

// WeaponSystem ведёт перезарядку, кулдауны и отдачу, порождает пули
type WeaponSystem struct {
	world           *entity.World
	rng             utils.RandomSource
	effects         *VisualEffectSystem
	eventDispatcher *event.Dispatcher
}

func NewWeaponSystem(world *entity.World, rng utils.RandomSource, effects *VisualEffectSystem, eventDispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{
		world:           world,
		rng:             rng,
		effects:         effects,
		eventDispatcher: eventDispatcher,
	}
}

// ProcessRecoil снижает отдачу по истёкшим отложенным таймерам.
// Вызывается в начале шага, после продвижения времени мира.
func (s *WeaponSystem) ProcessRecoil() {
	pending := s.world.Recoil[:0]
	for _, t := range s.world.Recoil {
		if t.Deadline <= s.world.Time {
			t.Weapon.Recoil = math.Max(0, t.Weapon.Recoil-t.Amount)
			continue
		}
		pending = append(pending, t)
	}
	clear(s.world.Recoil[len(pending):])
	s.world.Recoil = pending
}

// Update ведёт таймеры перезарядки всех стволов в мире
func (s *WeaponSystem) Update(deltaTime float64) {
	if p := s.world.Player; p != nil && p.Weapon != nil {
		s.tick(p.Weapon, component.KindPlayer, deltaTime)
	}
	for _, e := range s.world.Enemies {
		if e.Alive && e.Weapon != nil {
			s.tick(e.Weapon, component.KindEnemy, deltaTime)
		}
	}
}

func (s *WeaponSystem) tick(w *component.Weapon, owner component.Kind, deltaTime float64) {
	if w.Update(deltaTime) {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ReloadFinished,
			Data: event.ReloadData{Owner: owner, Weapon: w.Name()},
		})
	}
}

// Reload запускает перезарядку, если это возможно
func (s *WeaponSystem) Reload(w *component.Weapon, owner component.Kind) bool {
	if !w.Reload() {
		return false
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ReloadStarted,
		Data: event.ReloadData{Owner: owner, Weapon: w.Name()},
	})
	return true
}

// TryFire стреляет, если оружие готово. Во время перезарядки ничего не
// делает; кулдаун уменьшается на каждом вызове. Пустой магазин запускает
// перезарядку вместо выстрела. Возвращает true, если выстрел произошёл.
func (s *WeaponSystem) TryFire(t Trigger, deltaTime float64) bool {
	w := t.Weapon
	if w.Reloading() {
		return false
	}
	w.Cooldown -= deltaTime
	if w.Cooldown > 0 {
		return false
	}
	if w.Mag <= 0 {
		s.Reload(w, t.Owner.Kind)
		return false
	}

	w.Mag--
	w.Cooldown = w.Def.FireDelay()

	spread := w.Def.Spread + w.Recoil
	if t.Moving {
		spread += w.Def.MoveSpread
	}
	w.Recoil = clampRecoil(w.Recoil + w.Def.RecoilKick)
	s.world.Recoil = append(s.world.Recoil, component.RecoilDecay{
		Weapon:   w,
		Deadline: s.world.Time + config.RecoilDecayDelay,
		Amount:   config.RecoilDecay,
	})

	falloff := 1.0
	if t.Zoom {
		falloff = config.ZoomFalloff
	}
	for i := 0; i < w.Def.Bullets; i++ {
		a := t.Angle + utils.Centered(s.rng, spread)
		s.world.Projectiles = append(s.world.Projectiles, &component.Projectile{
			Position: t.Owner.Position,
			Velocity: component.Velocity{
				VX: math.Cos(a) * config.ProjectileSpeed,
				VY: math.Sin(a) * config.ProjectileSpeed,
			},
			Owner:      t.Owner.Kind,
			Life:       config.ProjectileLife,
			Falloff:    falloff,
			BodyDamage: w.Def.BodyDamage,
			HeadDamage: w.Def.HeadDamage,
			Alive:      true,
		})
	}
	s.effects.Burst(t.Owner.X, t.Owner.Y, config.MuzzleBurst, config.MuzzleColor)
	return true
}

func clampRecoil(r float64) float64 {
	return math.Min(config.MaxRecoil, math.Max(0, r))
}
