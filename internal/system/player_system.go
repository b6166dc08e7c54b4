// internal/system/player_system.go
package system

import (
	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/entity"
	"go-spike-rush/internal/event"
	"go-spike-rush/internal/input"
	"math"
)

// PlayerSystem отвечает за шаг игрока: движение, способности, стрельбу
// и взаимодействие со спайком, строго в этом порядке.
type PlayerSystem struct {
	world           *entity.World
	weapons         *WeaponSystem
	effects         *VisualEffectSystem
	spike           *SpikeSystem
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(world *entity.World, weapons *WeaponSystem, effects *VisualEffectSystem,
	spike *SpikeSystem, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{
		world:           world,
		weapons:         weapons,
		effects:         effects,
		spike:           spike,
		eventDispatcher: eventDispatcher,
	}
}

// AimAngle: угол от экранной позиции игрока до курсора
func AimAngle(p *component.Player, in input.Snapshot, camX, camY float64) float64 {
	return math.Atan2(in.PointerY-(p.Y-camY), in.PointerX-(p.X-camX))
}

func (s *PlayerSystem) Update(deltaTime float64, in input.Snapshot, camX, camY float64) {
	p := s.world.Player
	if p == nil || !p.Alive {
		return
	}
	m := s.world.Map

	// 1. движение
	dx, dy := in.Direction()
	length := math.Hypot(dx, dy)
	if length == 0 {
		length = 1
	}
	speed := config.PlayerSpeed
	if in.Held(input.Walk) {
		speed *= config.WalkMultiplier
	}
	p.X += dx / length * speed * deltaTime
	p.Y += dy / length * speed * deltaTime
	clampToMap(&p.Position, m)
	p.Moving = in.Moving()

	// 2. способности
	p.Dash.Tick(deltaTime)
	p.Smoke.Tick(deltaTime)

	// 3. стрельба, в фазе покупки запрещена
	if in.Fire && s.world.Phase() != component.BuyPhase {
		s.weapons.TryFire(Trigger{
			Owner:  &p.Body,
			Weapon: p.Weapon,
			Angle:  AimAngle(p, in, camX, camY),
			Moving: p.Moving,
			Zoom:   p.Zoom,
		}, deltaTime)
	}

	// 4. прицеливание
	p.Zoom = in.Zoom && p.Weapon.CanZoom()

	// 5. перезарядка
	if in.Pressed(input.Reload) {
		s.weapons.Reload(p.Weapon, component.KindPlayer)
	}

	// 6. рывок
	if in.Pressed(input.Dash) && p.Dash.Ready() {
		moveAlong(&p.Position, AimAngle(p, in, camX, camY), config.DashDistance)
		clampToMap(&p.Position, m)
		p.Dash.Start()
		s.effects.Burst(p.X, p.Y, config.DashBurst, config.DashBurstColor)
		s.eventDispatcher.Toast("Dash!", config.ShortToastTime)
	}

	// 7. дым
	if in.Pressed(input.Smoke) && p.Smoke.Ready() {
		aim := AimAngle(p, in, camX, camY)
		s.effects.SpawnSmoke(
			p.X+math.Cos(aim)*config.SmokeThrowDist,
			p.Y+math.Sin(aim)*config.SmokeThrowDist,
		)
		p.Smoke.Start()
		s.eventDispatcher.Toast("Smoke deployed", config.ShortToastTime)
	}

	// 8. спайк
	s.spike.Interact(p, in.Held(input.Use), deltaTime)
}
