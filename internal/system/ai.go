// internal/system/ai.go
package system

import (
	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/entity"
	"go-spike-rush/internal/utils"
	"math"
)

// EnemyAISystem: восприятие и поведение врагов.
// Состояние пересчитывается из условий каждый шаг, переходы не запоминаются.
type EnemyAISystem struct {
	world   *entity.World
	rng     utils.RandomSource
	weapons *WeaponSystem
}

func NewEnemyAISystem(world *entity.World, rng utils.RandomSource, weapons *WeaponSystem) *EnemyAISystem {
	return &EnemyAISystem{world: world, rng: rng, weapons: weapons}
}

// LineOfSight: нет стен на отрезке (по выборке точек) и середина отрезка
// не закрыта дымом
func LineOfSight(world *entity.World, a, b component.Position) bool {
	if !world.Map.SegmentClear(a.X, a.Y, b.X, b.Y, config.LineOfSightSamples) {
		return false
	}
	return !world.InSmoke((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// Perceive вычисляет состояние врага по текущей обстановке
func (s *EnemyAISystem) Perceive(e *component.Enemy) component.AIState {
	if s.world.InSmoke(e.X, e.Y) {
		return component.AISmoked
	}
	target := s.world.Player
	if target == nil || !target.Alive {
		return component.AIPatrol
	}
	if e.DistanceTo(target.Position) < config.EnemyDetectRadius && LineOfSight(s.world, e.Position, target.Position) {
		return component.AIChase
	}
	return component.AIPatrol
}

func (s *EnemyAISystem) Update(deltaTime float64) {
	for _, e := range s.world.Enemies {
		if !e.Alive {
			continue
		}
		e.State = s.Perceive(e)

		if e.State == component.AIChase {
			target := s.world.Player
			angle := math.Atan2(target.Y-e.Y, target.X-e.X)
			s.weapons.TryFire(Trigger{
				Owner:  &e.Body,
				Weapon: e.Weapon,
				Angle:  angle + utils.Centered(s.rng, config.EnemyAimJitter),
			}, deltaTime)
			moveToward(&e.Position, target.X, target.Y, config.EnemyChaseSpeed*deltaTime*config.EnemyChaseFactor)
		} else {
			e.X += utils.Centered(s.rng, config.EnemyWiggleSpeed) * deltaTime
			e.Y += utils.Centered(s.rng, config.EnemyWiggleSpeed) * deltaTime
		}
		clampToMap(&e.Position, s.world.Map)
	}
}
