// internal/system/projectile.go
package system

import (
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/entity"
)

// ProjectileSystem управляет движением пуль и попаданиями
type ProjectileSystem struct {
	world        *entity.World
	combatSystem *CombatSystem
}

func NewProjectileSystem(world *entity.World, combatSystem *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{
		world:        world,
		combatSystem: combatSystem,
	}
}

// Update двигает пули и разрешает столкновения в порядке: время жизни,
// границы карты, стены, цели. За шаг пуля задевает не больше одной цели.
func (s *ProjectileSystem) Update(deltaTime float64) {
	m := s.world.Map
	for _, p := range s.world.Projectiles {
		if !p.Alive {
			continue
		}
		p.X += p.VX * deltaTime
		p.Y += p.VY * deltaTime
		p.Life -= deltaTime * config.ProjectileDecayRate
		if p.Life <= 0 {
			p.Alive = false
			continue
		}
		if !m.InBounds(p.X, p.Y) {
			p.Alive = false
			continue
		}
		// Стены проверяются раньше целей
		if m.InWall(p.X, p.Y) {
			p.Alive = false
			continue
		}
		for _, target := range s.world.Targets(p.Owner) {
			if !target.Alive {
				continue
			}
			if p.DistanceTo(target.Position) < target.Radius {
				p.Alive = false
				s.combatSystem.Hit(target, p)
				break
			}
		}
	}
	s.removeDead()
}

// Вспомогательная функция для удаления мёртвых пуль
func (s *ProjectileSystem) removeDead() {
	live := s.world.Projectiles[:0]
	for _, p := range s.world.Projectiles {
		if p.Alive {
			live = append(live, p)
		}
	}
	clear(s.world.Projectiles[len(live):])
	s.world.Projectiles = live
}

// Clear убирает все пули, например при смене раунда
func (s *ProjectileSystem) Clear() {
	s.world.Projectiles = nil
}
