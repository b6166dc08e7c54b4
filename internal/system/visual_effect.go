// internal/system/visual_effect.go
package system

import (
	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/entity"
	"go-spike-rush/internal/utils"
	"image/color"
)

// VisualEffectSystem управляет дымами и декоративными частицами.
// У частиц свой генератор, чтобы косметика не сдвигала игровой рандом.
type VisualEffectSystem struct {
	world *entity.World
	rng   utils.RandomSource
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, rng utils.RandomSource) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, rng: rng}
}

// Burst разбрасывает n частиц из точки
func (s *VisualEffectSystem) Burst(x, y float64, n int, clr color.RGBA) {
	for i := 0; i < n; i++ {
		s.world.Particles = append(s.world.Particles, &component.Particle{
			Position: component.Position{X: x, Y: y},
			Velocity: component.Velocity{
				VX: utils.Centered(s.rng, config.ParticleSpeed),
				VY: utils.Centered(s.rng, config.ParticleSpeed),
			},
			Life:  utils.Range(s.rng, config.ParticleMinLife, config.ParticleLifeVar),
			Color: clr,
		})
	}
}

// SpawnSmoke ставит облако дыма
func (s *VisualEffectSystem) SpawnSmoke(x, y float64) *component.Smoke {
	smoke := &component.Smoke{
		Position: component.Position{X: x, Y: y},
		Radius:   config.SmokeRadius,
		Timer:    config.SmokeLifetime,
		Lifetime: config.SmokeLifetime,
	}
	s.world.Smokes = append(s.world.Smokes, smoke)
	return smoke
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	smokes := s.world.Smokes[:0]
	for _, smoke := range s.world.Smokes {
		smoke.Timer -= deltaTime
		if smoke.Alive() {
			smokes = append(smokes, smoke)
		}
	}
	clear(s.world.Smokes[len(smokes):])
	s.world.Smokes = smokes

	particles := s.world.Particles[:0]
	for _, p := range s.world.Particles {
		p.X += p.VX * deltaTime
		p.Y += p.VY * deltaTime
		p.Life -= deltaTime
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	clear(s.world.Particles[len(particles):])
	s.world.Particles = particles
}

// Clear убирает дым и частицы при смене раунда
func (s *VisualEffectSystem) Clear() {
	s.world.Smokes = nil
	s.world.Particles = nil
}
