// internal/interfaces/renderer.go
package interfaces

import (
	"go-spike-rush/internal/component"
	"go-spike-rush/pkg/arena"
)

// Renderer: внешний отрисовщик. Ядро вызывает методы в порядке слоёв,
// передавая мировые координаты; камеру отрисовщик получает в BeginFrame.
type Renderer interface {
	BeginFrame(camX, camY float64)
	DrawMap(m *arena.Map)
	DrawSpike(spike *component.Spike)
	DrawSmoke(s *component.Smoke)
	DrawProjectile(p *component.Projectile)
	DrawEnemy(e *component.Enemy)
	DrawPlayer(p *component.Player, aim float64)
	DrawParticle(p *component.Particle)
	DrawCrosshair(x, y float64, preset int)
}
