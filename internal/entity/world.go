// internal/entity/world.go
package entity

import (
	"go-spike-rush/internal/component"
	"go-spike-rush/pkg/arena"
)

// World: всё изменяемое состояние симуляции. Владеет живыми коллекциями
// и синглтонами спайка и раунда; системы получают его явно.
type World struct {
	Time        float64
	NextID      component.EntityID
	Map         *arena.Map
	Player      *component.Player
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	Smokes      []*component.Smoke
	Particles   []*component.Particle
	Recoil      []component.RecoilDecay
	Spike       *component.Spike
	Round       *component.RoundState
}

func NewWorld(m *arena.Map, maxRounds int) *World {
	if m == nil {
		panic("map cannot be nil")
	}
	return &World{
		NextID: 1,
		Map:    m,
		Spike:  component.NewSpike(),
		Round: &component.RoundState{
			Phase:     component.BuyPhase,
			Round:     1,
			MaxRounds: maxRounds,
		},
	}
}

func (w *World) NewEntity() component.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Targets возвращает тела противоположной фракции. Срез не хранить:
// он строится заново на каждый запрос.
func (w *World) Targets(owner component.Kind) []*component.Body {
	if owner == component.KindPlayer {
		bodies := make([]*component.Body, 0, len(w.Enemies))
		for _, e := range w.Enemies {
			bodies = append(bodies, &e.Body)
		}
		return bodies
	}
	if w.Player == nil {
		return nil
	}
	return []*component.Body{&w.Player.Body}
}

// AliveEnemies: сколько врагов ещё живо
func (w *World) AliveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// InSmoke: находится ли точка внутри любого живого дыма
func (w *World) InSmoke(x, y float64) bool {
	for _, s := range w.Smokes {
		if s.Alive() && s.Contains(x, y) {
			return true
		}
	}
	return false
}

// Phase: текущая фаза раунда
func (w *World) Phase() component.Phase {
	return w.Round.Phase
}
