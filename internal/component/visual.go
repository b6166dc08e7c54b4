// internal/component/visual.go
package component

import (
	"image/color"
	"math"
)

// Smoke: облако дыма, перекрывает линию видимости
type Smoke struct {
	Position
	Radius   float64
	Timer    float64 // сколько осталось жить
	Lifetime float64
}

func (s *Smoke) Alive() bool { return s.Timer > 0 }

// Contains проверяет, что точка строго внутри радиуса
func (s *Smoke) Contains(x, y float64) bool {
	return math.Hypot(s.X-x, s.Y-y) < s.Radius
}

// Particle: декоративная частица, на симуляцию не влияет.
type Particle struct {
	Position
	Velocity
	Life  float64
	Color color.RGBA
}
