// component/movement.go
package component

import "math"

// Position: компонент позиции
type Position struct {
	X, Y float64
}

// DistanceTo: расстояние до другой позиции
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Velocity: компонент скорости
type Velocity struct {
	VX, VY float64
}
