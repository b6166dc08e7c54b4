// internal/system/movement.go
package system

import (
	"go-spike-rush/internal/component"
	"go-spike-rush/internal/utils"
	"go-spike-rush/pkg/arena"
	"math"
)

// moveToward сдвигает позицию к точке на заданное расстояние
func moveToward(pos *component.Position, tx, ty, distance float64) {
	dx := tx - pos.X
	dy := ty - pos.Y
	d := utils.Distance(pos.X, pos.Y, tx, ty)
	if d == 0 {
		d = 1
	}
	pos.X += dx / d * distance
	pos.Y += dy / d * distance
}

// moveAlong сдвигает позицию вдоль угла
func moveAlong(pos *component.Position, angle, distance float64) {
	pos.X += math.Cos(angle) * distance
	pos.Y += math.Sin(angle) * distance
}

// clampToMap возвращает позицию в границы карты
func clampToMap(pos *component.Position, m *arena.Map) {
	pos.X, pos.Y = m.Clamp(pos.X, pos.Y)
}
