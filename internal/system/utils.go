// internal/system/utils.go
package system

import (
	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"math"
)

// ApplyDamage наносит урон телу с учётом брони. Броня поглощает
// min(armor, 0.7*incoming), остаток снимается со здоровья.
// Возвращает поглощённую часть и признак смерти на этом ударе.
func ApplyDamage(body *component.Body, amount float64) (absorbed float64, killed bool) {
	if !body.Alive || amount <= 0 {
		return 0, false
	}

	remaining := amount
	if body.Armor > 0 {
		absorbed = math.Min(body.Armor, remaining*config.ArmorAbsorbRatio)
		body.Armor -= absorbed
		remaining -= absorbed
	}

	body.Health -= remaining
	if body.Health <= 0 {
		body.Alive = false
		return absorbed, true
	}
	return absorbed, false
}

// IsHeadshot: упрощённая одномерная проверка, попадание ближе половины
// радиуса к центру цели по оси Y считается выстрелом в голову.
func IsHeadshot(impactY float64, target *component.Body) bool {
	return math.Abs(impactY-target.Y) < target.Radius*0.5
}
