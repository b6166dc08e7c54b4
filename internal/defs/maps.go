// internal/defs/maps.go
package defs

import (
	"go-spike-rush/internal/config"
	"go-spike-rush/pkg/arena"
)

const wallThickness = 20.0

// DefaultMap собирает карту матча: внешние стены, укрытия и два сайта
func DefaultMap() *arena.Map {
	w, h := config.MapWidth, config.MapHeight
	walls := []arena.Rect{
		// внешний контур
		{X: 0, Y: 0, W: w, H: wallThickness},
		{X: 0, Y: h - wallThickness, W: w, H: wallThickness},
		{X: 0, Y: 0, W: wallThickness, H: h},
		{X: w - wallThickness, Y: 0, W: wallThickness, H: h},
		// укрытия
		{X: 300, Y: 200, W: 260, H: 40},
		{X: 620, Y: 300, W: 40, H: 280},
		{X: 950, Y: 180, W: 280, H: 40},
		{X: 1200, Y: 540, W: 40, H: 280},
		{X: 1500, Y: 300, W: 300, H: 40},
		{X: 1500, Y: 700, W: 300, H: 40},
		{X: 800, Y: 800, W: 260, H: 40},
	}
	sites := []arena.Site{
		{Name: "A", Rect: arena.Rect{X: 420, Y: 460, W: 200, H: 160}},
		{Name: "B", Rect: arena.Rect{X: 1520, Y: 520, W: 220, H: 180}},
	}
	return arena.NewMap(w, h, walls, sites)
}
