// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator: кружок цвета текущей фазы. После Pulse коротко пульсирует.
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	lastChange time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// PhaseColor: цвет фазы раунда
func PhaseColor(phase component.Phase) color.RGBA {
	switch phase {
	case component.LivePhase:
		return config.LivePhaseColor
	case component.PostPlantPhase:
		return config.PostPlantColor
	case component.WinPhase:
		return config.WinColor
	case component.LosePhase, component.MatchOverPhase:
		return config.LoseColor
	}
	return config.BuyPhaseColor
}

// Pulse запускает пульсацию, вызывается на события раунда
func (i *StateIndicator) Pulse() {
	i.lastChange = time.Now()
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.Phase) {
	elapsed := time.Since(i.lastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, config.TextLightColor, true)
}
