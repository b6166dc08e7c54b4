// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-spike-rush/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	healthBarWidth  = 180
	healthBarHeight = 10
	healthBarGap    = 4
)

// PlayerHealthIndicator отображает здоровье и броню игрока двумя полосами.
type PlayerHealthIndicator struct {
	X, Y float32
	Font font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Font: face}
}

// Draw рисует полосы: здоровье сверху, броня под ним.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, armor float64) {
	i.drawBar(screen, i.Y, health/config.PlayerMaxHealth, config.BodyHitColor)
	i.drawBar(screen, i.Y+healthBarHeight+healthBarGap, armor/config.MaxArmor, config.SmokeColor)

	label := fmt.Sprintf("%.0f HP  %.0f AR", health, armor)
	text.Draw(screen, label, i.Font, int(i.X)+healthBarWidth+8, int(i.Y)+healthBarHeight, config.TextLightColor)
}

func (i *PlayerHealthIndicator) drawBar(screen *ebiten.Image, y float32, ratio float64, fill color.RGBA) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	vector.DrawFilledRect(screen, i.X, y, healthBarWidth, healthBarHeight, config.PanelColor, false)
	vector.DrawFilledRect(screen, i.X, y, float32(healthBarWidth*ratio), healthBarHeight, fill, false)
	vector.StrokeRect(screen, i.X, y, healthBarWidth, healthBarHeight, 1, config.GridColor, false)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	return healthBarHeight*2 + healthBarGap
}
