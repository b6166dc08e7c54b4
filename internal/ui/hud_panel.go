// internal/ui/hud_panel.go
package ui

import (
	"fmt"

	"go-spike-rush/internal/config"
	"go-spike-rush/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelWidth   = 300
	panelMargin  = 10
	lineHeight   = 16
	panelPadding = 8
)

// HUDPanel: текстовый HUD в левом верхнем углу. Получает состояние
// от игры в конце каждого шага и рисует последний снимок.
type HUDPanel struct {
	fontFace font.Face
	state    interfaces.HUDState
	health   *PlayerHealthIndicator
}

var _ interfaces.HUDSink = (*HUDPanel)(nil)

func NewHUDPanel(face font.Face) *HUDPanel {
	return &HUDPanel{
		fontFace: face,
		health:   NewPlayerHealthIndicator(panelMargin+panelPadding, 0, face),
	}
}

func (p *HUDPanel) UpdateHUD(state interfaces.HUDState) {
	p.state = state
}

// Lines: строки HUD в порядке вывода
func (p *HUDPanel) Lines() []string {
	s := p.state
	ammo := fmt.Sprintf("%s  %d / %d", s.Weapon, s.Mag, s.Reserve)
	if s.Reloading {
		ammo += "  (reloading)"
	}
	return []string{
		ammo,
		fmt.Sprintf("Credits: %d", s.Credits),
		fmt.Sprintf("Round %d / %d  %s", s.Round, s.MaxRounds, s.Phase),
		s.Spike,
		fmt.Sprintf("Dash: %s  Smoke: %s", cooldownLabel(s.DashTimer), cooldownLabel(s.SmokeTimer)),
	}
}

func cooldownLabel(timer float64) string {
	if timer <= 0 {
		return "ready"
	}
	return fmt.Sprintf("%.1fs", timer)
}

func (p *HUDPanel) Draw(screen *ebiten.Image) {
	lines := p.Lines()
	height := panelPadding*3 + len(lines)*lineHeight + int(p.health.GetHeight())
	vector.DrawFilledRect(screen, panelMargin, panelMargin, panelWidth, float32(height), config.PanelColor, false)

	y := panelMargin + panelPadding + lineHeight - 4
	for _, line := range lines {
		text.Draw(screen, line, p.fontFace, panelMargin+panelPadding, y, config.TextLightColor)
		y += lineHeight
	}
	p.health.Y = float32(y)
	p.health.Draw(screen, p.state.Health, p.state.Armor)
}
