// internal/tui/renderer.go
package tui

import (
	"fmt"
	"image/color"
	"math"

	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/interfaces"
	"go-spike-rush/pkg/arena"

	"github.com/gdamore/tcell/v2"
)

// Размер клетки терминала в мировых единицах. Символ примерно вдвое
// выше своей ширины.
const (
	CellWidth  = 16.0
	CellHeight = 32.0
)

var _ interfaces.Renderer = (*Renderer)(nil)

// Renderer рисует мир символами в tcell.Screen. Первая строка
// экрана занята HUD, поэтому мир смещён на одну строку вниз.
type Renderer struct {
	screen tcell.Screen
	camX   float64
	camY   float64
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// toCell переводит мировые координаты в клетку экрана
func (r *Renderer) toCell(x, y float64) (int, int) {
	return int(math.Floor((x - r.camX) / CellWidth)), int(math.Floor((y-r.camY)/CellHeight)) + hudRows
}

func (r *Renderer) put(x, y float64, ch rune, st tcell.Style) {
	cx, cy := r.toCell(x, y)
	w, h := r.screen.Size()
	if cx < 0 || cy < hudRows || cx >= w || cy >= h-footerRows {
		return
	}
	r.screen.SetContent(cx, cy, ch, nil, st)
}

func (r *Renderer) BeginFrame(camX, camY float64) {
	r.camX, r.camY = camX, camY
	r.screen.Clear()
}

func (r *Renderer) DrawMap(m *arena.Map) {
	w, h := r.screen.Size()
	wallStyle := style(config.WallColor).Background(tcell.NewRGBColor(int32(config.WallColor.R), int32(config.WallColor.G), int32(config.WallColor.B)))
	siteStyle := style(config.SiteTextColor)
	for cy := hudRows; cy < h-footerRows; cy++ {
		for cx := 0; cx < w; cx++ {
			// центр клетки в мире
			wx := r.camX + (float64(cx)+0.5)*CellWidth
			wy := r.camY + (float64(cy-hudRows)+0.5)*CellHeight
			switch {
			case !m.InBounds(wx, wy):
				continue
			case m.InWall(wx, wy):
				r.screen.SetContent(cx, cy, '█', nil, wallStyle)
			default:
				if site, ok := m.SiteAt(wx, wy); ok {
					ch := '·'
					if sx, sy := r.toCell(site.X+CellWidth, site.Y+CellHeight/2); sx == cx && sy == cy {
						ch = []rune(site.Name)[0]
					}
					r.screen.SetContent(cx, cy, ch, nil, siteStyle)
				}
			}
		}
	}
}

func (r *Renderer) DrawSpike(spike *component.Spike) {
	if !spike.Planted || spike.Site == nil {
		return
	}
	cx, cy := spike.Site.Center()
	r.put(cx, cy, '!', style(config.SpikeColor).Bold(true))
}

func (r *Renderer) DrawSmoke(s *component.Smoke) {
	if !s.Alive() {
		return
	}
	st := style(config.SmokeColor)
	for y := s.Y - s.Radius; y <= s.Y+s.Radius; y += CellHeight {
		for x := s.X - s.Radius; x <= s.X+s.Radius; x += CellWidth {
			if s.Contains(x, y) {
				r.put(x, y, '░', st)
			}
		}
	}
}

func (r *Renderer) DrawProjectile(p *component.Projectile) {
	r.put(p.X, p.Y, '•', style(config.BulletColor))
}

func (r *Renderer) DrawEnemy(e *component.Enemy) {
	ch := 'E'
	if e.State == component.AIChase {
		ch = 'X'
	}
	r.put(e.X, e.Y, ch, style(config.EnemyColor).Bold(true))
}

func (r *Renderer) DrawPlayer(p *component.Player, aim float64) {
	r.put(p.X, p.Y, '@', style(config.PlayerColor).Bold(true))
	r.put(p.X+math.Cos(aim)*CellWidth*1.5, p.Y+math.Sin(aim)*CellHeight, '·', style(config.PlayerFacing))
}

func (r *Renderer) DrawParticle(p *component.Particle) {
	r.put(p.X, p.Y, '.', style(p.Color))
}

// DrawCrosshair получает координаты в пикселях вьюпорта
func (r *Renderer) DrawCrosshair(x, y float64, preset int) {
	marks := []rune{'+', '·', 'o'}
	if preset < 0 || preset >= len(marks) {
		preset = 0
	}
	r.put(x+r.camX, y+r.camY, marks[preset], style(config.CrosshairColor))
}

// DrawText пишет строку начиная с клетки (x, y)
func DrawText(screen tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, st)
		x++
	}
}

// DrawHUD рисует строку состояния сверху
func DrawHUD(screen tcell.Screen, s interfaces.HUDState) {
	line := fmt.Sprintf(" %s %d/%d | HP %.0f AR %.0f | $%d | Round %d/%d %s | %s",
		s.Weapon, s.Mag, s.Reserve, s.Health, s.Armor, s.Credits, s.Round, s.MaxRounds, s.Phase, s.Spike)
	if s.Reloading {
		line += " | reloading"
	}
	DrawText(screen, 0, 0, line, style(config.TextLightColor).Reverse(true))
}
