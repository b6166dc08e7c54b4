package render

import (
	"fmt"
	"math"

	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/interfaces"
	"go-spike-rush/pkg/arena"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var _ interfaces.Renderer = (*WorldRenderer)(nil)

// WorldRenderer рисует мир поверх ebiten.Image. Статическая карта
// рисуется один раз в mapImage, а каждый кадр копируется со сдвигом камеры.
type WorldRenderer struct {
	screen    *ebiten.Image
	mapImage  *ebiten.Image
	mapSource *arena.Map
	fontFace  font.Face
	mapColors *MapColors
	colors    *EntityColors
	camX      float32
	camY      float32
}

func NewWorldRenderer(fontFace font.Face, mapColors *MapColors, colors *EntityColors) *WorldRenderer {
	return &WorldRenderer{
		fontFace:  fontFace,
		mapColors: mapColors,
		colors:    colors,
	}
}

// SetTarget задаёт изображение, в которое рисуется следующий кадр
func (r *WorldRenderer) SetTarget(screen *ebiten.Image) {
	r.screen = screen
}

func (r *WorldRenderer) BeginFrame(camX, camY float64) {
	r.camX, r.camY = float32(camX), float32(camY)
	r.screen.Fill(r.mapColors.BackgroundColor)
}

// RenderMapImage перерисовывает статическую карту
func (r *WorldRenderer) RenderMapImage(m *arena.Map) {
	r.mapSource = m
	r.mapImage = ebiten.NewImage(int(m.Width), int(m.Height))
	r.mapImage.Fill(r.mapColors.BackgroundColor)

	for x := 0.0; x <= m.Width; x += config.GridSize {
		vector.StrokeLine(r.mapImage, float32(x), 0, float32(x), float32(m.Height), 1, r.mapColors.GridColor, false)
	}
	for y := 0.0; y <= m.Height; y += config.GridSize {
		vector.StrokeLine(r.mapImage, 0, float32(y), float32(m.Width), float32(y), 1, r.mapColors.GridColor, false)
	}
	for _, w := range m.Walls {
		vector.DrawFilledRect(r.mapImage, float32(w.X), float32(w.Y), float32(w.W), float32(w.H), r.mapColors.WallColor, false)
	}
	for _, s := range m.Sites {
		vector.DrawFilledRect(r.mapImage, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), r.mapColors.SiteFillColor, false)
		vector.StrokeRect(r.mapImage, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), r.mapColors.StrokeWidth, r.mapColors.SiteStrokeColor, false)
		label := "SITE " + s.Name
		text.Draw(r.mapImage, label, r.fontFace, int(s.X)+8, int(s.Y)+18, r.mapColors.SiteTextColor)
	}
}

func (r *WorldRenderer) DrawMap(m *arena.Map) {
	if r.mapImage == nil || r.mapSource != m {
		r.RenderMapImage(m)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(-r.camX), float64(-r.camY))
	r.screen.DrawImage(r.mapImage, op)
}

func (r *WorldRenderer) DrawSpike(spike *component.Spike) {
	if !spike.Planted || spike.Site == nil {
		return
	}
	cx, cy := spike.Site.Center()
	x, y := r.toScreen(cx, cy)
	vector.DrawFilledCircle(r.screen, x, y, 10, r.colors.SpikeColor, true)
	label := fmt.Sprintf("%.0fs", math.Max(0, spike.Timer))
	text.Draw(r.screen, label, r.fontFace, int(x)-10, int(y)-16, r.colors.SpikeTextColor)
}

func (r *WorldRenderer) DrawSmoke(s *component.Smoke) {
	if !s.Alive() {
		return
	}
	x, y := r.toScreen(s.X, s.Y)
	alpha := 0.35 * s.Timer / s.Lifetime
	vector.DrawFilledCircle(r.screen, x, y, float32(s.Radius), WithAlpha(r.colors.SmokeColor, alpha), true)
}

func (r *WorldRenderer) DrawProjectile(p *component.Projectile) {
	x, y := r.toScreen(p.X, p.Y)
	vector.DrawFilledCircle(r.screen, x, y, config.ProjectileRadius, WithAlpha(r.colors.BulletColor, p.Falloff), true)
}

func (r *WorldRenderer) DrawEnemy(e *component.Enemy) {
	x, y := r.toScreen(e.X, e.Y)
	clr := r.colors.EnemyColor
	if e.State == component.AISmoked {
		clr = DarkenColor(clr)
	}
	vector.DrawFilledCircle(r.screen, x, y, float32(e.Radius), clr, true)
	r.drawHealthBar(x, y, e.Radius, e.Health/e.MaxHealth)
}

func (r *WorldRenderer) DrawPlayer(p *component.Player, aim float64) {
	x, y := r.toScreen(p.X, p.Y)
	vector.DrawFilledCircle(r.screen, x, y, float32(p.Radius), r.colors.PlayerColor, true)
	// ствол
	bx := x + float32(math.Cos(aim)*(p.Radius+10))
	by := y + float32(math.Sin(aim)*(p.Radius+10))
	vector.StrokeLine(r.screen, x, y, bx, by, 3, r.colors.PlayerFacing, true)
}

func (r *WorldRenderer) DrawParticle(p *component.Particle) {
	x, y := r.toScreen(p.X, p.Y)
	vector.DrawFilledRect(r.screen, x-1, y-1, 2, 2, WithAlpha(p.Color, p.Life/(config.ParticleMinLife+config.ParticleLifeVar)), false)
}

// DrawCrosshair рисует прицел в экранных координатах; пресеты 0..2
func (r *WorldRenderer) DrawCrosshair(x, y float64, preset int) {
	cx, cy := float32(x), float32(y)
	clr := r.colors.CrosshairColor
	switch preset {
	case 1:
		vector.DrawFilledCircle(r.screen, cx, cy, 2, clr, true)
	case 2:
		vector.StrokeCircle(r.screen, cx, cy, 8, 1.5, clr, true)
		vector.DrawFilledCircle(r.screen, cx, cy, 1.5, clr, true)
	default:
		const gap, size = 4, 8
		vector.StrokeLine(r.screen, cx-gap-size, cy, cx-gap, cy, 2, clr, true)
		vector.StrokeLine(r.screen, cx+gap, cy, cx+gap+size, cy, 2, clr, true)
		vector.StrokeLine(r.screen, cx, cy-gap-size, cx, cy-gap, 2, clr, true)
		vector.StrokeLine(r.screen, cx, cy+gap, cx, cy+gap+size, 2, clr, true)
	}
}

func (r *WorldRenderer) drawHealthBar(x, y float32, radius, ratio float64) {
	const w, h = 28, 4
	top := y - float32(radius) - 10
	vector.DrawFilledRect(r.screen, x-w/2, top, w, h, DarkenColor(r.colors.EnemyColor), false)
	vector.DrawFilledRect(r.screen, x-w/2, top, float32(w*math.Max(0, ratio)), h, r.colors.EnemyFacing, false)
}

func (r *WorldRenderer) toScreen(x, y float64) (float32, float32) {
	return float32(x) - r.camX, float32(y) - r.camY
}
