// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	GridColor       color.RGBA
	WallColor       color.RGBA
	SiteFillColor   color.RGBA
	SiteStrokeColor color.RGBA
	SiteTextColor   color.RGBA
	StrokeWidth     float32
}

// EntityColors: цвета динамических объектов
type EntityColors struct {
	PlayerColor    color.RGBA
	PlayerFacing   color.RGBA
	EnemyColor     color.RGBA
	EnemyFacing    color.RGBA
	SmokeColor     color.RGBA
	BulletColor    color.RGBA
	SpikeColor     color.RGBA
	SpikeTextColor color.RGBA
	CrosshairColor color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha возвращает цвет с заменённой прозрачностью, 0..1
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	a := uint8(float64(c.A) * alpha)
	// ebiten ждёт premultiplied alpha
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}
