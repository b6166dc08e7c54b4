// internal/ui/toast.go
package ui

import (
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Toast показывает одно сообщение внизу экрана. Новое сообщение
// заменяет текущее.
type Toast struct {
	fontFace font.Face
	text     string
	timer    float64
}

var _ interfaces.ToastSink = (*Toast)(nil)

func NewToast(face font.Face) *Toast {
	return &Toast{fontFace: face}
}

func (t *Toast) ShowToast(text string, duration float64) {
	t.text = text
	t.timer = duration
}

// Update отсчитывает время показа по реальному времени кадра
func (t *Toast) Update(deltaTime float64) {
	if t.timer > 0 {
		t.timer -= deltaTime
	}
}

func (t *Toast) Visible() bool {
	return t.timer > 0 && t.text != ""
}

func (t *Toast) Draw(screen *ebiten.Image) {
	if !t.Visible() {
		return
	}
	bounds := text.BoundString(t.fontFace, t.text)
	w := bounds.Dx() + 24
	h := 28
	x := (config.ScreenWidth - w) / 2
	y := config.ScreenHeight - 80
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), config.ToastColor, false)
	text.Draw(screen, t.text, t.fontFace, x+12, y+h/2+bounds.Dy()/2, config.TextLightColor)
}
