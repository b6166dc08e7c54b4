// internal/state/menu_state.go
package state

import (
	"image"

	"go-spike-rush/internal/config"
	"go-spike-rush/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState: стартовый экран
type MenuState struct {
	sm       *StateMachine
	settings config.Settings
	start    *ui.Button
}

func NewMenuState(sm *StateMachine, settings config.Settings) *MenuState {
	x := config.ScreenWidth/2 - 100
	y := config.ScreenHeight / 2
	return &MenuState{
		sm:       sm,
		settings: settings,
		start:    ui.NewButton(image.Rect(x, y, x+200, y+40), "Start (Space)", basicfont.Face7x13),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	clicked := false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		clicked = m.start.Contains(ebiten.CursorPosition())
	}
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.settings))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := "SPIKE RUSH"
	bounds := text.BoundString(basicfont.Face7x13, title)
	text.Draw(screen, title, basicfont.Face7x13, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-60, config.TextLightColor)
	x, y := ebiten.CursorPosition()
	m.start.Draw(screen, x, y)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
