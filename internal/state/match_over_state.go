// internal/state/match_over_state.go
package state

import (
	"fmt"

	"go-spike-rush/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*MatchOverState)(nil)

// MatchOverState: итог матча поверх последнего кадра
type MatchOverState struct {
	sm       *StateMachine
	previous *GameState
}

func NewMatchOverState(sm *StateMachine, previous *GameState) *MatchOverState {
	return &MatchOverState{sm: sm, previous: previous}
}

func (s *MatchOverState) Enter() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (s *MatchOverState) Update(deltaTime float64) {
	s.previous.toast.Update(deltaTime)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.sm.SetState(NewGameState(s.sm, s.previous.settings))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.previous.settings))
	}
}

func (s *MatchOverState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)

	round := s.previous.Game().World.Round
	lines := []string{
		"MATCH OVER",
		fmt.Sprintf("Rounds won: %d   lost: %d", round.Wins, round.Losses),
		"Space: play again   Esc: menu",
	}
	y := config.ScreenHeight/2 - 30
	for _, line := range lines {
		bounds := text.BoundString(basicfont.Face7x13, line)
		text.Draw(screen, line, basicfont.Face7x13, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
		y += 24
	}
}

func (s *MatchOverState) Exit() {}
