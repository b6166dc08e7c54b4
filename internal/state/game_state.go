// internal/state/game_state.go
package state

import (
	"go-spike-rush/internal/app"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/event"
	"go-spike-rush/internal/ui"
	"go-spike-rush/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GameState: состояние игры
type GameState struct {
	sm             *StateMachine
	game           *app.Game
	settings       config.Settings
	fontFace       font.Face
	renderer       *render.WorldRenderer
	hud            *ui.HUDPanel
	toast          *ui.Toast
	buyMenu        *ui.BuyMenu
	indicator      *ui.StateIndicator
	roundIndicator *ui.RoundIndicator
	pauseButton    *ui.PauseButton
	matchEnded     bool
}

// gameStateEvents: события ядра, на которые реагирует экран матча
var gameStateEvents = []event.EventType{
	event.RoundStarted,
	event.RoundLive,
	event.RoundEnded,
	event.SpikePlanted,
	event.MatchEnded,
}

func NewGameState(sm *StateMachine, settings config.Settings) *GameState {
	face := basicfont.Face7x13
	gameLogic := app.NewGame(settings)

	// Создаем и заполняем структуры с цветами для рендерера
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GridColor:       config.GridColor,
		WallColor:       config.WallColor,
		SiteFillColor:   config.SiteFillColor,
		SiteStrokeColor: config.SiteStrokeColor,
		SiteTextColor:   config.SiteTextColor,
		StrokeWidth:     2,
	}
	entityColors := &render.EntityColors{
		PlayerColor:    config.PlayerColor,
		PlayerFacing:   config.PlayerFacing,
		EnemyColor:     config.EnemyColor,
		EnemyFacing:    config.EnemyFacing,
		SmokeColor:     config.SmokeColor,
		BulletColor:    config.BulletColor,
		SpikeColor:     config.SpikeColor,
		SpikeTextColor: config.SpikeTextColor,
		CrosshairColor: config.CrosshairColor,
	}
	renderer := render.NewWorldRenderer(face, mapColors, entityColors)
	renderer.RenderMapImage(gameLogic.World.Map)

	gs := &GameState{
		sm:             sm,
		game:           gameLogic,
		settings:       settings,
		fontFace:       face,
		renderer:       renderer,
		hud:            ui.NewHUDPanel(face),
		toast:          ui.NewToast(face),
		buyMenu:        ui.NewBuyMenu(face),
		indicator:      ui.NewStateIndicator(config.ScreenWidth-30, 30, 12),
		roundIndicator: ui.NewRoundIndicator(config.ScreenWidth/2, 28, face),
		pauseButton:    ui.NewPauseButton(config.ScreenWidth-70, 30, 12),
	}
	gameLogic.SetHUDSink(gs.hud)
	gameLogic.SetToastSink(gs.toast)
	gameLogic.SetViewport(config.ScreenWidth, config.ScreenHeight)
	gs.hud.UpdateHUD(gameLogic.HUD())
	return gs
}

func (g *GameState) Enter() {
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	for _, t := range gameStateEvents {
		g.game.Events.Subscribe(t, g)
	}
}

// OnEvent: смена фазы подсвечивает индикатор, конец матча открывает итоги
func (g *GameState) OnEvent(e event.Event) {
	switch e.Type {
	case event.MatchEnded:
		g.matchEnded = true
	default:
		g.indicator.Pulse()
	}
}

func (g *GameState) Update(deltaTime float64) {
	g.toast.Update(deltaTime)
	snap := readSnapshot()

	// Клики по UI не превращаются в выстрел
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.handleUIClick(x, y) {
			snap.Fire = false
		}
	}
	if g.game.BuyMenuOpen() {
		snap.Fire = false
	}

	g.game.Step(deltaTime, snap)
	g.pauseButton.SetPaused(g.game.IsPaused())

	switch {
	case g.game.IsPaused():
		g.sm.SetState(NewPauseState(g.sm, g))
	case g.matchEnded:
		g.sm.SetState(NewMatchOverState(g.sm, g))
	}
}

// handleUIClick обрабатывает клики, которые попали в UI
func (g *GameState) handleUIClick(x, y int) bool {
	if g.pauseButton.IsClicked(x, y) {
		g.game.TogglePause()
		return true
	}
	if g.game.BuyMenuOpen() {
		return g.buyMenu.HandleClick(x, y, g.game)
	}
	return false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.game.Render(g.renderer)

	g.hud.Draw(screen)
	g.indicator.Draw(screen, g.game.World.Phase())
	round := g.game.World.Round
	g.roundIndicator.Draw(screen, round.Round, round.MaxRounds)
	g.pauseButton.Draw(screen)
	if g.game.BuyMenuOpen() {
		x, y := ebiten.CursorPosition()
		g.buyMenu.Draw(screen, g.game.HUD().Credits, x, y)
	}
	g.toast.Draw(screen)
}

func (g *GameState) Exit() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	for _, t := range gameStateEvents {
		g.game.Events.Unsubscribe(t, g)
	}
}

// Game отдаёт игровую логику состояниям паузы и конца матча
func (g *GameState) Game() *app.Game {
	return g.game
}
