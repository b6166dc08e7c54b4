// internal/tui/frontend.go
package tui

import (
	"fmt"
	"time"

	"go-spike-rush/internal/app"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/defs"
	"go-spike-rush/internal/event"
	"go-spike-rush/internal/input"
	"go-spike-rush/internal/interfaces"

	"github.com/gdamore/tcell/v2"
)

const (
	hudRows    = 1
	footerRows = 1
	frameTime  = 16 * time.Millisecond
)

// Frontend ведёт матч в терминале и принимает HUD и тосты ядра.
type Frontend struct {
	screen   tcell.Screen
	game     *app.Game
	settings config.Settings
	keys     *KeyState
	renderer *Renderer

	hud         interfaces.HUDState
	toastText   string
	toastTimer  float64
	roundResult string // итог раунда до начала следующего
	matchOver   bool
	lastUpdate  time.Time
}

var (
	_ interfaces.HUDSink   = (*Frontend)(nil)
	_ interfaces.ToastSink = (*Frontend)(nil)
	_ event.Listener       = (*Frontend)(nil)
)

func NewFrontend(screen tcell.Screen, settings config.Settings) *Frontend {
	f := &Frontend{
		screen:   screen,
		settings: settings,
		keys:     NewKeyState(),
		renderer: NewRenderer(screen),
	}
	f.newMatch()
	return f
}

func (f *Frontend) newMatch() {
	f.game = app.NewGame(f.settings)
	f.game.SetHUDSink(f)
	f.game.SetToastSink(f)
	f.game.Events.Subscribe(event.RoundStarted, f)
	f.game.Events.Subscribe(event.RoundEnded, f)
	f.game.Events.Subscribe(event.MatchEnded, f)
	f.roundResult = ""
	f.matchOver = false
	f.hud = f.game.HUD()
	f.resize()
}

func (f *Frontend) UpdateHUD(state interfaces.HUDState) {
	f.hud = state
}

func (f *Frontend) ShowToast(text string, duration float64) {
	f.toastText = text
	f.toastTimer = duration
}

func (f *Frontend) OnEvent(e event.Event) {
	switch e.Type {
	case event.RoundStarted:
		f.roundResult = ""
	case event.RoundEnded:
		data, ok := e.Data.(event.RoundData)
		if !ok {
			return
		}
		verdict := "LOST"
		if data.Outcome.Win() {
			verdict = "WON"
		}
		f.roundResult = fmt.Sprintf(" ROUND %d %s: %s", data.Round, verdict, data.Outcome)
	case event.MatchEnded:
		f.matchOver = true
	}
}

func (f *Frontend) resize() {
	w, h := f.screen.Size()
	rows := h - hudRows - footerRows
	if rows < 1 {
		rows = 1
	}
	f.game.SetViewport(float64(w)*CellWidth, float64(rows)*CellHeight)
}

// handleEvent возвращает false, если пользователь вышел
func (f *Frontend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'x') {
			return false
		}
		switch ev.Key() {
		case tcell.KeyEscape:
			f.keys.Trigger(input.Pause)
		case tcell.KeyUp:
			f.keys.Trigger(input.MoveUp)
		case tcell.KeyDown:
			f.keys.Trigger(input.MoveDown)
		case tcell.KeyLeft:
			f.keys.Trigger(input.MoveLeft)
		case tcell.KeyRight:
			f.keys.Trigger(input.MoveRight)
		case tcell.KeyEnter:
			if f.matchOver {
				f.newMatch()
			}
		case tcell.KeyRune:
			f.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		f.keys.PointerX = (float64(x) + 0.5) * CellWidth
		f.keys.PointerY = (float64(y-hudRows) + 0.5) * CellHeight
		buttons := ev.Buttons()
		f.keys.Fire = buttons&tcell.Button1 != 0 && !f.game.BuyMenuOpen()
		f.keys.Zoom = buttons&tcell.Button2 != 0
	case *tcell.EventResize:
		f.screen.Sync()
		f.resize()
	}
	return true
}

// handleRune: цифры в меню покупки покупают, иначе выбирают прицел
func (f *Frontend) handleRune(r rune) {
	if r >= '1' && r <= '9' {
		idx := int(r - '1')
		if f.game.BuyMenuOpen() {
			f.buy(idx)
			return
		}
		presets := []input.Action{input.Crosshair1, input.Crosshair2, input.Crosshair3}
		if idx < len(presets) {
			f.keys.Trigger(presets[idx])
		}
		return
	}
	f.keys.TriggerRune(r)
}

func (f *Frontend) buy(idx int) {
	weapons := defs.WeaponNames()
	switch {
	case idx < len(weapons):
		f.game.BuyWeapon(weapons[idx])
	case idx-len(weapons) < len(defs.ArmorIDs):
		f.game.BuyArmor(defs.ArmorIDs[idx-len(weapons)])
	}
}

// buyMenuLine: пункты меню покупки одной строкой
func buyMenuLine() string {
	line := " BUY:"
	n := 1
	for _, name := range defs.WeaponNames() {
		line += fmt.Sprintf(" [%d]%s $%d", n, name, defs.WeaponLibrary[name].Cost)
		n++
	}
	for _, id := range defs.ArmorIDs {
		a := defs.ArmorLibrary[id]
		line += fmt.Sprintf(" [%d]%s $%d", n, a.Name, a.Cost)
		n++
	}
	return line + " [b]ready"
}

func (f *Frontend) update(deltaTime float64) {
	f.game.Step(deltaTime, f.keys.Snapshot(deltaTime))
	if f.toastTimer > 0 {
		f.toastTimer -= deltaTime
	}
}

func (f *Frontend) draw() {
	f.game.Render(f.renderer)
	DrawHUD(f.screen, f.hud)

	_, h := f.screen.Size()
	footer := style(config.TextLightColor)
	switch {
	case f.matchOver:
		r := f.game.World.Round
		DrawText(f.screen, 0, h-1, fmt.Sprintf(" MATCH OVER  won %d lost %d  [Enter] again  [x] quit", r.Wins, r.Losses), footer.Bold(true))
	case f.game.IsPaused():
		DrawText(f.screen, 0, h-1, " PAUSED  [p] resume", footer.Bold(true))
	case f.roundResult != "":
		DrawText(f.screen, 0, h-1, f.roundResult, footer.Bold(true))
	case f.game.BuyMenuOpen():
		DrawText(f.screen, 0, h-1, buyMenuLine(), footer)
	case f.toastTimer > 0:
		DrawText(f.screen, 0, h-1, " "+f.toastText, footer.Bold(true))
	}
	f.screen.Show()
}

// Run крутит цикл кадров до выхода пользователя
func (f *Frontend) Run() {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(eventChan) // экран закрыт
				return
			}
			eventChan <- ev
		}
	}()

	f.lastUpdate = time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !f.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			now := time.Now()
			deltaTime := now.Sub(f.lastUpdate).Seconds()
			f.lastUpdate = now
			f.update(deltaTime)
			f.draw()
		}
	}
}
