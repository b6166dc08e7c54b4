// internal/app/game.go
package app

import (
	"fmt"
	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/defs"
	"go-spike-rush/internal/entity"
	"go-spike-rush/internal/event"
	"go-spike-rush/internal/input"
	"go-spike-rush/internal/interfaces"
	"go-spike-rush/internal/system"
	"go-spike-rush/internal/utils"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
)

// Game holds the simulation state and the systems that advance it.
type Game struct {
	World    *entity.World
	Events   *event.Dispatcher
	MatchID  string
	Settings config.Settings

	VisualEffectSystem *system.VisualEffectSystem
	CombatSystem       *system.CombatSystem
	WeaponSystem       *system.WeaponSystem
	ProjectileSystem   *system.ProjectileSystem
	EnemyAISystem      *system.EnemyAISystem
	RoundSystem        *system.RoundSystem
	SpikeSystem        *system.SpikeSystem
	PlayerSystem       *system.PlayerSystem

	isPaused  bool
	viewW     float64
	viewH     float64
	camX      float64
	camY      float64
	pointerX  float64
	pointerY  float64
	crosshair int

	hudSink   interfaces.HUDSink
	toastSink interfaces.ToastSink
}

// NewGame создает матч с генератором от сида из настроек.
// Нулевой сид означает сид от текущего времени.
func NewGame(settings config.Settings) *Game {
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("new match, seed %d", seed)
	return NewGameWithRandom(settings, utils.NewPRNGService(seed), utils.NewPRNGService(seed+1))
}

// NewGameWithRandom собирает матч с явными источниками случайности:
// rng для геймплея, fx для косметических частиц.
func NewGameWithRandom(settings config.Settings, rng, fx utils.RandomSource) *Game {
	if rng == nil || fx == nil {
		panic("random sources cannot be nil")
	}
	if settings.MaxRounds < 1 {
		settings.MaxRounds = config.MaxRounds
	}

	world := entity.NewWorld(defs.DefaultMap(), settings.MaxRounds)
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		World:    world,
		Events:   eventDispatcher,
		MatchID:  uuid.NewString(),
		Settings: settings,
		viewW:    config.ScreenWidth,
		viewH:    config.ScreenHeight,
	}
	g.VisualEffectSystem = system.NewVisualEffectSystem(world, fx)
	g.CombatSystem = system.NewCombatSystem(world, g.VisualEffectSystem, eventDispatcher)
	g.WeaponSystem = system.NewWeaponSystem(world, rng, g.VisualEffectSystem, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(world, g.CombatSystem)
	g.EnemyAISystem = system.NewEnemyAISystem(world, rng, g.WeaponSystem)
	g.RoundSystem = system.NewRoundSystem(world, rng, g.VisualEffectSystem, g.ProjectileSystem, eventDispatcher, g.MatchID)
	g.SpikeSystem = system.NewSpikeSystem(world, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(world, g.WeaponSystem, g.VisualEffectSystem, g.SpikeSystem, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.Toast, listener)
	eventDispatcher.Subscribe(event.ReloadStarted, listener)
	eventDispatcher.Subscribe(event.ReloadFinished, listener)

	g.RoundSystem.StartMatch()
	g.updateCamera()
	return g
}

// GameEventListener переводит события ядра в уведомления для фронтенда.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.Toast:
		if data, ok := e.Data.(event.ToastData); ok && l.game.toastSink != nil {
			l.game.toastSink.ShowToast(data.Text, data.Duration)
		}
	case event.ReloadStarted:
		if data, ok := e.Data.(event.ReloadData); ok && data.Owner == component.KindPlayer {
			l.game.Events.Toast("Reloading...", config.DefaultToastTime)
		}
	case event.ReloadFinished:
		if data, ok := e.Data.(event.ReloadData); ok && data.Owner == component.KindPlayer {
			l.game.Events.Toast("Reloaded", config.ShortToastTime)
		}
	}
}

// Step продвигает симуляцию на один кадр. Порядок систем фиксирован.
func (g *Game) Step(deltaTime float64, in input.Snapshot) {
	g.handleMeta(in)
	if g.isPaused {
		return
	}
	dt := math.Max(0, math.Min(deltaTime, config.MaxDeltaTime))
	w := g.World

	w.Time += dt
	g.WeaponSystem.ProcessRecoil()
	g.RoundSystem.Update(dt)

	phase := w.Phase()
	if phase == component.BuyPhase || phase.Gameplay() {
		g.WeaponSystem.Update(dt)
		g.PlayerSystem.Update(dt, in, g.camX, g.camY)
	}
	if w.Phase().Gameplay() {
		g.EnemyAISystem.Update(dt)
		g.ProjectileSystem.Update(dt)
	}
	g.VisualEffectSystem.Update(dt)
	g.SpikeSystem.Update(dt)

	g.updateCamera()
	if g.hudSink != nil {
		g.hudSink.UpdateHUD(g.HUD())
	}
}

// handleMeta обрабатывает клавиши, которые работают и на паузе
func (g *Game) handleMeta(in input.Snapshot) {
	g.pointerX, g.pointerY = in.PointerX, in.PointerY
	if in.Pressed(input.Pause) {
		g.TogglePause()
	}
	for i, a := range []input.Action{input.Crosshair1, input.Crosshair2, input.Crosshair3} {
		if in.Pressed(a) {
			g.crosshair = i
		}
	}
	if !g.isPaused && in.Pressed(input.ToggleBuy) {
		g.CloseBuyMenu()
	}
}

func (g *Game) updateCamera() {
	p := g.World.Player
	if p == nil {
		return
	}
	m := g.World.Map
	g.camX = utils.Clamp(p.X-g.viewW/2, 0, math.Max(0, m.Width-g.viewW))
	g.camY = utils.Clamp(p.Y-g.viewH/2, 0, math.Max(0, m.Height-g.viewH))
}

// Camera: левый верхний угол видимой области в мировых координатах
func (g *Game) Camera() (float64, float64) {
	return g.camX, g.camY
}

// SetViewport задаёт размер экрана в пикселях
func (g *Game) SetViewport(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	g.viewW, g.viewH = width, height
	g.updateCamera()
}

// AimAngle: текущий угол прицела игрока
func (g *Game) AimAngle() float64 {
	p := g.World.Player
	if p == nil {
		return 0
	}
	return math.Atan2(g.pointerY-(p.Y-g.camY), g.pointerX-(p.X-g.camX))
}

func (g *Game) TogglePause() {
	g.SetPaused(!g.isPaused)
}

func (g *Game) SetPaused(paused bool) {
	g.isPaused = paused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

// CrosshairPreset: выбранный стиль прицела (0..2)
func (g *Game) CrosshairPreset() int {
	return g.crosshair
}

func (g *Game) SetHUDSink(sink interfaces.HUDSink) {
	g.hudSink = sink
}

func (g *Game) SetToastSink(sink interfaces.ToastSink) {
	g.toastSink = sink
}

// HUD собирает снимок для текстового HUD
func (g *Game) HUD() interfaces.HUDState {
	r := g.World.Round
	state := interfaces.HUDState{
		Credits:   r.Credits,
		Round:     r.Round,
		MaxRounds: r.MaxRounds,
		Phase:     r.Phase.String(),
		Spike:     g.SpikeSystem.Status(),
	}
	if p := g.World.Player; p != nil {
		state.Credits = p.Credits
		state.Health = p.Health
		state.Armor = p.Armor
		state.DashTimer = p.Dash.Timer
		state.SmokeTimer = p.Smoke.Timer
		if p.Weapon != nil {
			state.Weapon = p.Weapon.Name()
			state.Mag = p.Weapon.Mag
			state.Reserve = p.Weapon.Reserve
			state.Reloading = p.Weapon.Reloading()
		}
	}
	return state
}

// Render передаёт мир отрисовщику слоями снизу вверх
func (g *Game) Render(r interfaces.Renderer) {
	w := g.World
	r.BeginFrame(g.camX, g.camY)
	r.DrawMap(w.Map)
	r.DrawSpike(w.Spike)
	for _, s := range w.Smokes {
		r.DrawSmoke(s)
	}
	for _, p := range w.Projectiles {
		if p.Alive {
			r.DrawProjectile(p)
		}
	}
	for _, e := range w.Enemies {
		if e.Alive {
			r.DrawEnemy(e)
		}
	}
	if p := w.Player; p != nil && p.Alive {
		r.DrawPlayer(p, g.AimAngle())
	}
	for _, p := range w.Particles {
		r.DrawParticle(p)
	}
	r.DrawCrosshair(g.pointerX, g.pointerY, g.crosshair)
}

// BuyWeapon покупает оружие в фазе покупки. Неизвестное имя: ошибка
// каталога и приводит к панике; нехватка кредитов отклоняется с тостом.
func (g *Game) BuyWeapon(name string) bool {
	def, err := defs.LookupWeapon(name)
	if err != nil {
		panic(err)
	}
	p, ok := g.buyer()
	if !ok {
		return false
	}
	if p.Credits < def.Cost {
		g.Events.Toast("Not enough credits", config.DefaultToastTime)
		return false
	}
	p.Credits -= def.Cost
	g.World.Round.Credits = p.Credits
	p.Weapon = component.MustWeapon(name)
	g.Events.Toast(fmt.Sprintf("Bought %s", name), config.DefaultToastTime)
	return true
}

// BuyArmor покупает броню; значение брони заменяется, а не складывается
func (g *Game) BuyArmor(id string) bool {
	def, found := defs.ArmorLibrary[id]
	if !found {
		panic(fmt.Errorf("unknown armor %q", id))
	}
	p, ok := g.buyer()
	if !ok {
		return false
	}
	if p.Credits < def.Cost {
		g.Events.Toast("Not enough credits", config.DefaultToastTime)
		return false
	}
	p.Credits -= def.Cost
	g.World.Round.Credits = p.Credits
	p.Armor = math.Min(float64(def.Value), config.MaxArmor)
	g.Events.Toast(fmt.Sprintf("Bought %s", def.Name), config.DefaultToastTime)
	return true
}

func (g *Game) buyer() (*component.Player, bool) {
	p := g.World.Player
	if p == nil || g.World.Phase() != component.BuyPhase {
		g.Events.Toast("Buy phase is over", config.DefaultToastTime)
		return nil, false
	}
	return p, true
}

// CloseBuyMenu закрывает меню; бой начнётся в следующем шаге
func (g *Game) CloseBuyMenu() {
	g.RoundSystem.DismissBuyMenu()
}

// BuyMenuOpen: показывать ли меню покупки
func (g *Game) BuyMenuOpen() bool {
	r := g.World.Round
	return r.Phase == component.BuyPhase && r.BuyMenuOpen
}

var _ interfaces.Purchaser = (*Game)(nil)
