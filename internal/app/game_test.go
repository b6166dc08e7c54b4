package app

import (
	"testing"

	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/input"
	"go-spike-rush/internal/interfaces"
	"go-spike-rush/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = 1.0 / 32

// sink запоминает всё, что ядро отдаёт фронтенду
type sink struct {
	hud    interfaces.HUDState
	frames int
	toasts []string
}

func (s *sink) UpdateHUD(state interfaces.HUDState) {
	s.hud = state
	s.frames++
}

func (s *sink) ShowToast(text string, duration float64) {
	s.toasts = append(s.toasts, text)
}

func newTestGame(t *testing.T, maxRounds int) (*Game, *sink) {
	t.Helper()
	settings := config.DefaultSettings()
	settings.MaxRounds = maxRounds
	g := NewGameWithRandom(settings, utils.NewSequenceSource(), utils.NewSequenceSource())
	s := &sink{}
	g.SetHUDSink(s)
	g.SetToastSink(s)
	return g, s
}

func pressed(a input.Action) input.Snapshot {
	var in input.Snapshot
	in.Press(a)
	return in
}

func TestNewGameStartsInBuyPhase(t *testing.T) {
	g, _ := newTestGame(t, 12)

	assert.NotEmpty(t, g.MatchID)
	assert.Equal(t, component.BuyPhase, g.World.Phase())
	assert.True(t, g.BuyMenuOpen())
	require.NotNil(t, g.World.Player)
	assert.Len(t, g.World.Enemies, config.EnemyBaseCount)
}

func TestNilRandomPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewGameWithRandom(config.DefaultSettings(), nil, utils.NewSequenceSource())
	})
}

func TestInvalidMaxRoundsFallsBack(t *testing.T) {
	g, _ := newTestGame(t, 0)
	assert.Equal(t, config.MaxRounds, g.World.Round.MaxRounds)
}

func TestBuyWeapon(t *testing.T) {
	g, s := newTestGame(t, 12)
	p := g.World.Player

	assert.False(t, g.BuyWeapon("Vandal"))
	assert.Contains(t, s.toasts, "Not enough credits")
	assert.Equal(t, config.DefaultPlayerGun, p.Weapon.Name())

	p.Credits = 2900
	require.True(t, g.BuyWeapon("Vandal"))
	assert.Equal(t, "Vandal", p.Weapon.Name())
	assert.Zero(t, p.Credits)
	assert.Zero(t, g.World.Round.Credits)
	assert.Contains(t, s.toasts, "Bought Vandal")

	assert.Panics(t, func() { g.BuyWeapon("Phantom") })
}

func TestBuyArmorReplacesValue(t *testing.T) {
	g, _ := newTestGame(t, 12)
	p := g.World.Player
	p.Credits = 2000

	require.True(t, g.BuyArmor("light"))
	assert.Equal(t, 25.0, p.Armor)
	require.True(t, g.BuyArmor("heavy"))
	assert.Equal(t, 50.0, p.Armor)
	require.True(t, g.BuyArmor("light"))
	assert.Equal(t, 25.0, p.Armor)
	assert.Equal(t, 200, p.Credits)

	assert.Panics(t, func() { g.BuyArmor("titan") })
}

func TestToggleBuyStartsRound(t *testing.T) {
	g, s := newTestGame(t, 12)

	g.Step(step, pressed(input.ToggleBuy))

	assert.Equal(t, component.LivePhase, g.World.Phase())
	assert.False(t, g.BuyMenuOpen())
	assert.Contains(t, s.toasts, "Round start")

	p := g.World.Player
	p.Credits = 5000
	assert.False(t, g.BuyWeapon("Ghost"))
	assert.Contains(t, s.toasts, "Buy phase is over")
}

func TestPauseFreezesSimulation(t *testing.T) {
	g, s := newTestGame(t, 12)

	g.Step(step, pressed(input.Pause))
	assert.True(t, g.IsPaused())
	assert.Zero(t, g.World.Time)
	assert.Zero(t, s.frames, "no HUD while paused")

	g.Step(step, input.Snapshot{})
	assert.Zero(t, g.World.Time)

	g.Step(step, pressed(input.Pause))
	assert.False(t, g.IsPaused())
	assert.Equal(t, step, g.World.Time)
}

func TestStepClampsDelta(t *testing.T) {
	g, _ := newTestGame(t, 12)

	g.Step(1.0, input.Snapshot{})
	assert.InDelta(t, config.MaxDeltaTime, g.World.Time, 1e-12)

	g.Step(-1, input.Snapshot{})
	assert.InDelta(t, config.MaxDeltaTime, g.World.Time, 1e-12)
}

func TestHUDPushedEveryStep(t *testing.T) {
	g, s := newTestGame(t, 12)

	g.Step(step, input.Snapshot{})
	g.Step(step, input.Snapshot{})

	assert.Equal(t, 2, s.frames)
	assert.Equal(t, config.DefaultPlayerGun, s.hud.Weapon)
	assert.Equal(t, 12, s.hud.Mag)
	assert.Equal(t, config.InitialCredits, s.hud.Credits)
	assert.Equal(t, "Buy", s.hud.Phase)
	assert.Equal(t, "Spike: carried", s.hud.Spike)
	assert.Equal(t, 1, s.hud.Round)
}

func TestReloadToasts(t *testing.T) {
	g, s := newTestGame(t, 12)
	g.World.Player.Weapon.Mag = 5

	g.Step(step, pressed(input.Reload))
	assert.Contains(t, s.toasts, "Reloading...")

	for i := 0; i < 48; i++ {
		g.Step(step, input.Snapshot{})
	}
	assert.Contains(t, s.toasts, "Reloaded")
	assert.Equal(t, 12, g.World.Player.Weapon.Mag)
}

func TestCameraFollowsPlayer(t *testing.T) {
	g, _ := newTestGame(t, 12)

	x, y := g.Camera()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 60.0, y)

	g.World.Player.X, g.World.Player.Y = config.MapWidth, config.MapHeight
	g.Step(step, input.Snapshot{})
	x, y = g.Camera()
	assert.Equal(t, config.MapWidth-config.ScreenWidth, x)
	assert.Equal(t, config.MapHeight-config.ScreenHeight, y)
}

func TestCrosshairPresets(t *testing.T) {
	g, _ := newTestGame(t, 12)
	g.Step(step, pressed(input.Crosshair3))
	assert.Equal(t, 2, g.CrosshairPreset())
}

func TestAimAngleFromPointer(t *testing.T) {
	g, _ := newTestGame(t, 12)
	p := g.World.Player
	camX, camY := g.Camera()

	g.Step(step, input.Snapshot{PointerX: p.X - camX + 100, PointerY: p.Y - camY})
	assert.InDelta(t, 0, g.AimAngle(), 1e-12)
}

func TestEliminationWinsAndStartsNextRound(t *testing.T) {
	g, _ := newTestGame(t, 12)
	g.CloseBuyMenu()
	g.Step(step, input.Snapshot{})
	require.Equal(t, component.LivePhase, g.World.Phase())

	for _, e := range g.World.Enemies {
		g.CombatSystem.ApplyDamage(&e.Body, 1000)
	}
	require.Equal(t, component.WinPhase, g.World.Phase())
	assert.Equal(t, 1, g.World.Round.Wins)

	for i := 0; i < 45; i++ {
		g.Step(step, input.Snapshot{})
	}
	assert.Equal(t, 2, g.World.Round.Round)
	assert.Equal(t, component.BuyPhase, g.World.Phase())
	assert.Equal(t, config.InitialCredits+config.RoundCreditBonus, g.World.Player.Credits)
}

func TestMatchOver(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.CloseBuyMenu()
	g.Step(step, input.Snapshot{})
	g.CombatSystem.ApplyDamage(&g.World.Player.Body, 1000)
	require.Equal(t, component.LosePhase, g.World.Phase())

	for i := 0; i < 45; i++ {
		g.Step(step, input.Snapshot{})
	}
	assert.Equal(t, component.MatchOverPhase, g.World.Phase())
	assert.Equal(t, 1, g.World.Round.Losses)
}
