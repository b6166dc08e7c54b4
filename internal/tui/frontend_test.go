package tui

import (
	"testing"
	"time"

	"go-spike-rush/internal/component"
	"go-spike-rush/internal/config"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 32

func newTestFrontend(t *testing.T, maxRounds int) *Frontend {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	settings := config.DefaultSettings()
	settings.Seed = 1
	settings.MaxRounds = maxRounds
	return NewFrontend(screen, settings)
}

func TestFrontendFollowsRoundEvents(t *testing.T) {
	f := newTestFrontend(t, 2)
	g := f.game
	g.CloseBuyMenu()
	f.update(frame)
	require.Equal(t, component.LivePhase, g.World.Phase())

	g.CombatSystem.ApplyDamage(&g.World.Player.Body, 1000)
	assert.Equal(t, " ROUND 1 LOST: player eliminated", f.roundResult)

	for i := 0; i < 45; i++ {
		f.update(frame)
	}
	assert.Empty(t, f.roundResult, "cleared when the next round starts")
	assert.False(t, f.matchOver)
}

func TestFrontendMatchOverAndRestart(t *testing.T) {
	f := newTestFrontend(t, 1)
	g := f.game
	g.CloseBuyMenu()
	f.update(frame)
	g.CombatSystem.ApplyDamage(&g.World.Player.Body, 1000)

	for i := 0; i < 45; i++ {
		f.update(frame)
	}
	require.True(t, f.matchOver)

	assert.True(t, f.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.NotSame(t, g, f.game)
	assert.False(t, f.matchOver)
	assert.Equal(t, component.BuyPhase, f.game.World.Phase())
}

func TestRunReturnsWhenScreenCloses(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	f := NewFrontend(screen, config.DefaultSettings())

	done := make(chan struct{})
	go func() {
		f.Run()
		close(done)
	}()

	screen.Fini() // PollEvent отдает nil
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the screen closed")
	}
}
