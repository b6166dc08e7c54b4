// cmd/game/main.go
package main

import (
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/defs"
	"go-spike-rush/internal/state"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings(".env")
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}
	if settings.WeaponsFile != "" {
		if err := defs.LoadWeaponDefinitions(settings.WeaponsFile); err != nil {
			log.Fatalf("failed to load weapons: %v", err)
		}
	}
	if err := defs.ValidateCatalog(config.DefaultPlayerGun, config.DefaultEnemyGun); err != nil {
		log.Fatalf("invalid weapon catalog: %v", err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if settings.StartFromMenu {
		sm.SetState(state.NewMenuState(sm, settings))
	} else {
		sm.SetState(state.NewGameState(sm, settings))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Spike Rush")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
