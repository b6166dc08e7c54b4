// cmd/tui/main.go
package main

import (
	"fmt"
	"go-spike-rush/internal/config"
	"go-spike-rush/internal/defs"
	"go-spike-rush/internal/tui"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
)

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
	// лог поверх терминального экрана ломает картинку
	log.SetOutput(io.Discard)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	tui.NewFrontend(screen, settings).Run()
}
