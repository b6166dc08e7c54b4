// internal/state/input.go
package state

import (
	"go-spike-rush/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var heldKeys = map[input.Action][]ebiten.Key{
	input.MoveUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	input.MoveDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	input.MoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.MoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	input.Walk:      {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	input.Use:       {ebiten.KeyF},
}

var pressedKeys = map[input.Action][]ebiten.Key{
	input.Reload:     {ebiten.KeyR},
	input.Dash:       {ebiten.KeyE},
	input.Smoke:      {ebiten.KeyQ},
	input.ToggleBuy:  {ebiten.KeyB},
	input.Pause:      {ebiten.KeyP, ebiten.KeyEscape},
	input.Crosshair1: {ebiten.Key1},
	input.Crosshair2: {ebiten.Key2},
	input.Crosshair3: {ebiten.Key3},
}

// readSnapshot собирает ввод текущего кадра ebiten
func readSnapshot() input.Snapshot {
	var snap input.Snapshot
	for action, keys := range heldKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				snap.Hold(action)
			}
		}
	}
	for action, keys := range pressedKeys {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				snap.Press(action)
			}
		}
	}
	x, y := ebiten.CursorPosition()
	snap.PointerX, snap.PointerY = float64(x), float64(y)
	snap.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	snap.Zoom = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	return snap
}
