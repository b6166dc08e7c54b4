// internal/tui/keys.go
package tui

import (
	"go-spike-rush/internal/input"
)

// holdWindow: сколько секунд клавиша считается зажатой после последнего
// события. Терминал не сообщает об отпускании, поэтому удержание
// поддерживается автоповтором клавиатуры.
const holdWindow = 0.15

var runeActions = map[rune]input.Action{
	'w': input.MoveUp,
	's': input.MoveDown,
	'a': input.MoveLeft,
	'd': input.MoveRight,
	'W': input.MoveUp,
	'S': input.MoveDown,
	'A': input.MoveLeft,
	'D': input.MoveRight,
	'f': input.Use,
	'r': input.Reload,
	'e': input.Dash,
	'q': input.Smoke,
	'b': input.ToggleBuy,
	'p': input.Pause,
}

// holdable: действия с семантикой удержания
var holdable = map[input.Action]bool{
	input.MoveUp:    true,
	input.MoveDown:  true,
	input.MoveLeft:  true,
	input.MoveRight: true,
	input.Walk:      true,
	input.Use:       true,
}

// KeyState эмулирует зажатые клавиши по потоку событий терминала
type KeyState struct {
	expiry  map[input.Action]float64
	pressed map[input.Action]bool
	now     float64

	PointerX float64
	PointerY float64
	Fire     bool
	Zoom     bool
}

func NewKeyState() *KeyState {
	return &KeyState{
		expiry:  make(map[input.Action]float64),
		pressed: make(map[input.Action]bool),
	}
}

// Trigger регистрирует событие клавиши
func (k *KeyState) Trigger(a input.Action) {
	if !holdable[a] || !k.held(a) {
		k.pressed[a] = true
	}
	if holdable[a] {
		k.expiry[a] = k.now + holdWindow
	}
}

// TriggerRune: Trigger по символу. Заглавная буква движения значит шаг.
func (k *KeyState) TriggerRune(r rune) bool {
	a, ok := runeActions[r]
	if !ok {
		return false
	}
	k.Trigger(a)
	if r >= 'A' && r <= 'Z' {
		k.Trigger(input.Walk)
	}
	return true
}

func (k *KeyState) held(a input.Action) bool {
	return k.expiry[a] > k.now
}

// Snapshot отдаёт ввод для шага длиной deltaTime и сбрасывает нажатия
func (k *KeyState) Snapshot(deltaTime float64) input.Snapshot {
	var snap input.Snapshot
	for a := range holdable {
		if k.held(a) {
			snap.Hold(a)
		}
	}
	for a := range k.pressed {
		snap.Press(a)
		delete(k.pressed, a)
	}
	snap.PointerX, snap.PointerY = k.PointerX, k.PointerY
	snap.Fire = k.Fire
	snap.Zoom = k.Zoom
	k.now += deltaTime
	return snap
}
