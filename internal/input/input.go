// internal/input/input.go
package input

// Action: логическая клавиша, независимая от фронтенда
type Action int

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	Walk
	Reload
	Dash
	Smoke
	Use
	ToggleBuy
	Pause
	Crosshair1
	Crosshair2
	Crosshair3
	actionCount
)

// Snapshot: состояние ввода на один шаг симуляции.
// Held значит клавиша зажата, Pressed значит нажата именно в этом шаге.
// Курсор задаётся в экранных координатах.
type Snapshot struct {
	held     [actionCount]bool
	pressed  [actionCount]bool
	PointerX float64
	PointerY float64
	Fire     bool // основная кнопка мыши
	Zoom     bool // вторая кнопка мыши
}

// Hold помечает клавишу зажатой
func (s *Snapshot) Hold(a Action) {
	s.held[a] = true
}

// Press помечает нажатие в этом шаге; нажатая клавиша считается и зажатой
func (s *Snapshot) Press(a Action) {
	s.pressed[a] = true
	s.held[a] = true
}

func (s Snapshot) Held(a Action) bool { return s.held[a] }

func (s Snapshot) Pressed(a Action) bool { return s.pressed[a] }

// Direction: намерение движения по осям, каждая компонента из {-1,0,1}
func (s Snapshot) Direction() (float64, float64) {
	var dx, dy float64
	if s.held[MoveRight] {
		dx++
	}
	if s.held[MoveLeft] {
		dx--
	}
	if s.held[MoveDown] {
		dy++
	}
	if s.held[MoveUp] {
		dy--
	}
	return dx, dy
}

// Moving: зажата ли хоть одна клавиша движения
func (s Snapshot) Moving() bool {
	return s.held[MoveUp] || s.held[MoveDown] || s.held[MoveLeft] || s.held[MoveRight]
}
