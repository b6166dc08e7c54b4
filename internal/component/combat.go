package component

// EntityID: идентификатор сущности в мире
type EntityID int

// Kind различает игрока и врагов; по нему выбирается логика обновления
// и фракция целей для снарядов.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

func (k Kind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "enemy"
}

// Body: общая часть игрока и врага (позиция, диск коллизии, здоровье)
type Body struct {
	ID   EntityID
	Kind Kind
	Position
	Radius    float64
	Health    float64
	MaxHealth float64
	Armor     float64
	Alive     bool
}

func NewBody(id EntityID, kind Kind, x, y, radius, health float64) Body {
	return Body{
		ID:        id,
		Kind:      kind,
		Position:  Position{X: x, Y: y},
		Radius:    radius,
		Health:    health,
		MaxHealth: health,
		Alive:     true,
	}
}

// Ability: перезаряжаемая способность (рывок, дым)
type Ability struct {
	Cooldown float64 // полная перезарядка
	Timer    float64 // сколько осталось
}

func (a *Ability) Ready() bool { return a.Timer <= 0 }

func (a *Ability) Start() { a.Timer = a.Cooldown }

// Tick уменьшает таймер, не опускаясь ниже нуля
func (a *Ability) Tick(dt float64) {
	a.Timer -= dt
	if a.Timer < 0 {
		a.Timer = 0
	}
}
