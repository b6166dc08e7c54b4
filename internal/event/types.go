// internal/event/types.go
package event

import "go-spike-rush/internal/component"

const (
	RoundStarted   EventType = "RoundStarted"   // началась фаза покупки
	RoundLive      EventType = "RoundLive"      // покупка закрыта, бой
	RoundEnded     EventType = "RoundEnded"     // победа или поражение
	MatchEnded     EventType = "MatchEnded"     // раунды закончились
	SpikePlanted   EventType = "SpikePlanted"   // спайк установлен
	SpikeDefused   EventType = "SpikeDefused"   // спайк обезврежен
	SpikeDetonated EventType = "SpikeDetonated" // таймер истёк
	EntityKilled   EventType = "EntityKilled"   // здоровье ушло в ноль
	ReloadStarted  EventType = "ReloadStarted"
	ReloadFinished EventType = "ReloadFinished"
	Toast          EventType = "Toast" // всплывающее сообщение для игрока
)

// ToastData: текст и длительность показа в секундах
type ToastData struct {
	Text     string
	Duration float64
}

// RoundData сопровождает события раунда
type RoundData struct {
	Round   int
	Outcome component.Outcome
}

// KillData сопровождает EntityKilled
type KillData struct {
	ID   component.EntityID
	Kind component.Kind
}

// ReloadData сопровождает события перезарядки
type ReloadData struct {
	Owner  component.Kind
	Weapon string
}
