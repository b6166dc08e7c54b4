package component

// AIState: поведенческое состояние врага.
// Пересчитывается из условий каждый шаг (level-triggered).
type AIState string

const (
	AIPatrol AIState = "patrol"
	AIChase  AIState = "chase"
	AISmoked AIState = "smoked"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Body
	Weapon *Weapon
	State  AIState
}
