// internal/component/player.go
package component

// Player: персонаж игрока. Угол прицела не хранится, он каждый кадр
// вычисляется из позиции и курсора.
type Player struct {
	Body
	Weapon  *Weapon
	Credits int
	Zoom    bool // прицеливание (ADS)
	Moving  bool // двигался ли в текущем кадре
	Dash    Ability
	Smoke   Ability
}
