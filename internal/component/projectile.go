// internal/component/projectile.go
package component

// Projectile представляет летящую пулю.
type Projectile struct {
	Position
	Velocity
	Owner      Kind    // фракция стрелявшего; цели: противоположная
	Life       float64 // убывает с постоянной скоростью
	Falloff    float64 // 1 от бедра, меньше при прицеливании
	BodyDamage int
	HeadDamage int
	Alive      bool
}
