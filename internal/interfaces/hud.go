// internal/interfaces/hud.go
package interfaces

// HUDState: всё, что показывает текстовый HUD
type HUDState struct {
	Weapon     string
	Mag        int
	Reserve    int
	Reloading  bool
	Credits    int
	Health     float64
	Armor      float64
	Round      int
	MaxRounds  int
	Phase      string
	Spike      string
	DashTimer  float64
	SmokeTimer float64
}

// HUDSink получает состояние HUD в конце каждого шага
type HUDSink interface {
	UpdateHUD(state HUDState)
}

// ToastSink показывает временное сообщение заданной длительности (секунды)
type ToastSink interface {
	ShowToast(text string, duration float64)
}

// Purchaser: вход для меню покупки
type Purchaser interface {
	BuyWeapon(name string) bool
	BuyArmor(id string) bool
	CloseBuyMenu()
}
