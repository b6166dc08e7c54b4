// internal/component/weapon.go
package component

import "go-spike-rush/internal/defs"

// Weapon: экземпляр оружия. Хранит неизменяемые статы из каталога и
// изменяемое состояние стрельбы.
type Weapon struct {
	Def         defs.WeaponDefinition
	Mag         int
	Reserve     int
	ReloadTimer float64 // > 0: идёт перезарядка
	Recoil      float64
	Cooldown    float64 // до следующего выстрела
}

// NewWeapon создаёт оружие по имени из каталога.
func NewWeapon(name string) (*Weapon, error) {
	def, err := defs.LookupWeapon(name)
	if err != nil {
		return nil, err
	}
	return &Weapon{
		Def:     def,
		Mag:     def.MagSize,
		Reserve: def.Reserve,
	}, nil
}

// MustWeapon как NewWeapon, но паникует. Неизвестное имя означает
// дефект каталога, а не действие игрока.
func MustWeapon(name string) *Weapon {
	w, err := NewWeapon(name)
	if err != nil {
		panic(err)
	}
	return w
}

func (w *Weapon) Name() string { return w.Def.Name }

func (w *Weapon) CanZoom() bool { return w.Def.CanZoom }

func (w *Weapon) Reloading() bool { return w.ReloadTimer > 0 }

// Reload запускает перезарядку. Ничего не делает, если магазин полон,
// запас пуст или перезарядка уже идёт. Возвращает true, если начата.
func (w *Weapon) Reload() bool {
	if w.Mag >= w.Def.MagSize || w.Reserve <= 0 || w.Reloading() {
		return false
	}
	w.ReloadTimer = w.Def.ReloadTime
	return true
}

// Update ведёт таймер перезарядки. Патроны переносятся из запаса
// в магазин одним шагом в момент окончания. Возвращает true на этом шаге.
func (w *Weapon) Update(dt float64) bool {
	if !w.Reloading() {
		return false
	}
	w.ReloadTimer -= dt
	if w.ReloadTimer > 0 {
		return false
	}
	w.ReloadTimer = 0
	take := min(w.Def.MagSize-w.Mag, w.Reserve)
	w.Mag += take
	w.Reserve -= take
	return true
}

// RecoilDecay: отложенное снижение отдачи после выстрела.
// Обрабатывается в начале шага, когда время мира дошло до Deadline.
type RecoilDecay struct {
	Weapon   *Weapon
	Deadline float64
	Amount   float64
}
