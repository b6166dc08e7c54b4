// internal/defs/weapons.go
package defs

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownWeapon: запрошено оружие, которого нет в каталоге.
// Это дефект данных, а не действие игрока.
var ErrUnknownWeapon = errors.New("unknown weapon")

// WeaponDefinition holds the immutable stats of a weapon.
type WeaponDefinition struct {
	Name       string  `json:"name"`
	BodyDamage int     `json:"body_damage"`
	HeadDamage int     `json:"head_damage"`
	RPM        float64 `json:"rpm"` // выстрелов в минуту
	MagSize    int     `json:"mag_size"`
	Reserve    int     `json:"reserve"`
	ReloadTime float64 `json:"reload_time"` // секунды
	Spread     float64 `json:"spread"`      // базовый разброс, радианы
	MoveSpread float64 `json:"move_spread"` // добавка при движении
	CanZoom    bool    `json:"zoom"`
	Bullets    int     `json:"bullets"` // снарядов за выстрел
	RecoilKick float64 `json:"recoil_kick"`
	Cost       int     `json:"cost"`
}

// FireDelay: пауза между выстрелами в секундах
func (d WeaponDefinition) FireDelay() float64 {
	return 60 / d.RPM
}

// Validate проверяет, что статы пригодны для симуляции
func (d WeaponDefinition) Validate() error {
	switch {
	case d.Name == "":
		return errors.New("weapon without name")
	case d.RPM <= 0:
		return fmt.Errorf("weapon %s: rpm must be positive", d.Name)
	case d.MagSize <= 0:
		return fmt.Errorf("weapon %s: mag_size must be positive", d.Name)
	case d.Reserve < 0:
		return fmt.Errorf("weapon %s: reserve must not be negative", d.Name)
	case d.ReloadTime <= 0:
		return fmt.Errorf("weapon %s: reload_time must be positive", d.Name)
	case d.Bullets <= 0:
		return fmt.Errorf("weapon %s: bullets must be positive", d.Name)
	case d.Cost < 0:
		return fmt.Errorf("weapon %s: cost must not be negative", d.Name)
	}
	return nil
}

// WeaponLibrary is the weapon catalog, keyed by name.
var WeaponLibrary = defaultWeapons()

func defaultWeapons() map[string]WeaponDefinition {
	list := []WeaponDefinition{
		{Name: "Classic", BodyDamage: 26, HeadDamage: 78, RPM: 400, MagSize: 12, Reserve: 36, ReloadTime: 1.5, Spread: 0.055, MoveSpread: 0.09, Bullets: 1, RecoilKick: 0.015, Cost: 0},
		{Name: "Ghost", BodyDamage: 30, HeadDamage: 105, RPM: 400, MagSize: 15, Reserve: 45, ReloadTime: 1.7, Spread: 0.04, MoveSpread: 0.07, Bullets: 1, RecoilKick: 0.02, Cost: 500},
		{Name: "Vandal", BodyDamage: 39, HeadDamage: 156, RPM: 540, MagSize: 25, Reserve: 75, ReloadTime: 2.2, Spread: 0.06, MoveSpread: 0.12, CanZoom: true, Bullets: 1, RecoilKick: 0.026, Cost: 2900},
		{Name: "Bulldog", BodyDamage: 35, HeadDamage: 116, RPM: 600, MagSize: 24, Reserve: 72, ReloadTime: 2.2, Spread: 0.07, MoveSpread: 0.13, CanZoom: true, Bullets: 1, RecoilKick: 0.028, Cost: 2050},
		{Name: "Marshal", BodyDamage: 101, HeadDamage: 202, RPM: 90, MagSize: 5, Reserve: 15, ReloadTime: 2.0, Spread: 0.01, MoveSpread: 0.02, CanZoom: true, Bullets: 1, RecoilKick: 0, Cost: 950},
	}
	lib := make(map[string]WeaponDefinition, len(list))
	for _, d := range list {
		lib[d.Name] = d
	}
	return lib
}

// LookupWeapon возвращает статы по имени или ErrUnknownWeapon
func LookupWeapon(name string) (WeaponDefinition, error) {
	def, ok := WeaponLibrary[name]
	if !ok {
		return WeaponDefinition{}, fmt.Errorf("%w: %q", ErrUnknownWeapon, name)
	}
	return def, nil
}

// WeaponNames returns catalog names ordered by price, then name.
func WeaponNames() []string {
	names := make([]string, 0, len(WeaponLibrary))
	for name := range WeaponLibrary {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := WeaponLibrary[names[i]], WeaponLibrary[names[j]]
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		return a.Name < b.Name
	})
	return names
}

// ValidateCatalog проверяет каталог и обязательные стартовые стволы
func ValidateCatalog(required ...string) error {
	for _, def := range WeaponLibrary {
		if err := def.Validate(); err != nil {
			return err
		}
	}
	for _, name := range required {
		if _, err := LookupWeapon(name); err != nil {
			return err
		}
	}
	return nil
}
