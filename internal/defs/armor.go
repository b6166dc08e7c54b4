// internal/defs/armor.go
package defs

// ArmorDefinition: уровень брони в магазине
type ArmorDefinition struct {
	ID    string
	Name  string
	Value int
	Cost  int
}

// ArmorLibrary holds purchasable armor tiers keyed by ID.
var ArmorLibrary = map[string]ArmorDefinition{
	"light": {ID: "light", Name: "Light Shields", Value: 25, Cost: 400},
	"heavy": {ID: "heavy", Name: "Heavy Shields", Value: 50, Cost: 1000},
}

// ArmorIDs: порядок отображения в меню покупки
var ArmorIDs = []string{"light", "heavy"}
