// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadWeaponDefinitions reads a weapon catalog file and replaces WeaponLibrary.
// The library is left untouched if any entry is invalid.
func LoadWeaponDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}
	if len(weaponDefs) == 0 {
		return fmt.Errorf("weapon definitions file %s is empty", path)
	}

	lib := make(map[string]WeaponDefinition, len(weaponDefs))
	for _, def := range weaponDefs {
		if err := def.Validate(); err != nil {
			return fmt.Errorf("invalid weapon definition: %w", err)
		}
		lib[def.Name] = def
	}
	WeaponLibrary = lib

	log.Printf("Loaded %d weapon definitions", len(WeaponLibrary))
	return nil
}
