package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLibrary(t *testing.T) {
	saved := WeaponLibrary
	t.Cleanup(func() { WeaponLibrary = saved })
}

func TestLookupUnknownWeapon(t *testing.T) {
	_, err := LookupWeapon("Operator")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownWeapon)
}

func TestWeaponNamesOrderedByCost(t *testing.T) {
	assert.Equal(t, []string{"Classic", "Ghost", "Marshal", "Bulldog", "Vandal"}, WeaponNames())
}

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, ValidateCatalog("Classic", "Vandal"))
	assert.ErrorIs(t, ValidateCatalog("Phantom"), ErrUnknownWeapon)

	vandal := WeaponLibrary["Vandal"]
	assert.InDelta(t, 60.0/540, vandal.FireDelay(), 1e-12)
}

func TestLoadWeaponDefinitions(t *testing.T) {
	restoreLibrary(t)
	path := filepath.Join(t.TempDir(), "weapons.json")
	data := `[{"name":"Sheriff","body_damage":55,"head_damage":159,"rpm":240,"mag_size":6,"reserve":24,"reload_time":2.25,"bullets":1,"cost":800}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	require.NoError(t, LoadWeaponDefinitions(path))
	def, err := LookupWeapon("Sheriff")
	require.NoError(t, err)
	assert.Equal(t, 55, def.BodyDamage)
	assert.Equal(t, 6, def.MagSize)
	_, err = LookupWeapon("Classic")
	assert.ErrorIs(t, err, ErrUnknownWeapon, "file replaces the catalog")
}

func TestLoadWeaponDefinitionsRejectsInvalid(t *testing.T) {
	restoreLibrary(t)
	path := filepath.Join(t.TempDir(), "weapons.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Broken","rpm":0,"mag_size":5,"reload_time":1,"bullets":1}]`), 0o644))

	assert.Error(t, LoadWeaponDefinitions(path))
	_, err := LookupWeapon("Classic")
	assert.NoError(t, err, "library is untouched on error")
}

func TestLoadWeaponDefinitionsMissingFile(t *testing.T) {
	err := LoadWeaponDefinitions(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
