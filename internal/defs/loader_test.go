package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultKeepsFileOrder(t *testing.T) {
	lib, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, []string{"Seed Blaster", "Thorn Fork", "Solar Beam"}, lib.WeaponNames())
	assert.Equal(t, []float64{0.5, 0.3, 0.2}, lib.SpawnWeights())

	enemies := lib.Enemies()
	require.Len(t, enemies, 3)
	assert.Equal(t, "Sproutling", enemies[0].Name)
	assert.Equal(t, "Root Beast", enemies[1].Name)
	assert.Equal(t, "Sporeshroom", enemies[2].Name)
}

func TestWeaponLookup(t *testing.T) {
	lib, err := LoadDefault()
	require.NoError(t, err)

	seed, err := lib.Weapon("Seed Blaster")
	require.NoError(t, err)
	assert.Equal(t, 0.25, seed.Cooldown)
	assert.Equal(t, 520.0, seed.BulletSpeed)
	assert.Equal(t, 15.0, seed.BulletDamage)
	assert.Equal(t, 1, seed.Projectiles)
	assert.Zero(t, seed.Pierce)

	solar, err := lib.Weapon("Solar Beam")
	require.NoError(t, err)
	assert.Equal(t, 1, solar.Pierce)
	assert.Equal(t, RGB{255, 180, 80}, solar.Color)

	_, err = lib.Weapon("Banana Cannon")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrUnknownWeapon))
}

func TestEnemyLookup(t *testing.T) {
	lib, err := LoadDefault()
	require.NoError(t, err)

	sprout, err := lib.Enemy("Sproutling")
	require.NoError(t, err)
	assert.Equal(t, 30.0, sprout.Health)
	assert.Equal(t, 26.0, sprout.Size)
	assert.Equal(t, 100.0, sprout.Speed)

	_, err = lib.Enemy("Weed King")
	assert.True(t, eris.Is(err, ErrUnknownEnemy))
}

func TestParseRejectsInvalidDefinitions(t *testing.T) {
	enemies := []byte(`[{"name":"A","speed":1,"health":1,"size":1,"spawn_weight":1,"color":[1,2,3]}]`)

	tests := []struct {
		name    string
		weapons string
		enemies []byte
	}{
		{"malformed json", `[{`, enemies},
		{"zero cooldown", `[{"name":"W","cooldown":0,"bullet_speed":1,"bullet_damage":1,"projectiles":1}]`, enemies},
		{"no projectiles", `[{"name":"W","cooldown":1,"bullet_speed":1,"bullet_damage":1,"projectiles":0}]`, enemies},
		{"negative pierce", `[{"name":"W","cooldown":1,"bullet_speed":1,"bullet_damage":1,"projectiles":1,"piercing":-1}]`, enemies},
		{"duplicate weapon", `[{"name":"W","cooldown":1,"bullet_speed":1,"bullet_damage":1,"projectiles":1},{"name":"W","cooldown":1,"bullet_speed":1,"bullet_damage":1,"projectiles":1}]`, enemies},
		{"no enemies", `[]`, []byte(`[]`)},
		{"zero weights", `[]`, []byte(`[{"name":"A","speed":1,"health":1,"size":1,"spawn_weight":0}]`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.weapons), tt.enemies)
			assert.Error(t, err)
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	weapons := `[{"name":"Pea","color":[1,2,3],"cooldown":0.1,"bullet_speed":100,"bullet_damage":1,"spread":0,"projectiles":1}]`
	enemies := `[{"name":"Slug","color":[4,5,6],"speed":10,"health":5,"size":10,"spawn_weight":1}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weapons.json"), []byte(weapons), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enemies.json"), []byte(enemies), 0o644))

	lib, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pea"}, lib.WeaponNames())

	_, err = LoadDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
