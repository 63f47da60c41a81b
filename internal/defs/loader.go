// internal/defs/loader.go
package defs

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

const (
	weaponsFile = "weapons.json"
	enemiesFile = "enemies.json"
)

//go:embed data/*.json
var builtin embed.FS

var (
	ErrUnknownWeapon     = eris.New("unknown weapon")
	ErrUnknownEnemy      = eris.New("unknown enemy archetype")
	ErrInvalidDefinition = eris.New("invalid definition")
)

// Library is an immutable set of weapon and enemy definitions. Slice order is
// the order of the source files and is used for menus and weighted spawning.
type Library struct {
	weapons     []WeaponDefinition
	enemies     []EnemyDefinition
	weaponIndex map[string]int
	enemyIndex  map[string]int
}

// LoadDefault loads the definitions embedded into the binary.
func LoadDefault() (*Library, error) {
	weapons, err := builtin.ReadFile("data/" + weaponsFile)
	if err != nil {
		return nil, eris.Wrap(err, "failed to read builtin weapon definitions")
	}
	enemies, err := builtin.ReadFile("data/" + enemiesFile)
	if err != nil {
		return nil, eris.Wrap(err, "failed to read builtin enemy definitions")
	}
	return Parse(weapons, enemies)
}

// LoadDir reads weapons.json and enemies.json from dir.
func LoadDir(dir string) (*Library, error) {
	weapons, err := os.ReadFile(filepath.Join(dir, weaponsFile))
	if err != nil {
		return nil, eris.Wrap(err, "failed to read weapon definitions file")
	}
	enemies, err := os.ReadFile(filepath.Join(dir, enemiesFile))
	if err != nil {
		return nil, eris.Wrap(err, "failed to read enemy definitions file")
	}
	return Parse(weapons, enemies)
}

// Parse builds a Library from the raw JSON of both definition files.
func Parse(weaponsJSON, enemiesJSON []byte) (*Library, error) {
	var weapons []WeaponDefinition
	if err := json.Unmarshal(weaponsJSON, &weapons); err != nil {
		return nil, eris.Wrap(err, "failed to unmarshal weapon definitions")
	}
	var enemies []EnemyDefinition
	if err := json.Unmarshal(enemiesJSON, &enemies); err != nil {
		return nil, eris.Wrap(err, "failed to unmarshal enemy definitions")
	}
	return NewLibrary(weapons, enemies)
}

// NewLibrary validates the definitions and indexes them by name.
func NewLibrary(weapons []WeaponDefinition, enemies []EnemyDefinition) (*Library, error) {
	lib := &Library{
		weapons:     append([]WeaponDefinition(nil), weapons...),
		enemies:     append([]EnemyDefinition(nil), enemies...),
		weaponIndex: make(map[string]int, len(weapons)),
		enemyIndex:  make(map[string]int, len(enemies)),
	}

	for i, w := range lib.weapons {
		if err := validateWeapon(w); err != nil {
			return nil, err
		}
		if _, dup := lib.weaponIndex[w.Name]; dup {
			return nil, eris.Wrapf(ErrInvalidDefinition, "duplicate weapon %q", w.Name)
		}
		lib.weaponIndex[w.Name] = i
	}

	if len(lib.enemies) == 0 {
		return nil, eris.Wrap(ErrInvalidDefinition, "no enemy archetypes defined")
	}
	totalWeight := 0.0
	for i, e := range lib.enemies {
		if err := validateEnemy(e); err != nil {
			return nil, err
		}
		if _, dup := lib.enemyIndex[e.Name]; dup {
			return nil, eris.Wrapf(ErrInvalidDefinition, "duplicate enemy %q", e.Name)
		}
		lib.enemyIndex[e.Name] = i
		totalWeight += e.SpawnWeight
	}
	if totalWeight <= 0 {
		return nil, eris.Wrap(ErrInvalidDefinition, "enemy spawn weights must have a positive sum")
	}

	log.Debug().
		Int("weapons", len(lib.weapons)).
		Int("enemies", len(lib.enemies)).
		Msg("Loaded definitions")
	return lib, nil
}

func validateWeapon(w WeaponDefinition) error {
	switch {
	case w.Name == "":
		return eris.Wrap(ErrInvalidDefinition, "weapon without a name")
	case w.Cooldown <= 0, w.BulletSpeed <= 0, w.BulletDamage <= 0:
		return eris.Wrapf(ErrInvalidDefinition, "weapon %q: cooldown, bullet speed and damage must be positive", w.Name)
	case w.Projectiles < 1:
		return eris.Wrapf(ErrInvalidDefinition, "weapon %q: needs at least one projectile", w.Name)
	case w.Spread < 0, w.Pierce < 0:
		return eris.Wrapf(ErrInvalidDefinition, "weapon %q: spread and piercing must not be negative", w.Name)
	}
	return nil
}

func validateEnemy(e EnemyDefinition) error {
	switch {
	case e.Name == "":
		return eris.Wrap(ErrInvalidDefinition, "enemy without a name")
	case e.Speed <= 0, e.Health <= 0, e.Size <= 0:
		return eris.Wrapf(ErrInvalidDefinition, "enemy %q: speed, health and size must be positive", e.Name)
	case e.SpawnWeight < 0:
		return eris.Wrapf(ErrInvalidDefinition, "enemy %q: negative spawn weight", e.Name)
	}
	return nil
}

// Weapon returns the definition with the given name.
func (l *Library) Weapon(name string) (WeaponDefinition, error) {
	i, ok := l.weaponIndex[name]
	if !ok {
		return WeaponDefinition{}, eris.Wrapf(ErrUnknownWeapon, "%q", name)
	}
	return l.weapons[i], nil
}

// Enemy returns the archetype with the given name.
func (l *Library) Enemy(name string) (EnemyDefinition, error) {
	i, ok := l.enemyIndex[name]
	if !ok {
		return EnemyDefinition{}, eris.Wrapf(ErrUnknownEnemy, "%q", name)
	}
	return l.enemies[i], nil
}

// Weapons returns a copy of the weapon definitions in file order.
func (l *Library) Weapons() []WeaponDefinition {
	return append([]WeaponDefinition(nil), l.weapons...)
}

// Enemies returns a copy of the enemy archetypes in file order.
func (l *Library) Enemies() []EnemyDefinition {
	return append([]EnemyDefinition(nil), l.enemies...)
}

// WeaponNames lists weapon names in menu order.
func (l *Library) WeaponNames() []string {
	names := make([]string, len(l.weapons))
	for i, w := range l.weapons {
		names[i] = w.Name
	}
	return names
}

// SpawnWeights returns the archetype weights aligned with Enemies().
func (l *Library) SpawnWeights() []float64 {
	weights := make([]float64, len(l.enemies))
	for i, e := range l.enemies {
		weights[i] = e.SpawnWeight
	}
	return weights
}
