// internal/defs/types.go
package defs

import "image/color"

// RGB is a colour stored as a [r, g, b] array in the definition files.
type RGB [3]uint8

// RGBA converts the colour to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// WeaponDefinition holds all the static data for a selectable weapon.
type WeaponDefinition struct {
	Name         string  `json:"name"`
	Color        RGB     `json:"color"`
	Cooldown     float64 `json:"cooldown"`      // seconds between shots
	BulletSpeed  float64 `json:"bullet_speed"`  // pixels per second
	BulletDamage float64 `json:"bullet_damage"`
	Spread       float64 `json:"spread"` // degrees
	Projectiles  int     `json:"projectiles"`
	Pierce       int     `json:"piercing,omitempty"`
	Description  string  `json:"description"`
}

// EnemyDefinition holds all the static data for an enemy archetype.
type EnemyDefinition struct {
	Name        string  `json:"name"`
	Speed       float64 `json:"speed"`
	Health      float64 `json:"health"`
	Color       RGB     `json:"color"`
	Size        float64 `json:"size"`
	SpawnWeight float64 `json:"spawn_weight"`
	Description string  `json:"description"`
}
