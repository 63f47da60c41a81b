// internal/component/player.go
package component

import (
	"image/color"

	"garden-guardians/internal/config"
	"garden-guardians/pkg/geom"
)

// Player is the hero defending the arena.
type Player struct {
	Position geom.Vec2
	Speed    float64
	Radius   float64
	Health   int
	Color    color.RGBA
	Weapon   *Weapon // nil until a weapon is chosen
}

// NewPlayer places a fresh player at pos with the default stats.
func NewPlayer(pos geom.Vec2) *Player {
	return &Player{
		Position: pos,
		Speed:    config.PlayerSpeed,
		Radius:   config.PlayerRadius,
		Health:   config.PlayerHealth,
		Color:    config.PlayerColor,
	}
}

// Move advances the player along the unit direction dir and keeps it inside bounds.
func (p *Player) Move(dir geom.Vec2, dt float64, bounds geom.Rect) {
	p.Position = p.Position.Add(dir.Scale(p.Speed * dt))
	p.KeepInBounds(bounds)
}

// KeepInBounds clamps the centre so the whole circle stays inside bounds.
func (p *Player) KeepInBounds(bounds geom.Rect) {
	p.Position.X = geom.Clamp(p.Position.X, bounds.Left()+p.Radius, bounds.Right()-p.Radius)
	p.Position.Y = geom.Clamp(p.Position.Y, bounds.Top()+p.Radius, bounds.Bottom()-p.Radius)
}

// Box is the square circumscribing the player's circle, used for contact checks.
func (p *Player) Box() geom.Rect {
	return geom.RectAround(p.Position, p.Radius*2, p.Radius*2)
}

// TakeDamage lowers health; the floor is applied by ClampHealth.
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
}

func (p *Player) ClampHealth() {
	if p.Health < 0 {
		p.Health = 0
	}
}

func (p *Player) Alive() bool {
	return p.Health > 0
}
