// internal/component/bullet.go
package component

import (
	"image/color"

	"garden-guardians/pkg/geom"
)

// Bullet is a projectile in flight.
type Bullet struct {
	Position geom.Vec2
	Velocity geom.Vec2
	Color    color.RGBA
	Damage   float64
	Radius   float64
	Pierce   int // how many more enemies it may pass through
	Alive    bool
}

// Update moves the bullet; it dies as soon as its centre leaves bounds.
func (b *Bullet) Update(dt float64, bounds geom.Rect) {
	if !b.Alive {
		return
	}
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	if !bounds.ContainsPoint(b.Position) {
		b.Alive = false
	}
}

// RegisterHit consumes one pierce charge, or kills the bullet when none are left.
func (b *Bullet) RegisterHit() {
	if b.Pierce > 0 {
		b.Pierce--
		return
	}
	b.Alive = false
}
