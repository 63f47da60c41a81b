// internal/component/weapon.go
package component

import (
	"image/color"
	"math"

	"garden-guardians/internal/config"
	"garden-guardians/internal/defs"
	"garden-guardians/pkg/geom"
)

// Weapon turns aim input into bullets, gated by a cooldown timer.
type Weapon struct {
	Name         string
	Color        color.RGBA
	Cooldown     float64 // seconds between shots
	BulletSpeed  float64
	BulletDamage float64
	Spread       float64 // total fan angle, degrees
	Projectiles  int
	Pierce       int
	Timer        float64 // time left until the next shot; never negative
}

// NewWeapon builds a ready-to-fire weapon from its definition.
func NewWeapon(def defs.WeaponDefinition) *Weapon {
	return &Weapon{
		Name:         def.Name,
		Color:        def.Color.RGBA(),
		Cooldown:     def.Cooldown,
		BulletSpeed:  def.BulletSpeed,
		BulletDamage: def.BulletDamage,
		Spread:       def.Spread,
		Projectiles:  def.Projectiles,
		Pierce:       def.Pierce,
	}
}

// Update decays the cooldown timer. Called once per frame.
func (w *Weapon) Update(dt float64) {
	w.Timer = math.Max(0, w.Timer-dt)
}

// Ready reports whether the next TryFire would shoot.
func (w *Weapon) Ready() bool {
	return w.Timer <= 0
}

// TryFire shoots from origin towards target. It returns nil while the weapon
// is cooling down. A zero-length aim fires along +X.
func (w *Weapon) TryFire(origin, target geom.Vec2) []*Bullet {
	if !w.Ready() {
		return nil
	}

	aim := target.Sub(origin)
	if aim.LenSq() == 0 {
		aim = geom.V(1, 0)
	}

	bullets := make([]*Bullet, 0, w.Projectiles)
	if w.Projectiles == 1 {
		bullets = append(bullets, w.newBullet(origin, aim.Normalize()))
	} else {
		base := aim.AngleDeg()
		start := base - w.Spread/2
		step := w.Spread / float64(w.Projectiles-1)
		for i := 0; i < w.Projectiles; i++ {
			bullets = append(bullets, w.newBullet(origin, geom.FromAngleDeg(start+float64(i)*step)))
		}
	}

	w.Timer = w.Cooldown
	return bullets
}

func (w *Weapon) newBullet(origin, dir geom.Vec2) *Bullet {
	return &Bullet{
		Position: origin,
		Velocity: dir.Scale(w.BulletSpeed),
		Color:    w.Color,
		Damage:   w.BulletDamage,
		Radius:   config.BulletRadius,
		Pierce:   w.Pierce,
		Alive:    true,
	}
}
