// internal/component/particle.go
package component

import (
	"image/color"
	"math"

	"garden-guardians/internal/config"
	"garden-guardians/pkg/geom"
)

// Particle is a short-lived cosmetic spark.
type Particle struct {
	Position geom.Vec2
	Velocity geom.Vec2
	Color    color.RGBA
	Lifetime float64 // seconds left
	Radius   float64
}

// Update drifts the particle, ages it and shrinks it.
func (p *Particle) Update(dt float64) {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Lifetime -= dt
	p.Radius = math.Max(0, p.Radius-config.ParticleShrinkRate*dt)
}

// Expired reports whether the particle should be dropped.
func (p *Particle) Expired() bool {
	return p.Lifetime <= 0 || p.Radius <= 0
}
