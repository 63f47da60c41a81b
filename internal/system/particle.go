// internal/system/particle.go
package system

import (
	"image/color"

	"garden-guardians/internal/component"
	"garden-guardians/internal/config"
	"garden-guardians/internal/entity"
	"garden-guardians/internal/utils"
	"garden-guardians/pkg/geom"
)

// ParticleSystem spawns and ages the cosmetic impact sparks.
type ParticleSystem struct {
	store *entity.Store
	rng   *utils.PRNGService
}

func NewParticleSystem(store *entity.Store, rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{store: store, rng: rng}
}

// SpawnBurst scatters a ring of sparks at pos. Each spark takes a colour from
// the shared palette or the source colour.
func (s *ParticleSystem) SpawnBurst(pos geom.Vec2, source color.RGBA) {
	palette := make([]color.RGBA, 0, len(config.ParticleColors)+1)
	palette = append(palette, config.ParticleColors...)
	palette = append(palette, source)

	for i := 0; i < config.ParticlesPerBurst; i++ {
		vel := geom.V(
			s.rng.Uniform(-config.ParticleMaxSpeed, config.ParticleMaxSpeed),
			s.rng.Uniform(-config.ParticleMaxSpeed, config.ParticleMaxSpeed),
		)
		s.store.AddParticles(&component.Particle{
			Position: pos,
			Velocity: vel,
			Color:    palette[s.rng.Intn(len(palette))],
			Lifetime: s.rng.Uniform(config.ParticleMinLifetime, config.ParticleMaxLifetime),
			Radius:   s.rng.Uniform(config.ParticleMinRadius, config.ParticleMaxRadius),
		})
	}
}

// Update ages every particle and drops the expired ones.
func (s *ParticleSystem) Update(deltaTime float64) {
	for _, p := range s.store.Particles {
		p.Update(deltaTime)
	}
	s.store.PruneParticles()
}
