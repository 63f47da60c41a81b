package system

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden-guardians/internal/config"
	"garden-guardians/pkg/geom"
)

func TestSpawnBurst(t *testing.T) {
	w := newTestWorld(t)
	ps := NewParticleSystem(w.store, w.rng)
	source := color.RGBA{1, 2, 3, 255}

	ps.SpawnBurst(geom.V(50, 60), source)
	require.Len(t, w.store.Particles, config.ParticlesPerBurst)

	palette := append(append([]color.RGBA{}, config.ParticleColors...), source)
	for _, p := range w.store.Particles {
		assert.Equal(t, geom.V(50, 60), p.Position)
		assert.LessOrEqual(t, p.Velocity.X, 120.0)
		assert.GreaterOrEqual(t, p.Velocity.X, -120.0)
		assert.GreaterOrEqual(t, p.Lifetime, 0.2)
		assert.Less(t, p.Lifetime, 0.6)
		assert.GreaterOrEqual(t, p.Radius, 2.0)
		assert.Less(t, p.Radius, 6.0)
		assert.Contains(t, palette, p.Color)
	}
}

func TestParticlesExpire(t *testing.T) {
	w := newTestWorld(t)
	ps := NewParticleSystem(w.store, w.rng)
	ps.SpawnBurst(geom.V(0, 0), color.RGBA{A: 255})

	ps.Update(0.01)
	assert.Len(t, w.store.Particles, config.ParticlesPerBurst)

	ps.Update(0.6)
	assert.Empty(t, w.store.Particles)
}
