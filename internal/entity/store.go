// internal/entity/store.go
package entity

import (
	"garden-guardians/internal/component"
	"garden-guardians/internal/config"
	"garden-guardians/internal/types"
	"garden-guardians/pkg/geom"
)

// Store owns every entity of one run. Slices keep insertion order so that
// systems iterate in a stable order within a frame.
type Store struct {
	Arena     geom.Rect
	GameTime  float64 // секунды с начала забега
	NextID    types.EntityID
	Score     int
	Player    *component.Player
	Enemies   []*component.Enemy
	Bullets   []*component.Bullet
	Particles []*component.Particle
}

// NewStore creates an empty arena with the player in its centre.
func NewStore(arena geom.Rect) *Store {
	return &Store{
		Arena:  arena,
		NextID: 1,
		Player: component.NewPlayer(arena.Center()),
	}
}

// DefaultArena is the full screen.
func DefaultArena() geom.Rect {
	return geom.Rect{W: config.ScreenWidth, H: config.ScreenHeight}
}

func (s *Store) NewEntity() types.EntityID {
	id := s.NextID
	s.NextID++
	return id
}

func (s *Store) AddEnemy(e *component.Enemy) {
	s.Enemies = append(s.Enemies, e)
}

func (s *Store) AddBullets(bullets ...*component.Bullet) {
	s.Bullets = append(s.Bullets, bullets...)
}

func (s *Store) AddParticles(particles ...*component.Particle) {
	s.Particles = append(s.Particles, particles...)
}

// PruneEnemies drops enemies marked as removed, keeping the order of the rest.
func (s *Store) PruneEnemies() {
	s.Enemies = compact(s.Enemies, func(e *component.Enemy) bool { return !e.Removed })
}

// PruneBullets drops bullets that are no longer alive.
func (s *Store) PruneBullets() {
	s.Bullets = compact(s.Bullets, func(b *component.Bullet) bool { return b.Alive })
}

// PruneParticles drops expired particles.
func (s *Store) PruneParticles() {
	s.Particles = compact(s.Particles, func(p *component.Particle) bool { return !p.Expired() })
}

// compact filters into a fresh slice; the old backing array is left untouched
// so a snapshot taken before the call stays valid.
func compact[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
