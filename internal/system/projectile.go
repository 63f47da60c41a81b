// internal/system/projectile.go
package system

import (
	"garden-guardians/internal/entity"
)

// ProjectileSystem moves bullets in flight.
type ProjectileSystem struct {
	store *entity.Store
}

func NewProjectileSystem(store *entity.Store) *ProjectileSystem {
	return &ProjectileSystem{store: store}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, bullet := range s.store.Bullets {
		bullet.Update(deltaTime, s.store.Arena)
	}
}
