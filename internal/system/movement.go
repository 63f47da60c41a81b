// internal/system/movement.go
package system

import (
	"garden-guardians/internal/entity"
)

// MovementSystem ведёт врагов прямо на игрока. Направление пересчитывается
// каждый кадр, памяти о пути нет.
type MovementSystem struct {
	store *entity.Store
}

func NewMovementSystem(store *entity.Store) *MovementSystem {
	return &MovementSystem{store: store}
}

func (s *MovementSystem) Update(deltaTime float64) {
	target := s.store.Player.Position
	for _, enemy := range s.store.Enemies {
		enemy.Update(deltaTime, target)
	}
}
