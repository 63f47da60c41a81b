// internal/system/player_system.go
package system

import (
	"garden-guardians/internal/entity"
	"garden-guardians/internal/interfaces"
)

// PlayerSystem двигает игрока по вводу и держит его внутри арены.
type PlayerSystem struct {
	store *entity.Store
	input interfaces.InputProvider
}

func NewPlayerSystem(store *entity.Store, input interfaces.InputProvider) *PlayerSystem {
	return &PlayerSystem{store: store, input: input}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	var move interfaces.Movement
	if s.input != nil {
		move = s.input.Movement()
	}
	s.store.Player.Move(move.Direction(), deltaTime, s.store.Arena)
}
