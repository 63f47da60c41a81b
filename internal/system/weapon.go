// internal/system/weapon.go
package system

import (
	"garden-guardians/internal/entity"
	"garden-guardians/internal/event"
	"garden-guardians/internal/interfaces"
)

// WeaponSystem ticks the equipped weapon and pulls the trigger while fire is held.
type WeaponSystem struct {
	store           *entity.Store
	input           interfaces.InputProvider
	eventDispatcher *event.Dispatcher
}

func NewWeaponSystem(store *entity.Store, input interfaces.InputProvider, eventDispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{
		store:           store,
		input:           input,
		eventDispatcher: eventDispatcher,
	}
}

func (s *WeaponSystem) Update(deltaTime float64) {
	player := s.store.Player
	weapon := player.Weapon
	if weapon == nil {
		return
	}
	// Таймер тикает каждый кадр, даже без стрельбы
	weapon.Update(deltaTime)

	if s.input == nil || !s.input.FireHeld() || !player.Alive() {
		return
	}
	bullets := weapon.TryFire(player.Position, s.input.Aim())
	if len(bullets) == 0 {
		return
	}
	s.store.AddBullets(bullets...)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WeaponFired,
		Data: event.WeaponFiredData{Weapon: weapon.Name, Bullets: len(bullets)},
	})
}
