// internal/system/state.go
package system

import (
	"garden-guardians/internal/entity"
	"garden-guardians/internal/event"
)

// StateSystem следит за гибелью игрока и сообщает о ней один раз за забег.
type StateSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
	defeated        bool
}

func NewStateSystem(store *entity.Store, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		store:           store,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Update() {
	if s.defeated || s.store.Player.Alive() {
		return
	}
	s.defeated = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
}

func (s *StateSystem) Defeated() bool {
	return s.defeated
}
