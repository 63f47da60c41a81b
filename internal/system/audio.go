// internal/system/audio.go
package system

import (
	"garden-guardians/internal/event"
	"garden-guardians/internal/interfaces"
)

// AudioSystem turns game events into sound triggers.
type AudioSystem struct {
	sink interfaces.AudioSink
}

func NewAudioSystem(sink interfaces.AudioSink, eventDispatcher *event.Dispatcher) *AudioSystem {
	as := &AudioSystem{sink: sink}
	eventDispatcher.SubscribeAll(as, event.WeaponFired, event.DamageDealt, event.WeaponEquipped)
	return as
}

func (s *AudioSystem) OnEvent(e event.Event) {
	if s.sink == nil {
		return
	}
	switch e.Type {
	case event.WeaponFired:
		s.sink.Play(interfaces.SoundShoot)
	case event.DamageDealt:
		s.sink.Play(interfaces.SoundHit)
	case event.WeaponEquipped:
		if data, ok := e.Data.(event.WeaponEquippedData); ok && data.Retained {
			s.sink.Play(interfaces.SoundPower)
		}
	}
}
