// internal/interfaces/audio.go
package interfaces

// SoundName identifies a sound effect.
type SoundName string

const (
	SoundShoot SoundName = "shoot"
	SoundHit   SoundName = "hit"
	SoundPower SoundName = "power"
)

// AudioSink plays named sound effects. Play is fire-and-forget: it must not
// block and any backend failure stays inside the implementation.
type AudioSink interface {
	Play(name SoundName)
}
