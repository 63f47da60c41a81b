// internal/input/ebiten.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"garden-guardians/internal/interfaces"
	"garden-guardians/pkg/geom"
)

// Ebiten reads keyboard and mouse state. WASD and the arrow keys both move.
type Ebiten struct{}

var _ interfaces.InputProvider = Ebiten{}

func (Ebiten) Movement() interfaces.Movement {
	return interfaces.Movement{
		Up:    AnyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  AnyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:  AnyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: AnyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
	}
}

func (Ebiten) Aim() geom.Vec2 {
	x, y := ebiten.CursorPosition()
	return geom.V(float64(x), float64(y))
}

func (Ebiten) FireHeld() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// AnyPressed reports whether any of keys is held down.
func AnyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// AnyJustPressed reports whether any of keys went down this tick.
func AnyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
