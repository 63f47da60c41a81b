// internal/interfaces/input.go
package interfaces

import "garden-guardians/pkg/geom"

// Movement is a snapshot of the held movement directions.
type Movement struct {
	Up, Down, Left, Right bool
}

// Direction returns the unit vector of the held directions, or zero.
func (m Movement) Direction() geom.Vec2 {
	var v geom.Vec2
	if m.Up {
		v.Y--
	}
	if m.Down {
		v.Y++
	}
	if m.Left {
		v.X--
	}
	if m.Right {
		v.X++
	}
	return v.Normalize()
}

// InputProvider exposes the player's controls for the current frame.
type InputProvider interface {
	Movement() Movement
	// Aim is the pointer position in arena coordinates.
	Aim() geom.Vec2
	FireHeld() bool
}
