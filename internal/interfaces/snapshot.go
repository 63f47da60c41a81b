package interfaces

import "garden-guardians/pkg/geom"

// InputSnapshot is a fixed set of controls. It drives scripted runs and tests.
type InputSnapshot struct {
	Move   Movement
	Target geom.Vec2
	Fire   bool
}

func (s *InputSnapshot) Movement() Movement { return s.Move }
func (s *InputSnapshot) Aim() geom.Vec2     { return s.Target }
func (s *InputSnapshot) FireHeld() bool     { return s.Fire }
