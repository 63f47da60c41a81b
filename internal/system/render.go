// internal/system/render.go
package system

import (
	"math"

	"garden-guardians/internal/component"
	"garden-guardians/internal/config"
	"garden-guardians/internal/entity"
	"garden-guardians/internal/interfaces"
	"garden-guardians/pkg/geom"
)

const (
	smileStart = 3.4 // радианы
	smileEnd   = 5.0
	faceStroke = 2.0
)

// RenderSystem рисует сущности
type RenderSystem struct {
	store *entity.Store
}

func NewRenderSystem(store *entity.Store) *RenderSystem {
	return &RenderSystem{store: store}
}

// Draw paints particles, enemies, bullets and the player, back to front.
func (s *RenderSystem) Draw(canvas interfaces.Canvas) {
	for _, p := range s.store.Particles {
		if p.Expired() {
			continue
		}
		canvas.FillCircle(p.Position, math.Floor(p.Radius), p.Color)
	}
	for _, e := range s.store.Enemies {
		if !e.Removed {
			drawEnemy(canvas, e)
		}
	}
	for _, b := range s.store.Bullets {
		if b.Alive {
			canvas.FillCircle(b.Position, b.Radius, b.Color)
		}
	}
	drawPlayer(canvas, s.store.Player)
}

func drawEnemy(canvas interfaces.Canvas, e *component.Enemy) {
	box := e.Box()
	canvas.FillEllipse(box, e.Color)

	c := box.Center()
	eyeDX, eyeDY := box.W/6, box.H/6
	eyeR := math.Max(2, math.Floor(box.W/10))
	canvas.FillCircle(geom.V(c.X-eyeDX, c.Y-eyeDY), eyeR, config.EnemyEyeColor)
	canvas.FillCircle(geom.V(c.X+eyeDX, c.Y-eyeDY), eyeR, config.EnemyEyeColor)
	canvas.Arc(box.Inset(box.W/6, box.H/4), smileStart, smileEnd, faceStroke, config.EnemyEyeColor)
}

func drawPlayer(canvas interfaces.Canvas, p *component.Player) {
	canvas.FillCircle(p.Position, p.Radius, p.Color)

	eye := p.Radius / 3
	canvas.FillCircle(geom.V(p.Position.X-eye, p.Position.Y-eye), 4, config.PlayerEyeColor)
	canvas.FillCircle(geom.V(p.Position.X+eye, p.Position.Y-eye), 4, config.PlayerEyeColor)
	mouth := geom.Rect{
		X: p.Position.X - p.Radius/2,
		Y: p.Position.Y - p.Radius/4,
		W: p.Radius,
		H: p.Radius / 2,
	}
	canvas.Arc(mouth, smileStart, smileEnd, faceStroke, config.PlayerEyeColor)
}
