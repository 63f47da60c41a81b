// internal/component/enemy.go
package component

import (
	"image/color"

	"garden-guardians/internal/defs"
	"garden-guardians/internal/types"
	"garden-guardians/pkg/geom"
)

// Enemy is a pursuing garden pest.
type Enemy struct {
	ID        types.EntityID
	Name      string // archetype
	Position  geom.Vec2
	Velocity  geom.Vec2
	Speed     float64
	Health    float64
	MaxHealth float64
	Color     color.RGBA
	Size      float64
	Removed   bool // помечен к удалению в конце кадра
}

// NewEnemy spawns an archetype at pos.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, pos geom.Vec2) *Enemy {
	return &Enemy{
		ID:        id,
		Name:      def.Name,
		Position:  pos,
		Speed:     def.Speed,
		Health:    def.Health,
		MaxHealth: def.Health,
		Color:     def.Color.RGBA(),
		Size:      def.Size,
	}
}

// Update steers straight at target. When already on top of it the enemy stands still.
func (e *Enemy) Update(dt float64, target geom.Vec2) {
	dir := target.Sub(e.Position).Normalize()
	e.Velocity = dir.Scale(e.Speed)
	e.Position = e.Position.Add(e.Velocity.Scale(dt))
}

// Box is the enemy's square bounding box.
func (e *Enemy) Box() geom.Rect {
	return geom.RectAround(e.Position, e.Size, e.Size)
}

func (e *Enemy) TakeDamage(amount float64) {
	e.Health -= amount
}

func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}
