package interfaces

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"garden-guardians/pkg/geom"
)

func TestMovementDirection(t *testing.T) {
	tests := []struct {
		name string
		in   Movement
		want geom.Vec2
	}{
		{"idle", Movement{}, geom.Vec2{}},
		{"up", Movement{Up: true}, geom.V(0, -1)},
		{"right", Movement{Right: true}, geom.V(1, 0)},
		{"opposite keys cancel", Movement{Left: true, Right: true}, geom.Vec2{}},
		{"diagonal", Movement{Down: true, Right: true}, geom.V(math.Sqrt2/2, math.Sqrt2/2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Direction()
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}
