// pkg/render/color.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ArenaColors holds the colours of the static arena background.
type ArenaColors struct {
	BackgroundColor color.RGBA
	GridColor       color.RGBA
	GridWidth       float32
}

// paintVertices sets the (premultiplied) colour of every vertex.
func paintVertices(vs []ebiten.Vertex, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}
