// pkg/render/arena_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ArenaRenderer draws the grid background. The grid never changes, so it is
// rendered once into an image and blitted every frame.
type ArenaRenderer struct {
	width, height int
	spacing       int
	colors        ArenaColors
	strokeImg     *ebiten.Image
	strokeVs      []ebiten.Vertex
	strokeIs      []uint16
	mapImage      *ebiten.Image // предрендеренный фон
}

func NewArenaRenderer(width, height, spacing int, colors ArenaColors) *ArenaRenderer {
	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	r := &ArenaRenderer{
		width:     width,
		height:    height,
		spacing:   spacing,
		colors:    colors,
		strokeImg: strokeImg,
		mapImage:  ebiten.NewImage(width, height),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage redraws the cached background.
func (r *ArenaRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)

	path := vector.Path{}
	for _, x := range GridLines(r.width, r.spacing) {
		path.MoveTo(float32(x), 0)
		path.LineTo(float32(x), float32(r.height))
	}
	for _, y := range GridLines(r.height, r.spacing) {
		path.MoveTo(0, float32(y))
		path.LineTo(float32(r.width), float32(y))
	}

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.colors.GridWidth,
	})
	paintVertices(r.strokeVs, r.colors.GridColor)
	r.mapImage.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Draw blits the background onto screen.
func (r *ArenaRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

// GridLines returns the offsets of grid lines from 0 up to (not including) extent.
func GridLines(extent, spacing int) []int {
	if spacing <= 0 {
		return nil
	}
	lines := make([]int, 0, extent/spacing+1)
	for v := 0; v < extent; v += spacing {
		lines = append(lines, v)
	}
	return lines
}
