// pkg/render/canvas.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"garden-guardians/pkg/geom"
)

const ellipseSegments = 32

// FaceSource hands out font faces by pixel size.
type FaceSource interface {
	Face(size int) font.Face
}

// EbitenCanvas draws shape primitives onto an ebiten image.
type EbitenCanvas struct {
	target  *ebiten.Image
	faces   FaceSource
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewEbitenCanvas(faces FaceSource) *EbitenCanvas {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &EbitenCanvas{
		faces:   faces,
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, ellipseSegments*4),
		is:      make([]uint16, 0, ellipseSegments*6),
	}
}

// SetTarget points the canvas at the image to draw on this frame.
func (c *EbitenCanvas) SetTarget(target *ebiten.Image) {
	c.target = target
}

func (c *EbitenCanvas) Fill(clr color.Color) {
	c.target.Fill(clr)
}

func (c *EbitenCanvas) FillCircle(center geom.Vec2, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(c.target, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

func (c *EbitenCanvas) FillEllipse(bounds geom.Rect, clr color.Color) {
	path := EllipsePath(bounds, 0, 2*math.Pi, ellipseSegments)
	path.Close()
	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.drawTriangles(clr)
}

func (c *EbitenCanvas) Line(from, to geom.Vec2, width float64, clr color.Color) {
	vector.StrokeLine(c.target, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), clr, true)
}

func (c *EbitenCanvas) StrokeRect(bounds geom.Rect, width float64, clr color.Color) {
	vector.StrokeRect(c.target, float32(bounds.X), float32(bounds.Y), float32(bounds.W), float32(bounds.H), float32(width), clr, true)
}

func (c *EbitenCanvas) Arc(bounds geom.Rect, start, end, width float64, clr color.Color) {
	path := EllipsePath(bounds, start, end, ellipseSegments/2)
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width: float32(width),
	})
	c.drawTriangles(clr)
}

func (c *EbitenCanvas) Text(s string, size int, x, y float64, clr color.Color) {
	face := c.faces.Face(size)
	// text.Draw ставит текст по базовой линии
	baseline := int(y) + face.Metrics().Ascent.Ceil()
	text.Draw(c.target, s, face, int(x), baseline, clr)
}

func (c *EbitenCanvas) MeasureText(s string, size int) (float64, float64) {
	face := c.faces.Face(size)
	return float64(font.MeasureString(face, s).Ceil()), float64(face.Metrics().Height.Ceil())
}

func (c *EbitenCanvas) drawTriangles(clr color.Color) {
	paintVertices(c.vs, clr)
	c.target.DrawTriangles(c.vs, c.is, c.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// EllipsePath traces the ellipse inscribed in bounds from start to end
// (radians, counter-clockwise on screen) with the given number of segments.
func EllipsePath(bounds geom.Rect, start, end float64, segments int) *vector.Path {
	path := &vector.Path{}
	for i, p := range EllipsePoints(bounds, start, end, segments) {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	return path
}

// EllipsePoints samples segments+1 points of the ellipse arc. Screen y grows
// downwards, so positive angles go up.
func EllipsePoints(bounds geom.Rect, start, end float64, segments int) []geom.Vec2 {
	if segments < 1 {
		segments = 1
	}
	c := bounds.Center()
	rx, ry := bounds.W/2, bounds.H/2
	step := (end - start) / float64(segments)

	points := make([]geom.Vec2, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := start + float64(i)*step
		points = append(points, geom.V(c.X+rx*math.Cos(a), c.Y-ry*math.Sin(a)))
	}
	return points
}
