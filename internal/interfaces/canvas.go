// internal/interfaces/canvas.go
package interfaces

import (
	"image/color"

	"garden-guardians/pkg/geom"
)

// Canvas is the render target. All coordinates are arena coordinates.
type Canvas interface {
	Fill(clr color.Color)
	FillCircle(center geom.Vec2, radius float64, clr color.Color)
	FillEllipse(bounds geom.Rect, clr color.Color)
	Line(from, to geom.Vec2, width float64, clr color.Color)
	StrokeRect(bounds geom.Rect, width float64, clr color.Color)
	// Arc strokes the part of the ellipse inscribed in bounds between the
	// two angles (radians, counter-clockwise as seen on screen).
	Arc(bounds geom.Rect, start, end, width float64, clr color.Color)
	// Text draws s with its top-left corner at (x, y).
	Text(s string, size int, x, y float64, clr color.Color)
	MeasureText(s string, size int) (w, h float64)
}
