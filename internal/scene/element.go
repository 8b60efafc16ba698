package scene

import (
	"image/color"
	"math"

	"github.com/google/uuid"
)

// ElementType identifies the drawing primitive an Element represents.
// Rendering and hit testing dispatch over this closed set.
type ElementType string

const (
	TypePen       ElementType = "pen"
	TypeEraser    ElementType = "eraser"
	TypeRectangle ElementType = "rectangle"
	TypeCircle    ElementType = "circle"
	TypeLine      ElementType = "line"
)

// Point is a coordinate in canvas-local pixel space.
type Point struct {
	X, Y float32
}

// Element is one drawable shape on the board. Which geometry fields are
// meaningful depends on Type: Points for pen/eraser strokes, X/Y plus
// Width/Height for rectangles and lines, X/Y (center) plus Radius for
// circles. Unused fields stay zero.
type Element struct {
	ID          string
	Type        ElementType
	Color       color.NRGBA
	StrokeWidth float32

	Points []Point
	X, Y   float32
	Width  float32
	Height float32
	Radius float32
}

// NewElement creates an element of the given type seeded at p with the
// current style. Freehand types start with a single-point path; shape
// types start with zero extent and grow while the pointer drags.
func NewElement(t ElementType, p Point, c color.NRGBA, strokeWidth float32) Element {
	e := Element{
		ID:          uuid.NewString(),
		Type:        t,
		Color:       c,
		StrokeWidth: strokeWidth,
		X:           p.X,
		Y:           p.Y,
	}
	if t == TypePen || t == TypeEraser {
		e.Points = []Point{p}
	}
	return e
}

// Clone returns a deep copy; the path slice is never shared.
func (e Element) Clone() Element {
	c := e
	if e.Points != nil {
		c.Points = make([]Point, len(e.Points))
		copy(c.Points, e.Points)
	}
	return c
}

// Origin is the reference point used for drag offsets: the first path
// point for freehand strokes, X/Y for everything else.
func (e Element) Origin() Point {
	if (e.Type == TypePen || e.Type == TypeEraser) && len(e.Points) > 0 {
		return e.Points[0]
	}
	return Point{X: e.X, Y: e.Y}
}

// MoveTo translates the element so its origin lands on p. Path points
// move rigidly by the same delta, so strokes keep their shape.
func (e *Element) MoveTo(p Point) {
	o := e.Origin()
	e.Translate(p.X-o.X, p.Y-o.Y)
}

// Translate shifts the whole element by (dx, dy).
func (e *Element) Translate(dx, dy float32) {
	e.X += dx
	e.Y += dy
	for i := range e.Points {
		e.Points[i].X += dx
		e.Points[i].Y += dy
	}
}

// Resize updates the in-progress geometry for the pointer at p: freehand
// strokes gain a path point, rectangles and lines recompute their extent
// from the fixed origin, circles recompute their radius as the distance
// from the fixed center.
func (e *Element) Resize(p Point) {
	switch e.Type {
	case TypePen, TypeEraser:
		e.Points = append(e.Points, p)
	case TypeRectangle, TypeLine:
		e.Width = p.X - e.X
		e.Height = p.Y - e.Y
	case TypeCircle:
		dx := float64(p.X - e.X)
		dy := float64(p.Y - e.Y)
		e.Radius = float32(math.Hypot(dx, dy))
	}
}

// Bounds returns the normalized axis-aligned bounding box. Width and
// height may be zero for degenerate shapes (a horizontal line, a dot).
func (e Element) Bounds() (x, y, w, h float32) {
	switch e.Type {
	case TypePen, TypeEraser:
		if len(e.Points) == 0 {
			return e.X, e.Y, 0, 0
		}
		minX, minY := e.Points[0].X, e.Points[0].Y
		maxX, maxY := minX, minY
		for _, p := range e.Points[1:] {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
		return minX, minY, maxX - minX, maxY - minY
	case TypeCircle:
		return e.X - e.Radius, e.Y - e.Radius, 2 * e.Radius, 2 * e.Radius
	default:
		x, y, w, h = e.X, e.Y, e.Width, e.Height
		if w < 0 {
			x, w = x+w, -w
		}
		if h < 0 {
			y, h = y+h, -h
		}
		return x, y, w, h
	}
}
