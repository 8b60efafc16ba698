package scene

import "math"

// Hit tolerances, in pixels. Generous on purpose: a shape with a
// zero-area bounding box (a horizontal line, a single-point stroke) must
// still be clickable.
const (
	boxHitMargin    = 10
	strokeHitMargin = 15
)

// HitTest returns the topmost element under p, searching in reverse
// paint order so the most recently drawn element wins.
func (s Scene) HitTest(p Point) (Element, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].hit(p) {
			return s[i], true
		}
	}
	return Element{}, false
}

func (e Element) hit(p Point) bool {
	switch e.Type {
	case TypeCircle:
		return distance(p, Point{X: e.X, Y: e.Y}) <= e.Radius+boxHitMargin
	case TypePen, TypeEraser:
		for _, q := range e.Points {
			if distance(p, q) <= strokeHitMargin {
				return true
			}
		}
		return false
	default:
		x, y, w, h := e.Bounds()
		return p.X >= x-boxHitMargin && p.X <= x+w+boxHitMargin &&
			p.Y >= y-boxHitMargin && p.Y <= y+h+boxHitMargin
	}
}

func distance(a, b Point) float32 {
	return float32(math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y)))
}
