package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func black() color.NRGBA { return color.NRGBA{A: 255} }

func TestHitTestCircleTolerance(t *testing.T) {
	c := NewElement(TypeCircle, Point{X: 100, Y: 100}, black(), 2)
	c.Radius = 30
	s := Scene{c}

	// Exactly radius + margin away hits, one more pixel misses.
	_, ok := s.HitTest(Point{X: 140, Y: 100})
	assert.True(t, ok)
	_, ok = s.HitTest(Point{X: 141, Y: 100})
	assert.False(t, ok)
}

func TestHitTestStrokeTolerance(t *testing.T) {
	e := NewElement(TypePen, Point{X: 50, Y: 50}, black(), 2)
	e.Resize(Point{X: 80, Y: 50})
	s := Scene{e}

	_, ok := s.HitTest(Point{X: 80, Y: 64})
	assert.True(t, ok)
	_, ok = s.HitTest(Point{X: 80, Y: 70})
	assert.False(t, ok)
}

func TestHitTestDegenerateLine(t *testing.T) {
	// Perfectly horizontal line: bounding box height is zero, the
	// margin must keep it selectable.
	l := NewElement(TypeLine, Point{X: 10, Y: 40}, black(), 2)
	l.Resize(Point{X: 110, Y: 40})
	s := Scene{l}

	_, ok := s.HitTest(Point{X: 60, Y: 48})
	assert.True(t, ok)
	_, ok = s.HitTest(Point{X: 60, Y: 51})
	assert.False(t, ok)
}

func TestHitTestNegativeExtentRectangle(t *testing.T) {
	// Dragged up-left: width/height are negative until normalized.
	r := NewElement(TypeRectangle, Point{X: 100, Y: 100}, black(), 2)
	r.Resize(Point{X: 40, Y: 60})
	s := Scene{r}

	_, ok := s.HitTest(Point{X: 70, Y: 80})
	assert.True(t, ok)
}

func TestHitTestTopmostFirst(t *testing.T) {
	a := NewElement(TypeRectangle, Point{X: 10, Y: 10}, black(), 2)
	a.Resize(Point{X: 100, Y: 100})
	b := NewElement(TypeRectangle, Point{X: 40, Y: 40}, black(), 2)
	b.Resize(Point{X: 140, Y: 140})
	s := Scene{a, b}

	hit, ok := s.HitTest(Point{X: 60, Y: 60})
	require.True(t, ok)
	assert.Equal(t, b.ID, hit.ID, "most recently drawn element should win")

	hit, ok = s.HitTest(Point{X: 15, Y: 15})
	require.True(t, ok)
	assert.Equal(t, a.ID, hit.ID)
}

func TestHitTestEmptyScene(t *testing.T) {
	var s Scene
	_, ok := s.HitTest(Point{X: 1, Y: 1})
	assert.False(t, ok)
}
