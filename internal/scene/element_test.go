package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateStrokeRigid(t *testing.T) {
	e := NewElement(TypePen, Point{X: 10, Y: 10}, black(), 2)
	e.Resize(Point{X: 20, Y: 15})
	e.Resize(Point{X: 30, Y: 25})
	before := e.Clone()

	e.Translate(7, -3)

	require.Len(t, e.Points, len(before.Points))
	for i, p := range e.Points {
		assert.Equal(t, before.Points[i].X+7, p.X)
		assert.Equal(t, before.Points[i].Y-3, p.Y)
	}
}

func TestMoveToUsesOrigin(t *testing.T) {
	e := NewElement(TypeRectangle, Point{X: 10, Y: 10}, black(), 2)
	e.Resize(Point{X: 110, Y: 60})

	e.MoveTo(Point{X: 70, Y: 65})

	assert.Equal(t, float32(70), e.X)
	assert.Equal(t, float32(65), e.Y)
	assert.Equal(t, float32(100), e.Width, "extent must survive a move")
	assert.Equal(t, float32(50), e.Height)
}

func TestResizeCircleRadius(t *testing.T) {
	e := NewElement(TypeCircle, Point{X: 0, Y: 0}, black(), 2)
	e.Resize(Point{X: 3, Y: 4})
	assert.Equal(t, float32(5), e.Radius)

	// Center stays fixed while dragging.
	assert.Equal(t, float32(0), e.X)
	assert.Equal(t, float32(0), e.Y)
}

func TestBoundsNormalized(t *testing.T) {
	e := NewElement(TypeRectangle, Point{X: 100, Y: 100}, black(), 2)
	e.Resize(Point{X: 40, Y: 70})

	x, y, w, h := e.Bounds()
	assert.Equal(t, float32(40), x)
	assert.Equal(t, float32(70), y)
	assert.Equal(t, float32(60), w)
	assert.Equal(t, float32(30), h)
}

func TestCloneIsolatesPath(t *testing.T) {
	e := NewElement(TypePen, Point{X: 1, Y: 1}, black(), 2)
	e.Resize(Point{X: 2, Y: 2})

	c := e.Clone()
	c.Points[0].X = 99

	assert.Equal(t, float32(1), e.Points[0].X)
}

func TestSceneDelete(t *testing.T) {
	a := NewElement(TypePen, Point{X: 1, Y: 1}, black(), 2)
	b := NewElement(TypeLine, Point{X: 5, Y: 5}, black(), 2)
	s := Scene{a, b}

	require.True(t, s.Delete(a.ID))
	require.Len(t, s, 1)
	assert.Equal(t, b.ID, s[0].ID)

	assert.False(t, s.Delete("no-such-id"))
	assert.Len(t, s, 1)
}
