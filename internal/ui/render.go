package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/HyperSoWeak/whiteboard/internal/scene"
)

const (
	// fallbackSelectionBox is the side of the box drawn around a
	// selected element whose own bounds have no extent (a dot, a
	// perfectly straight horizontal or vertical stroke).
	fallbackSelectionBox = 20

	dashLength = 6
	dashGap    = 4
)

var selectionColor = color.NRGBA{R: 0, G: 120, B: 215, A: 255}

// boardRenderer repaints the whole board from the scene on every
// refresh: background first, committed elements in paint order, the
// in-progress element on top, then the selection overlay. Resizing only
// resizes the background; the vector objects are rebuilt, so there is no
// bitmap to stretch.
type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func newBoardRenderer(b *BoardWidget) *boardRenderer {
	return &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(backgroundColor),
	}
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}
	for _, el := range r.board.scene {
		objects = append(objects, elementObjects(el)...)
	}
	if r.board.current != nil {
		objects = append(objects, elementObjects(*r.board.current)...)
	}
	if i := r.board.scene.IndexOf(r.board.selectedID); i >= 0 {
		objects = append(objects, selectionObjects(r.board.scene[i])...)
	}
	return objects
}

func (r *boardRenderer) Refresh() { canvas.Refresh(r.board) }

func (r *boardRenderer) Layout(size fyne.Size) { r.background.Resize(size) }

func (r *boardRenderer) MinSize() fyne.Size { return fyne.NewSize(300, 300) }

func (r *boardRenderer) Destroy() {}

// elementObjects converts one element into Fyne canvas primitives.
func elementObjects(el scene.Element) []fyne.CanvasObject {
	switch el.Type {
	case scene.TypePen, scene.TypeEraser:
		return strokeObjects(el)
	case scene.TypeRectangle:
		rect := canvas.NewRectangle(color.Transparent)
		rect.StrokeColor = el.Color
		rect.StrokeWidth = el.StrokeWidth
		x, y, w, h := el.Bounds()
		rect.Move(fyne.NewPos(x, y))
		rect.Resize(fyne.NewSize(w, h))
		return []fyne.CanvasObject{rect}
	case scene.TypeCircle:
		circle := canvas.NewCircle(color.Transparent)
		circle.StrokeColor = el.Color
		circle.StrokeWidth = el.StrokeWidth
		circle.Position1 = fyne.NewPos(el.X-el.Radius, el.Y-el.Radius)
		circle.Position2 = fyne.NewPos(el.X+el.Radius, el.Y+el.Radius)
		return []fyne.CanvasObject{circle}
	case scene.TypeLine:
		line := canvas.NewLine(el.Color)
		line.StrokeWidth = el.StrokeWidth
		line.Position1 = fyne.NewPos(el.X, el.Y)
		line.Position2 = fyne.NewPos(el.X+el.Width, el.Y+el.Height)
		return []fyne.CanvasObject{line}
	}
	return nil
}

// strokeObjects renders a freehand path as one line per segment, the
// same way the segments were sampled. A single-point path becomes a dot
// sized to the stroke width so a click still leaves a mark.
func strokeObjects(el scene.Element) []fyne.CanvasObject {
	if len(el.Points) == 1 {
		p := el.Points[0]
		dot := canvas.NewCircle(el.Color)
		r := el.StrokeWidth / 2
		dot.Position1 = fyne.NewPos(p.X-r, p.Y-r)
		dot.Position2 = fyne.NewPos(p.X+r, p.Y+r)
		return []fyne.CanvasObject{dot}
	}
	objects := make([]fyne.CanvasObject, 0, len(el.Points))
	for i := 0; i < len(el.Points)-1; i++ {
		segment := canvas.NewLine(el.Color)
		segment.StrokeWidth = el.StrokeWidth
		segment.Position1 = fyne.NewPos(el.Points[i].X, el.Points[i].Y)
		segment.Position2 = fyne.NewPos(el.Points[i+1].X, el.Points[i+1].Y)
		objects = append(objects, segment)
	}
	return objects
}

// selectionObjects draws a dashed bounding box around the selected
// element. Fyne has no dashed stroke style, so the dashes are short line
// segments laid along each edge.
func selectionObjects(el scene.Element) []fyne.CanvasObject {
	x, y, w, h := el.Bounds()
	if w == 0 && h == 0 {
		x -= fallbackSelectionBox / 2
		y -= fallbackSelectionBox / 2
		w, h = fallbackSelectionBox, fallbackSelectionBox
	}

	var objects []fyne.CanvasObject
	objects = append(objects, dashedEdge(x, y, x+w, y)...)     // top
	objects = append(objects, dashedEdge(x, y+h, x+w, y+h)...) // bottom
	objects = append(objects, dashedEdge(x, y, x, y+h)...)     // left
	objects = append(objects, dashedEdge(x+w, y, x+w, y+h)...) // right
	return objects
}

// dashedEdge builds dash segments along a horizontal or vertical edge.
func dashedEdge(x1, y1, x2, y2 float32) []fyne.CanvasObject {
	dx, dy := x2-x1, y2-y1
	length := dx + dy // one of the two is always zero
	if length < 0 {
		length = -length
	}
	ux, uy := float32(0), float32(0)
	if dx != 0 {
		ux = dx / length
	} else if dy != 0 {
		uy = dy / length
	}

	var objects []fyne.CanvasObject
	for pos := float32(0); pos < length || len(objects) == 0; pos += dashLength + dashGap {
		end := min(pos+dashLength, length)
		dash := canvas.NewLine(selectionColor)
		dash.StrokeWidth = 1
		dash.Position1 = fyne.NewPos(x1+ux*pos, y1+uy*pos)
		dash.Position2 = fyne.NewPos(x1+ux*end, y1+uy*end)
		objects = append(objects, dash)
	}
	return objects
}
