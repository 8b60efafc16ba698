package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/HyperSoWeak/whiteboard/internal/history"
	"github.com/HyperSoWeak/whiteboard/internal/scene"
)

// backgroundColor is the board surface color. Eraser strokes are regular
// elements drawn in this color: they cover whatever was painted before
// them, stay selectable and undoable, and do not erase pixels. That only
// reads as "erasing" against the flat background; it is a deliberate
// simplification, not compositing erasure.
var backgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// action is the transient interaction state. It never enters history.
type action int

const (
	actionNone action = iota
	actionDrawing
	actionMoving
)

// BoardWidget is the whiteboard surface: it owns the committed scene,
// the undo history, the active tool/style, and the pointer state
// machine. All mutation happens on the Fyne event goroutine; after every
// state change the widget refreshes itself so the renderer repaints the
// full scene.
type BoardWidget struct {
	widget.BaseWidget

	scene   scene.Scene
	history *history.Log

	tool          Tool
	currentColor  color.NRGBA
	currentStroke float32

	action     action
	current    *scene.Element // element being drawn, not yet committed
	selectedID string
	dragOffX   float32 // pointer minus element origin at grab time
	dragOffY   float32

	OnStatus func(text string)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget() *BoardWidget {
	b := &BoardWidget{
		history:       history.NewLog(),
		tool:          ToolPen,
		currentColor:  color.NRGBA{A: 255},
		currentStroke: 3.0,
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return newBoardRenderer(b)
}

// Scene returns a copy of the committed scene, e.g. for export.
func (b *BoardWidget) Scene() scene.Scene {
	return b.scene.Clone()
}

func (b *BoardWidget) CurrentTool() Tool { return b.tool }

// Selected returns the ID of the selected element, or "".
func (b *BoardWidget) Selected() string { return b.selectedID }

func (b *BoardWidget) SetTool(t Tool) {
	b.tool = t
	b.Refresh()
}

func (b *BoardWidget) SetColor(c color.NRGBA) { b.currentColor = c }

func (b *BoardWidget) SetStroke(w float32) { b.currentStroke = w }

// --- Pointer state machine ---

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || b.action != actionNone {
		return
	}
	p := scene.Point{X: e.Position.X, Y: e.Position.Y}

	if b.tool == ToolSelect {
		el, ok := b.scene.HitTest(p)
		if !ok {
			b.selectedID = ""
			b.Refresh()
			return
		}
		o := el.Origin()
		b.selectedID = el.ID
		b.dragOffX = p.X - o.X
		b.dragOffY = p.Y - o.Y
		b.action = actionMoving
		b.Refresh()
		return
	}

	c := b.currentColor
	if b.tool == ToolEraser {
		c = backgroundColor
	}
	el := scene.NewElement(b.tool.elementType(), p, c, b.currentStroke)
	b.current = &el
	b.action = actionDrawing
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	p := scene.Point{X: e.Position.X, Y: e.Position.Y}

	switch b.action {
	case actionDrawing:
		if b.current != nil {
			b.current.Resize(p)
			b.Refresh()
		}
	case actionMoving:
		if i := b.scene.IndexOf(b.selectedID); i >= 0 {
			b.scene[i].MoveTo(scene.Point{X: p.X - b.dragOffX, Y: p.Y - b.dragOffY})
			b.Refresh()
		}
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.finishInteraction()
	}
}

// DragEnd fires alongside MouseUp when a drag was in progress;
// finishInteraction is idempotent so the double delivery is harmless.
func (b *BoardWidget) DragEnd() { b.finishInteraction() }

// MouseOut commits a draw or move in flight, so leaving the widget
// behaves like releasing the button.
func (b *BoardWidget) MouseOut() { b.finishInteraction() }

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

// finishInteraction closes the current draw or move and commits exactly
// one history entry for it.
func (b *BoardWidget) finishInteraction() {
	switch b.action {
	case actionDrawing:
		if b.current != nil {
			b.scene = append(b.scene, b.current.Clone())
			b.current = nil
			b.commit()
		}
	case actionMoving:
		b.commit()
	default:
		return
	}
	b.action = actionNone
	b.Refresh()
}

// --- Committed operations ---

// commit snapshots the live scene into history. Called once per
// completed user action, never on intermediate pointer moves.
func (b *BoardWidget) commit() {
	b.history.Commit(b.scene)
	log.Printf("[board] committed, %d elements", len(b.scene))
}

// Undo restores the previous snapshot. The selection is cleared because
// the selected element may not exist in the restored scene.
func (b *BoardWidget) Undo() {
	s, ok := b.history.Undo()
	if !ok {
		return
	}
	b.restore(s)
	b.status("Undo")
}

func (b *BoardWidget) Redo() {
	s, ok := b.history.Redo()
	if !ok {
		return
	}
	b.restore(s)
	b.status("Redo")
}

func (b *BoardWidget) restore(s scene.Scene) {
	b.scene = s
	b.selectedID = ""
	b.current = nil
	b.action = actionNone
	b.Refresh()
}

// DeleteSelected removes the selected element and commits. No-op
// without a selection.
func (b *BoardWidget) DeleteSelected() {
	if b.selectedID == "" {
		return
	}
	if b.scene.Delete(b.selectedID) {
		b.selectedID = ""
		b.commit()
		b.Refresh()
	}
}

// Clear wipes the board as a single undoable action.
func (b *BoardWidget) Clear() {
	if len(b.scene) == 0 {
		return
	}
	b.scene = scene.Scene{}
	b.selectedID = ""
	b.commit()
	b.Refresh()
	b.status("Cleared")
}

func (b *BoardWidget) status(text string) {
	if b.OnStatus != nil {
		b.OnStatus(text)
	}
}
