package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/HyperSoWeak/whiteboard/internal/scene"
)

// Tool is the active pointer tool. Every tool except ToolSelect creates a
// new element on pointer-down.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
	ToolRectangle
	ToolCircle
	ToolLine
	ToolSelect
)

// elementType maps a drawing tool to the element it creates. ToolSelect
// never reaches this.
func (t Tool) elementType() scene.ElementType {
	switch t {
	case ToolEraser:
		return scene.TypeEraser
	case ToolRectangle:
		return scene.TypeRectangle
	case ToolCircle:
		return scene.TypeCircle
	case ToolLine:
		return scene.TypeLine
	default:
		return scene.TypePen
	}
}

// --- Custom Widget for Color Swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- The Main Toolbar ---

// NewToolbar builds the tool/color/width strip above the board. onExport
// is called when the export action is tapped; the app shell owns the
// save dialog so the toolbar stays window-free.
func NewToolbar(board *BoardWidget, onExport func()) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() { board.SetTool(ToolPen) }),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { board.SetTool(ToolEraser) }),
		widget.NewToolbarAction(theme.CheckButtonIcon(), func() { board.SetTool(ToolRectangle) }),
		widget.NewToolbarAction(theme.RadioButtonIcon(), func() { board.SetTool(ToolCircle) }),
		widget.NewToolbarAction(theme.ContentRemoveIcon(), func() { board.SetTool(ToolLine) }),
		widget.NewToolbarAction(theme.SearchIcon(), func() { board.SetTool(ToolSelect) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), board.Redo),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), board.Clear),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			if onExport != nil {
				onExport()
			}
		}),
	)

	// --- Color Palette ---
	onColorTapped := func(c color.NRGBA) {
		board.SetColor(c)
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.NRGBA{A: 255}, onColorTapped),                 // Black
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),         // Red
		newColorSwatch(color.NRGBA{G: 180, A: 255}, onColorTapped),         // Green
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),         // Blue
		newColorSwatch(color.NRGBA{R: 255, G: 200, A: 255}, onColorTapped), // Orange
	)

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 30.0)
	strokeSlider.SetValue(3.0)
	strokeSlider.OnChanged = func(val float64) {
		board.SetStroke(float32(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}
