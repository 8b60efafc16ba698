package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// RegisterShortcuts wires the global key bindings onto the window
// canvas. Undo/redo go through Fyne's shortcut table so they match the
// platform modifier; the plain tool keys arrive via SetOnTypedKey, which
// only fires for unmodified keys, so holding the undo modifier can never
// switch tools.
func RegisterShortcuts(w fyne.Window, b *BoardWidget) {
	c := w.Canvas()

	c.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyZ,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) { b.Undo() })

	c.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyZ,
		Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift,
	}, func(fyne.Shortcut) { b.Redo() })

	c.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyY,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) { b.Redo() })

	c.SetOnTypedKey(b.handleTypedKey)
}

func (b *BoardWidget) handleTypedKey(e *fyne.KeyEvent) {
	switch e.Name {
	case fyne.KeyP:
		b.SetTool(ToolPen)
	case fyne.KeyE:
		b.SetTool(ToolEraser)
	case fyne.KeyR:
		b.SetTool(ToolRectangle)
	case fyne.KeyC:
		b.SetTool(ToolCircle)
	case fyne.KeyL:
		b.SetTool(ToolLine)
	case fyne.KeyS:
		b.SetTool(ToolSelect)
	case fyne.KeyDelete, fyne.KeyBackspace:
		b.DeleteSelected()
	}
}
