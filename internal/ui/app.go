package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/HyperSoWeak/whiteboard/internal/export"
)

// RunApp builds the window, wires the toolbar, shortcuts and the export
// dialog, and runs the event loop until the window closes.
func RunApp() {
	myApp := app.New()
	myWindow := myApp.NewWindow("Whiteboard")
	myWindow.Resize(fyne.NewSize(1024, 768))

	board := NewBoardWidget()
	status := widget.NewLabel("Ready")
	board.OnStatus = status.SetText

	toolbar := NewToolbar(board, func() {
		dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, myWindow)
				return
			}
			if writer == nil {
				return // cancelled
			}
			defer writer.Close()
			if err := export.PDF(writer, board.Scene()); err != nil {
				log.Printf("[export] %v", err)
				dialog.ShowError(err, myWindow)
				return
			}
			status.SetText("Exported " + writer.URI().Name())
		}, myWindow)
	})

	content := container.NewBorder(toolbar, status, nil, nil, board)
	myWindow.SetContent(content)

	RegisterShortcuts(myWindow, board)

	myWindow.ShowAndRun()
}
