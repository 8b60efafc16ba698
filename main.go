package main

import "github.com/HyperSoWeak/whiteboard/internal/ui"

func main() {
	ui.RunApp()
}
