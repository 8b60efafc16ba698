// Package export renders a committed scene to PDF. One-way only: there
// is no load path back into the board.
package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/HyperSoWeak/whiteboard/internal/scene"
)

// scale maps canvas pixels to PDF points so a typical board fits an A4
// landscape page.
const scale = 0.5

// PDF replays the scene onto a single page in paint order, so eraser
// strokes cover earlier elements in the output exactly as they do on
// screen.
func PDF(w io.Writer, s scene.Scene) error {
	p := gofpdf.New("L", "pt", "A4", "")
	p.AddPage()

	for _, el := range s {
		p.SetDrawColor(int(el.Color.R), int(el.Color.G), int(el.Color.B))
		p.SetLineWidth(float64(el.StrokeWidth) * scale)

		switch el.Type {
		case scene.TypePen, scene.TypeEraser:
			for i := 1; i < len(el.Points); i++ {
				p.Line(
					float64(el.Points[i-1].X)*scale, float64(el.Points[i-1].Y)*scale,
					float64(el.Points[i].X)*scale, float64(el.Points[i].Y)*scale,
				)
			}
		case scene.TypeRectangle:
			x, y, bw, bh := el.Bounds()
			p.Rect(float64(x)*scale, float64(y)*scale, float64(bw)*scale, float64(bh)*scale, "D")
		case scene.TypeCircle:
			p.Circle(float64(el.X)*scale, float64(el.Y)*scale, float64(el.Radius)*scale, "D")
		case scene.TypeLine:
			p.Line(
				float64(el.X)*scale, float64(el.Y)*scale,
				float64(el.X+el.Width)*scale, float64(el.Y+el.Height)*scale,
			)
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
