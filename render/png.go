package render

import (
	"github.com/fogleman/gg"

	"github.com/katalvlaran/projgeom/pgplane"
)

// PNG rasterizes the given points and lines onto a fresh drawing
// context: white background, black lines, red point markers. The
// context is returned so callers can keep drawing before encoding.
func PNG(canvas Canvas, points []pgplane.PgPoint, lines []pgplane.PgLine) *gg.Context {
	ctx := gg.NewContext(canvas.Width, canvas.Height)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	ctx.SetRGB(0, 0, 0)
	ctx.SetLineWidth(1.5)
	for _, l := range lines {
		x1, y1, x2, y2, ok := canvas.lineEndpoints(l)
		if !ok {
			continue
		}
		ctx.DrawLine(x1, y1, x2, y2)
		ctx.Stroke()
	}

	ctx.SetRGB(0.8, 0, 0)
	for _, p := range points {
		x, y, ok := canvas.Project(p)
		if !ok {
			continue
		}
		ctx.DrawCircle(x, y, 3)
		ctx.Fill()
	}

	return ctx
}

// SavePNG rasterizes like PNG and writes the image to path.
func SavePNG(path string, canvas Canvas, points []pgplane.PgPoint, lines []pgplane.PgLine) error {
	return PNG(canvas, points, lines).SavePNG(path)
}
