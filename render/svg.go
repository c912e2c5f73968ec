package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/projgeom/pgplane"
)

// SVG streams SVG elements for projective objects to an io.Writer.
// Objects without a finite image (points at infinity, the line at
// infinity) are skipped without error, matching Canvas.Project.
type SVG struct {
	canvas Canvas
	w      io.Writer
}

// NewSVG returns a writer emitting onto w with the given canvas
// mapping.
func NewSVG(w io.Writer, canvas Canvas) *SVG {
	return &SVG{canvas: canvas, w: w}
}

// WriteStart emits the opening svg element.
func (s *SVG) WriteStart() error {
	_, err := fmt.Fprintf(s.w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		s.canvas.Width, s.canvas.Height, s.canvas.Width, s.canvas.Height)

	return err
}

// WriteEnd emits the closing tag.
func (s *SVG) WriteEnd() error {
	_, err := io.WriteString(s.w, `</svg>`)
	return err
}

// WritePoint emits a filled circle at p.
func (s *SVG) WritePoint(p pgplane.PgPoint, color string, radius float64) error {
	x, y, ok := s.canvas.Project(p)
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(s.w,
		`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" />`,
		x, y, radius, color)

	return err
}

// WriteLine emits l as a segment spanning the visible canvas.
func (s *SVG) WriteLine(l pgplane.PgLine, color string, strokeWidth float64) error {
	x1, y1, x2, y2, ok := s.canvas.lineEndpoints(l)
	if !ok {
		return nil
	}

	return s.writeSegment(x1, y1, x2, y2, color, strokeWidth)
}

// WriteSegment emits the segment between two finite points. If either
// endpoint is at infinity nothing is written.
func (s *SVG) WriteSegment(p1, p2 pgplane.PgPoint, color string, strokeWidth float64) error {
	x1, y1, ok := s.canvas.Project(p1)
	if !ok {
		return nil
	}
	x2, y2, ok := s.canvas.Project(p2)
	if !ok {
		return nil
	}

	return s.writeSegment(x1, y1, x2, y2, color, strokeWidth)
}

func (s *SVG) writeSegment(x1, y1, x2, y2 float64, color string, strokeWidth float64) error {
	_, err := fmt.Fprintf(s.w,
		`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" />`,
		x1, y1, x2, y2, color, strokeWidth)

	return err
}
