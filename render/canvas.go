package render

import (
	"math"

	"github.com/katalvlaran/projgeom/pgplane"
)

// Canvas maps affine readings of homogeneous coordinates onto a screen
// rectangle. The world origin lands at the canvas center and the y axis
// points up, as on paper.
type Canvas struct {
	// Width and Height are the pixel dimensions.
	Width  int
	Height int
	// Scale is the number of pixels per world unit.
	Scale float64
}

// Project returns the screen position of p. The ok result is false for
// points at infinity, which have no screen position.
func (c Canvas) Project(p pgplane.PgPoint) (float64, float64, bool) {
	if p.Coord[2] == 0 {
		return 0, 0, false
	}

	x := float64(p.Coord[0]) / float64(p.Coord[2])
	y := float64(p.Coord[1]) / float64(p.Coord[2])

	return float64(c.Width)/2 + x*c.Scale, float64(c.Height)/2 - y*c.Scale, true
}

// span is the world-coordinate half-diagonal of the canvas, the reach a
// drawn line needs to cross the whole visible area.
func (c Canvas) span() float64 {
	w := float64(c.Width) / (2 * c.Scale)
	h := float64(c.Height) / (2 * c.Scale)

	return math.Hypot(w, h)
}

// lineEndpoints returns two far-apart screen positions on l, spanning
// the visible area. The ok result is false for the line at infinity.
func (c Canvas) lineEndpoints(l pgplane.PgLine) (x1, y1, x2, y2 float64, ok bool) {
	a := float64(l.Coord[0])
	b := float64(l.Coord[1])
	cc := float64(l.Coord[2])
	if a == 0 && b == 0 {
		return 0, 0, 0, 0, false
	}

	s := c.span()
	var wx1, wy1, wx2, wy2 float64
	if math.Abs(b) >= math.Abs(a) {
		// More horizontal: walk x and solve for y.
		wx1, wx2 = -s, s
		wy1 = -(cc + a*wx1) / b
		wy2 = -(cc + a*wx2) / b
	} else {
		// More vertical: walk y and solve for x.
		wy1, wy2 = -s, s
		wx1 = -(cc + b*wy1) / a
		wx2 = -(cc + b*wy2) / a
	}

	x1 = float64(c.Width)/2 + wx1*c.Scale
	y1 = float64(c.Height)/2 - wy1*c.Scale
	x2 = float64(c.Width)/2 + wx2*c.Scale
	y2 = float64(c.Height)/2 - wy2*c.Scale

	return x1, y1, x2, y2, true
}
