// Package ckplane custom Cayley-Klein model with asymmetric point and
// line coefficients; kept as a worked example that the generic layer
// never assumes a symmetric polarity.
package ckplane

import "github.com/katalvlaran/projgeom/homog"

// MyCK is a custom polarity with distinct point and line coefficient
// triples. The two maps compose to a scalar multiple of the identity
// ([-2,1,-2] followed by [-1,2,-1] gives factor 2), so perpendicularity
// remains well defined.
type MyCK struct{}

// PointPolar returns [-2x, y, -2z].
func (MyCK) PointPolar(c homog.Coord) homog.Coord {
	return homog.Coord{-2 * c[0], c[1], -2 * c[2]}
}

// LinePolar returns [-a, 2b, -c].
func (MyCK) LinePolar(c homog.Coord) homog.Coord {
	return homog.Coord{-c[0], 2 * c[1], -c[2]}
}

// MyCKPoint is a point of the custom model.
type MyCKPoint = Point[MyCK]

// MyCKLine is a line of the custom model.
type MyCKLine = Line[MyCK]
