// Package ckplane Euclidean model. The Euclidean polarity is singular:
// every point maps to the line at infinity, and a line maps to its
// direction (the point at infinity of its perpendicular family). That
// degeneracy is exactly what makes parallels exist, so this model also
// carries the parallelism and midpoint helpers.
package ckplane

import "github.com/katalvlaran/projgeom/homog"

// euclidLInf is the line at infinity [0 : 0 : 1], the constant polar of
// every Euclidean point.
var euclidLInf = homog.Coord{0, 0, 1}

// Euclidean is the degenerate polarity of Euclidean geometry.
type Euclidean struct{}

// PointPolar returns the line at infinity regardless of the point.
func (Euclidean) PointPolar(homog.Coord) homog.Coord { return euclidLInf }

// LinePolar drops the constant term: the pole of [a, b, c] is the point
// at infinity [a : b : 0], the direction normal to the line.
func (Euclidean) LinePolar(c homog.Coord) homog.Coord {
	return homog.Coord{c[0], c[1], 0}
}

// EuclidPoint is a point of the Euclidean plane.
type EuclidPoint = Point[Euclidean]

// EuclidLine is a line of the Euclidean plane.
type EuclidLine = Line[Euclidean]

// EuclidIsParallel reports whether two Euclidean lines are parallel:
// their normal directions are proportional (planar cross product of the
// leading coefficient pairs vanishes).
func EuclidIsParallel(l1, l2 EuclidLine) bool {
	return homog.Cross2(l1.Coord.AffinePart(), l2.Coord.AffinePart()) == 0
}

// EuclidIsPerpendicular reports whether two Euclidean lines are
// perpendicular: their normal directions are orthogonal (planar dot
// product of the leading coefficient pairs vanishes). Sharper than the
// generic IsPerpendicular, which degenerates under the singular
// Euclidean polarity.
func EuclidIsPerpendicular(l1, l2 EuclidLine) bool {
	return homog.Dot2(l1.Coord.AffinePart(), l2.Coord.AffinePart()) == 0
}

// EuclidMidpoint returns the midpoint of p and q: each point weighted by
// the other's homogeneous coordinate, so the result is exact for any
// nonzero weights.
func EuclidMidpoint(p, q EuclidPoint) EuclidPoint {
	return p.Parametrize(q.Coord[2], q, p.Coord[2])
}
