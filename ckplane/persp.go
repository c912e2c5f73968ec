// Package ckplane perspective model: a Cayley-Klein geometry whose
// absolute is a pair of fixed points on a distinguished line, standing
// in for the circular points at infinity. Unlike the Euclidean model it
// keeps the line polarity non-constant, computed by parametrizing
// between the two absolute points.
package ckplane

import "github.com/katalvlaran/projgeom/homog"

// Absolute elements of the perspective model.
var (
	// perspLInf is the distinguished "infinity" line [0 : -1 : 1].
	perspLInf = homog.Coord{0, -1, 1}
	// perspIRe and perspIIm are the two absolute points spanning it.
	perspIRe = homog.Coord{0, 1, 1}
	perspIIm = homog.Coord{1, 0, 0}
)

// Perspective is the polarity of the perspective model.
type Perspective struct{}

// PointPolar returns the distinguished infinity line regardless of the
// point.
func (Perspective) PointPolar(homog.Coord) homog.Coord { return perspLInf }

// LinePolar returns the pole of the line: the combination of the two
// absolute points weighted by their measurements against the line.
func (Perspective) LinePolar(c homog.Coord) homog.Coord {
	alpha := homog.Dot(perspIRe, c)
	beta := homog.Dot(perspIIm, c)

	return homog.Plucker(alpha, perspIRe, beta, perspIIm)
}

// PerspPoint is a point of the perspective model.
type PerspPoint = Point[Perspective]

// PerspLine is a line of the perspective model.
type PerspLine = Line[Perspective]

// PerspLineInfinity returns the distinguished infinity line of the
// model.
func PerspLineInfinity() PerspLine {
	return PerspLine{Coord: perspLInf}
}

// PerspIsParallel reports whether two lines of the perspective model are
// parallel: their intersection lies on the distinguished infinity line.
func PerspIsParallel(l1, l2 PerspLine) bool {
	return homog.Dot(perspLInf, l1.Meet(l2).Coord) == 0
}

// PerspMidpoint returns the midpoint of p and q with respect to the
// model's infinity line: each point weighted by the other's measurement
// against it.
func PerspMidpoint(p, q PerspPoint) PerspPoint {
	alpha := homog.Dot(perspLInf, q.Coord)
	beta := homog.Dot(perspLInf, p.Coord)

	return p.Parametrize(alpha, q, beta)
}
