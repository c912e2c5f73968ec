// Package ckplane hyperbolic model: signature (+, +, -).
package ckplane

import "github.com/katalvlaran/projgeom/homog"

// Hyperbolic is the polarity of hyperbolic geometry: the last component
// flips sign under both polar maps.
type Hyperbolic struct{}

// PointPolar returns [x, y, -z].
func (Hyperbolic) PointPolar(c homog.Coord) homog.Coord {
	return homog.Coord{c[0], c[1], -c[2]}
}

// LinePolar returns [a, b, -c].
func (Hyperbolic) LinePolar(c homog.Coord) homog.Coord {
	return homog.Coord{c[0], c[1], -c[2]}
}

// HypPoint is a point of the hyperbolic plane.
type HypPoint = Point[Hyperbolic]

// HypLine is a line of the hyperbolic plane.
type HypLine = Line[Hyperbolic]
