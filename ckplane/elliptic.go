// Package ckplane elliptic model: the self-dual metric where the
// polarity is the identity on coordinates (absolute conic x²+y²+z²=0).
package ckplane

import "github.com/katalvlaran/projgeom/homog"

// Elliptic is the polarity of elliptic geometry: a point and its polar
// line carry the same coordinates.
type Elliptic struct{}

// PointPolar returns c unchanged.
func (Elliptic) PointPolar(c homog.Coord) homog.Coord { return c }

// LinePolar returns c unchanged.
func (Elliptic) LinePolar(c homog.Coord) homog.Coord { return c }

// EllPoint is a point of the elliptic plane.
type EllPoint = Point[Elliptic]

// EllLine is a line of the elliptic plane.
type EllLine = Line[Elliptic]
