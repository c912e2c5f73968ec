// Package ckplane generic objects: one Point/Line pair parametrized by
// the model's polarity. All five metric models share this implementation;
// a model is a zero-size type whose two methods are the only thing that
// differs between geometries.
package ckplane

import "github.com/katalvlaran/projgeom/homog"

// Polarity is the model strategy: the two polar maps that define a
// Cayley-Klein metric on top of pure incidence. Implementations must be
// zero-size struct types; the generic pair dispatches through the zero
// value.
//
// For symmetric models the maps are mutually inverse up to a scalar
// factor: LinePolar(PointPolar(c)) is proportional to c. That is an
// algebraic property of each model, verified by the model tests, not
// enforced here.
type Polarity interface {
	// PointPolar maps a point coordinate to its polar line coordinate.
	PointPolar(c homog.Coord) homog.Coord
	// LinePolar maps a line coordinate to its pole point coordinate.
	LinePolar(c homog.Coord) homog.Coord
}

// Point is a point of the Cayley-Klein model M. Immutable value type.
type Point[M Polarity] struct {
	Coord homog.Coord
}

// Line is a line of the Cayley-Klein model M, dual to Point[M].
type Line[M Polarity] struct {
	Coord homog.Coord
}

// NewPoint validates xs and returns the model-M point with those
// homogeneous coordinates. Returns homog.ErrInvalidDimension unless
// len(xs) == 3 and homog.ErrZeroVector for the all-zero vector.
func NewPoint[M Polarity](xs []int64) (Point[M], error) {
	c, err := homog.FromSlice(xs)
	if err != nil {
		return Point[M]{}, err
	}

	return Point[M]{Coord: c}, nil
}

// NewLine validates xs and returns the model-M line. Errors as NewPoint.
func NewLine[M Polarity](xs []int64) (Line[M], error) {
	c, err := homog.FromSlice(xs)
	if err != nil {
		return Line[M]{}, err
	}

	return Line[M]{Coord: c}, nil
}

// PointAt returns the model-M point [x : y : z] without validation.
func PointAt[M Polarity](x, y, z int64) Point[M] {
	return Point[M]{Coord: homog.Coord{x, y, z}}
}

// LineAt returns the model-M line [a : b : c] without validation.
func LineAt[M Polarity](a, b, c int64) Line[M] {
	return Line[M]{Coord: homog.Coord{a, b, c}}
}

// Meet returns the line through p and rhs.
func (p Point[M]) Meet(rhs Point[M]) Line[M] {
	return Line[M]{Coord: homog.Cross(p.Coord, rhs.Coord)}
}

// Incident reports whether p lies on l.
func (p Point[M]) Incident(l Line[M]) bool {
	return homog.Dot(p.Coord, l.Coord) == 0
}

// Dot returns the raw measurement of p against l.
func (p Point[M]) Dot(l Line[M]) int64 {
	return homog.Dot(p.Coord, l.Coord)
}

// Aux returns the line carrying p's own coordinate vector.
func (p Point[M]) Aux() Line[M] {
	return Line[M]{Coord: p.Coord}
}

// Parametrize returns ld·p + mu·rhs.
func (p Point[M]) Parametrize(ld int64, rhs Point[M], mu int64) Point[M] {
	return Point[M]{Coord: homog.Plucker(ld, p.Coord, mu, rhs.Coord)}
}

// Equal reports proportionality of coordinates.
func (p Point[M]) Equal(rhs Point[M]) bool {
	return homog.Cross(p.Coord, rhs.Coord).IsZero()
}

// Hash returns a hash consistent with Equal.
func (p Point[M]) Hash() uint64 {
	return p.Coord.Hash()
}

// Perp returns the polar line of p under model M's polarity.
func (p Point[M]) Perp() Line[M] {
	var m M
	return Line[M]{Coord: m.PointPolar(p.Coord)}
}

// Meet returns the intersection point of l and rhs.
func (l Line[M]) Meet(rhs Line[M]) Point[M] {
	return Point[M]{Coord: homog.Cross(l.Coord, rhs.Coord)}
}

// Incident reports whether l passes through p.
func (l Line[M]) Incident(p Point[M]) bool {
	return homog.Dot(l.Coord, p.Coord) == 0
}

// Dot returns the raw measurement of l against p.
func (l Line[M]) Dot(p Point[M]) int64 {
	return homog.Dot(l.Coord, p.Coord)
}

// Aux returns the point carrying l's own coordinate vector.
func (l Line[M]) Aux() Point[M] {
	return Point[M]{Coord: l.Coord}
}

// Parametrize returns ld·l + mu·rhs.
func (l Line[M]) Parametrize(ld int64, rhs Line[M], mu int64) Line[M] {
	return Line[M]{Coord: homog.Plucker(ld, l.Coord, mu, rhs.Coord)}
}

// Equal reports proportionality of coordinates.
func (l Line[M]) Equal(rhs Line[M]) bool {
	return homog.Cross(l.Coord, rhs.Coord).IsZero()
}

// Hash returns a hash consistent with Equal.
func (l Line[M]) Hash() uint64 {
	return l.Coord.Hash()
}

// Perp returns the pole point of l under model M's polarity.
func (l Line[M]) Perp() Point[M] {
	var m M
	return Point[M]{Coord: m.LinePolar(l.Coord)}
}
