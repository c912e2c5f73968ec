// Package ckplane polarity-dependent algorithms. Each is a thin
// composition of the model's perp with the incidence operations of
// package pgplane.
package ckplane

import "github.com/katalvlaran/projgeom/pgplane"

// IsPerpendicular reports whether two lines of model M are
// perpendicular: the pole of one is incident with the other. The
// relation is symmetric for models whose polarity is an involution.
// Complexity: O(1).
func IsPerpendicular[M Polarity](l1, l2 Line[M]) bool {
	return l1.Perp().Incident(l2)
}

// Altitude returns the line through p perpendicular to l: the join of p
// with l's pole.
// Complexity: O(1).
func Altitude[M Polarity](p Point[M], l Line[M]) Line[M] {
	return l.Perp().Meet(p)
}

// Orthocenter returns the common point of the triangle's altitudes,
// computed as the meet of the altitudes through the first two vertices.
// The third altitude passes through the same point; the tests verify
// this concurrence per model.
//
// Returns pgplane.ErrDegenerateTriangle if the vertices are collinear.
// Complexity: O(1).
func Orthocenter[M Polarity](tri [3]Point[M]) (Point[M], error) {
	a1, a2, a3 := tri[0], tri[1], tri[2]
	if pgplane.Coincident[Point[M], Line[M]](a1, a2, a3) {
		return Point[M]{}, pgplane.ErrDegenerateTriangle
	}
	t1 := Altitude(a1, a2.Meet(a3))
	t2 := Altitude(a2, a3.Meet(a1))

	return t1.Meet(t2), nil
}

// TriAltitude returns the three altitudes of the triangle, one per
// vertex in vertex order.
//
// Returns pgplane.ErrDegenerateTriangle if the vertices are collinear.
// Complexity: O(1).
func TriAltitude[M Polarity](tri [3]Point[M]) ([3]Line[M], error) {
	sides, err := pgplane.TriDual[Point[M], Line[M]](tri)
	if err != nil {
		return [3]Line[M]{}, err
	}

	return [3]Line[M]{
		Altitude(tri[0], sides[0]),
		Altitude(tri[1], sides[1]),
		Altitude(tri[2], sides[2]),
	}, nil
}

// Reflect maps p to its mirror image across the given line: the
// involution fixing the mirror pointwise whose center is the mirror's
// pole.
//
// Propagates pgplane.ErrNonCollinear for degenerate setups (p at the
// mirror's pole).
// Complexity: O(1).
func Reflect[M Polarity](mirror Line[M], p Point[M]) (Point[M], error) {
	return pgplane.Involution[Point[M], Line[M]](mirror.Perp(), mirror, p)
}
