// Package pgplane capability interfaces and sentinel errors.
package pgplane

import "errors"

// Sentinel errors for the plane algorithms. Preconditions are checked
// eagerly and reported as errors: degenerate input is a mistake in the
// caller's geometric setup, not a condition to answer silently.
var (
	// ErrDegenerateTriangle indicates three collinear triangle vertices.
	ErrDegenerateTriangle = errors.New("pgplane: triangle vertices are collinear")
	// ErrNonCollinear indicates the three points of a harmonic-conjugate
	// construction do not lie on a common line.
	ErrNonCollinear = errors.New("pgplane: points are not collinear")
)

// Primitive is the minimal capability of one half of a dual point/line
// pair. P is the implementing type itself, L its dual: for a point type
// L is the line type, and vice versa.
//
// Contract (checked by the tests, relied on by every algorithm):
//
//   - Meet is commutative: p.Meet(q) equals q.Meet(p).
//   - Incidence is symmetric across the pair: p.Incident(l) equals
//     l.Incident(p).
//   - Equal is proportionality of coordinates, not component equality.
type Primitive[P, L any] interface {
	// Meet returns the dual object spanned by the receiver and rhs:
	// the line through two points, or the intersection of two lines.
	Meet(rhs P) L
	// Incident reports whether the receiver and the dual object are
	// incident (zero dot product of coordinates).
	Incident(dual L) bool
	// Equal reports proportionality of coordinate vectors.
	Equal(rhs P) bool
}

// Plane extends Primitive with the measurement and parametrization
// capabilities needed by the harmonic-conjugate family of constructions.
type Plane[P, L any] interface {
	Primitive[P, L]
	// Aux returns a dual-type object carrying the same coordinate vector
	// as the receiver. Over integer coordinates with the plain dot
	// product, dot(c, c) > 0 for every nonzero c, so the result is never
	// incident with the receiver; it serves as a deliberately arbitrary
	// dual object in the harmonic-conjugate construction.
	Aux() L
	// Dot returns the raw dot product against a dual object, the basic
	// projective measurement.
	Dot(dual L) int64
	// Parametrize returns ld·self + mu·rhs, the weighted combination of
	// two same-type objects on their common pencil.
	Parametrize(ld int64, rhs P, mu int64) P
}
