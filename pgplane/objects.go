// Package pgplane plain projective objects: the PgPoint/PgLine dual pair.
//
// The two types are exact mirrors: every method on PgPoint has the same
// body on PgLine with the two types swapped. Keeping the pair symmetric
// is what makes the duality invariant structural rather than aspirational.
package pgplane

import "github.com/katalvlaran/projgeom/homog"

// PgPoint is a point of the plain projective plane, a homogeneous
// 3-integer coordinate with no metric attached. Immutable value type.
type PgPoint struct {
	Coord homog.Coord
}

// PgLine is a line of the plain projective plane, dual to PgPoint.
type PgLine struct {
	Coord homog.Coord
}

// NewPgPoint validates xs and returns the point with those homogeneous
// coordinates. Returns homog.ErrInvalidDimension unless len(xs) == 3 and
// homog.ErrZeroVector for the all-zero vector.
func NewPgPoint(xs []int64) (PgPoint, error) {
	c, err := homog.FromSlice(xs)
	if err != nil {
		return PgPoint{}, err
	}

	return PgPoint{Coord: c}, nil
}

// NewPgLine validates xs and returns the line with those homogeneous
// coordinates. Errors as NewPgPoint.
func NewPgLine(xs []int64) (PgLine, error) {
	c, err := homog.FromSlice(xs)
	if err != nil {
		return PgLine{}, err
	}

	return PgLine{Coord: c}, nil
}

// PgPointAt returns the point [x : y : z] without validation; intended
// for literal coordinates known to be nonzero.
func PgPointAt(x, y, z int64) PgPoint {
	return PgPoint{Coord: homog.Coord{x, y, z}}
}

// PgLineAt returns the line [a : b : c] without validation.
func PgLineAt(a, b, c int64) PgLine {
	return PgLine{Coord: homog.Coord{a, b, c}}
}

// Meet returns the line through p and rhs (their join).
func (p PgPoint) Meet(rhs PgPoint) PgLine {
	return PgLine{Coord: homog.Cross(p.Coord, rhs.Coord)}
}

// Incident reports whether p lies on l.
func (p PgPoint) Incident(l PgLine) bool {
	return homog.Dot(p.Coord, l.Coord) == 0
}

// Dot returns the raw measurement of p against l.
func (p PgPoint) Dot(l PgLine) int64 {
	return homog.Dot(p.Coord, l.Coord)
}

// Aux returns the line carrying p's own coordinate vector. Never
// incident with p for nonzero integer coordinates (dot(c, c) > 0).
func (p PgPoint) Aux() PgLine {
	return PgLine{Coord: p.Coord}
}

// Parametrize returns ld·p + mu·rhs on the pencil spanned by p and rhs.
func (p PgPoint) Parametrize(ld int64, rhs PgPoint, mu int64) PgPoint {
	return PgPoint{Coord: homog.Plucker(ld, p.Coord, mu, rhs.Coord)}
}

// Equal reports whether p and rhs name the same projective point, i.e.
// their coordinates are proportional.
func (p PgPoint) Equal(rhs PgPoint) bool {
	return homog.Cross(p.Coord, rhs.Coord).IsZero()
}

// Hash returns a hash consistent with Equal: proportional coordinates
// hash identically.
func (p PgPoint) Hash() uint64 {
	return p.Coord.Hash()
}

// Meet returns the intersection point of l and rhs.
func (l PgLine) Meet(rhs PgLine) PgPoint {
	return PgPoint{Coord: homog.Cross(l.Coord, rhs.Coord)}
}

// Incident reports whether l passes through p.
func (l PgLine) Incident(p PgPoint) bool {
	return homog.Dot(l.Coord, p.Coord) == 0
}

// Dot returns the raw measurement of l against p.
func (l PgLine) Dot(p PgPoint) int64 {
	return homog.Dot(l.Coord, p.Coord)
}

// Aux returns the point carrying l's own coordinate vector.
func (l PgLine) Aux() PgPoint {
	return PgPoint{Coord: l.Coord}
}

// Parametrize returns ld·l + mu·rhs on the pencil spanned by l and rhs.
func (l PgLine) Parametrize(ld int64, rhs PgLine, mu int64) PgLine {
	return PgLine{Coord: homog.Plucker(ld, l.Coord, mu, rhs.Coord)}
}

// Equal reports whether l and rhs name the same projective line.
func (l PgLine) Equal(rhs PgLine) bool {
	return homog.Cross(l.Coord, rhs.Coord).IsZero()
}

// Hash returns a hash consistent with Equal.
func (l PgLine) Hash() uint64 {
	return l.Coord.Hash()
}
