package predicates

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/projgeom/frac"
	"github.com/katalvlaran/projgeom/pgplane"
)

// ErrPointAtInfinity reports that an affine predicate received a point
// with a zero last component.
var ErrPointAtInfinity = errors.New("predicates: point at infinity has no affine coordinates")

// Orient is the cyclic order of a point triple in the affine plane.
type Orient int

const (
	// Collinear marks three points on a common line.
	Collinear Orient = iota
	// Clockwise marks a negatively oriented triple.
	Clockwise
	// CounterClockwise marks a positively oriented triple.
	CounterClockwise
)

// String implements fmt.Stringer.
func (o Orient) String() string {
	switch o {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return "Collinear"
	}
}

// Position locates a point relative to a line.
type Position int

const (
	// OnLine marks an incident point.
	OnLine Position = iota
	// Left marks a positive dot product.
	Left
	// Right marks a negative dot product.
	Right
)

// String implements fmt.Stringer.
func (p Position) String() string {
	switch p {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "OnLine"
	}
}

// Affine returns the exact affine coordinates (x, y) of p.
// Points at infinity have none; the error is ErrPointAtInfinity.
func Affine(p pgplane.PgPoint) (frac.Fraction, frac.Fraction, error) {
	if p.Coord[2] == 0 {
		return frac.Fraction{}, frac.Fraction{}, fmt.Errorf("%w: %v", ErrPointAtInfinity, p.Coord)
	}
	// The last component is nonzero, so New cannot fail.
	x, _ := frac.New(p.Coord[0], p.Coord[2])
	y, _ := frac.New(p.Coord[1], p.Coord[2])

	return x, y, nil
}

// Orientation classifies the cyclic order of three finite points by the
// sign of the doubled signed area.
func Orientation(p1, p2, p3 pgplane.PgPoint) (Orient, error) {
	x1, y1, err := Affine(p1)
	if err != nil {
		return Collinear, err
	}
	x2, y2, err := Affine(p2)
	if err != nil {
		return Collinear, err
	}
	x3, y3, err := Affine(p3)
	if err != nil {
		return Collinear, err
	}

	cross := x2.Sub(x1).Mul(y3.Sub(y1)).Sub(y2.Sub(y1).Mul(x3.Sub(x1)))
	switch cross.Sign() {
	case 1:
		return CounterClockwise, nil
	case -1:
		return Clockwise, nil
	default:
		return Collinear, nil
	}
}

// LinePosition locates p relative to l by the sign of their dot
// product. Left and Right follow the chosen representatives.
func LinePosition(p pgplane.PgPoint, l pgplane.PgLine) Position {
	switch d := p.Dot(l); {
	case d > 0:
		return Left
	case d < 0:
		return Right
	default:
		return OnLine
	}
}

// SquaredDistance returns the exact squared Euclidean distance between
// two finite points.
func SquaredDistance(p1, p2 pgplane.PgPoint) (frac.Fraction, error) {
	x1, y1, err := Affine(p1)
	if err != nil {
		return frac.Fraction{}, err
	}
	x2, y2, err := Affine(p2)
	if err != nil {
		return frac.Fraction{}, err
	}

	dx := x2.Sub(x1)
	dy := y2.Sub(y1)

	return dx.Mul(dx).Add(dy.Mul(dy)), nil
}

// TriangleArea returns the exact signed area of the triangle p1 p2 p3,
// positive for a counter-clockwise triple.
func TriangleArea(p1, p2, p3 pgplane.PgPoint) (frac.Fraction, error) {
	x1, y1, err := Affine(p1)
	if err != nil {
		return frac.Fraction{}, err
	}
	x2, y2, err := Affine(p2)
	if err != nil {
		return frac.Fraction{}, err
	}
	x3, y3, err := Affine(p3)
	if err != nil {
		return frac.Fraction{}, err
	}

	doubled := x2.Sub(x1).Mul(y3.Sub(y1)).Sub(x3.Sub(x1).Mul(y2.Sub(y1)))

	return doubled.Div(frac.FromInt(2))
}

// PointInTriangle reports whether p lies inside or on the boundary of
// the triangle v1 v2 v3.
func PointInTriangle(p, v1, v2, v3 pgplane.PgPoint) (bool, error) {
	o1, err := Orientation(v1, v2, p)
	if err != nil {
		return false, err
	}
	o2, err := Orientation(v2, v3, p)
	if err != nil {
		return false, err
	}
	o3, err := Orientation(v3, v1, p)
	if err != nil {
		return false, err
	}

	allSame := o1 == o2 && o2 == o3
	anyCollinear := o1 == Collinear || o2 == Collinear || o3 == Collinear

	return allSame || anyCollinear, nil
}

// AngleCosine returns a sign-faithful surrogate for the cosine of the
// angle at vertex, formed by the segments to p1 and p3: the dot product
// of the two leg vectors divided by the product of their squared norms.
// A zero leg yields zero.
func AngleCosine(p1, vertex, p3 pgplane.PgPoint) (frac.Fraction, error) {
	x1, y1, err := Affine(p1)
	if err != nil {
		return frac.Fraction{}, err
	}
	x2, y2, err := Affine(vertex)
	if err != nil {
		return frac.Fraction{}, err
	}
	x3, y3, err := Affine(p3)
	if err != nil {
		return frac.Fraction{}, err
	}

	v1x := x1.Sub(x2)
	v1y := y1.Sub(y2)
	v2x := x3.Sub(x2)
	v2y := y3.Sub(y2)

	norm1 := v1x.Mul(v1x).Add(v1y.Mul(v1y))
	norm2 := v2x.Mul(v2x).Add(v2y.Mul(v2y))
	if norm1.IsZero() || norm2.IsZero() {
		return frac.FromInt(0), nil
	}

	dot := v1x.Mul(v2x).Add(v1y.Mul(v2y))

	return dot.Div(norm1.Mul(norm2))
}

// IsAtInfinity reports whether p lies on the standard line at infinity.
func IsAtInfinity(p pgplane.PgPoint) bool {
	return p.Coord[2] == 0
}

// IsLineAtInfinity reports whether l is the standard line at infinity
// [0 : 0 : z].
func IsLineAtInfinity(l pgplane.PgLine) bool {
	return l.Coord[0] == 0 && l.Coord[1] == 0 && l.Coord[2] != 0
}
