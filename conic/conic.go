package conic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/projgeom/frac"
	"github.com/katalvlaran/projgeom/homog"
	"github.com/katalvlaran/projgeom/pgplane"
)

// ErrDegenerateConic reports that a pole or polar computation produced
// the zero vector: the conic is singular and the argument lies in its
// kernel.
var ErrDegenerateConic = errors.New("conic: degenerate conic leaves the result undefined")

// ConicType is the affine classification of a conic.
type ConicType int

const (
	// TypeEllipse covers circles too; positive discriminant.
	TypeEllipse ConicType = iota
	// TypeParabola has zero discriminant.
	TypeParabola
	// TypeHyperbola has negative discriminant.
	TypeHyperbola
)

// String implements fmt.Stringer.
func (c ConicType) String() string {
	switch c {
	case TypeParabola:
		return "Parabola"
	case TypeHyperbola:
		return "Hyperbola"
	default:
		return "Ellipse"
	}
}

// Conic is a conic section given by a symmetric 3x3 matrix Q over exact
// fractions. The matrix is meaningful up to a nonzero scalar, like
// every homogeneous object in this library.
type Conic struct {
	M [3][3]frac.Fraction
}

// New wraps a symmetric coefficient matrix as a conic. Symmetry is the
// caller's contract; the named constructors below always satisfy it.
func New(m [3][3]frac.Fraction) Conic {
	return Conic{M: m}
}

// Circle returns the circle with center (cx, cy) and squared radius r2:
// x^2 + y^2 - 2*cx*xz - 2*cy*yz + (cx^2 + cy^2 - r2)*z^2 = 0.
func Circle(cx, cy, r2 int64) Conic {
	one := frac.FromInt(1)
	zero := frac.FromInt(0)
	fcx := frac.FromInt(cx)
	fcy := frac.FromInt(cy)
	corner := fcx.Mul(fcx).Add(fcy.Mul(fcy)).Sub(frac.FromInt(r2))

	return Conic{M: [3][3]frac.Fraction{
		{one, zero, fcx.Neg()},
		{zero, one, fcy.Neg()},
		{fcx.Neg(), fcy.Neg(), corner},
	}}
}

// UnitCircle returns the circle of radius 1 about the origin.
func UnitCircle() Conic {
	return Circle(0, 0, 1)
}

// Parabola returns the parabola y = a*x^2, homogenized as
// y*z - a*x^2 = 0 with the cross term split symmetrically.
func Parabola(a frac.Fraction) Conic {
	zero := frac.FromInt(0)
	// 1/2 is exact here; New cannot fail on a nonzero denominator.
	half, _ := frac.New(1, 2)

	return Conic{M: [3][3]frac.Fraction{
		{a.Neg(), zero, zero},
		{zero, zero, half},
		{zero, half, zero},
	}}
}

// apply returns Q*v as a fraction triple.
func (c Conic) apply(v homog.Coord) [3]frac.Fraction {
	var out [3]frac.Fraction
	for i := 0; i < 3; i++ {
		sum := frac.FromInt(0)
		for j := 0; j < 3; j++ {
			sum = sum.Add(c.M[i][j].Mul(frac.FromInt(v[j])))
		}
		out[i] = sum
	}

	return out
}

// Contains reports whether p lies on the conic: x^T Q x = 0, exactly.
func (c Conic) Contains(p pgplane.PgPoint) bool {
	qx := c.apply(p.Coord)
	sum := frac.FromInt(0)
	for i := 0; i < 3; i++ {
		sum = sum.Add(qx[i].Mul(frac.FromInt(p.Coord[i])))
	}

	return sum.IsZero()
}

// Polar returns the polar line of p: the integer form of Q*p with
// denominators cleared.
func (c Conic) Polar(p pgplane.PgPoint) (pgplane.PgLine, error) {
	coord, ok := clearDenominators(c.apply(p.Coord))
	if !ok {
		return pgplane.PgLine{}, fmt.Errorf("%w: polar of %v vanishes", ErrDegenerateConic, p.Coord)
	}

	return pgplane.PgLine{Coord: coord}, nil
}

// Tangent returns the tangent line at a point of the conic; it is the
// point's own polar. The caller vouches that p lies on the conic.
func (c Conic) Tangent(p pgplane.PgPoint) (pgplane.PgLine, error) {
	return c.Polar(p)
}

// Pole returns the pole of l, inverting the polarity with the adjugate
// matrix: adj(Q)*l is Q^{-1}*l up to the determinant factor, which a
// homogeneous point does not see.
func (c Conic) Pole(l pgplane.PgLine) (pgplane.PgPoint, error) {
	adj := c.adjugate()
	coord, ok := clearDenominators(adj.apply(l.Coord))
	if !ok {
		return pgplane.PgPoint{}, fmt.Errorf("%w: pole of %v vanishes", ErrDegenerateConic, l.Coord)
	}

	return pgplane.PgPoint{Coord: coord}, nil
}

// adjugate returns the transpose of the cofactor matrix. For a
// symmetric Q the adjugate is symmetric again.
func (c Conic) adjugate() Conic {
	m := c.M
	cof := func(r1, c1, r2, c2 int) frac.Fraction {
		return m[r1][c1].Mul(m[r2][c2]).Sub(m[r1][c2].Mul(m[r2][c1]))
	}

	return Conic{M: [3][3]frac.Fraction{
		{cof(1, 1, 2, 2), cof(0, 2, 2, 1), cof(0, 1, 1, 2)},
		{cof(1, 2, 2, 0), cof(0, 0, 2, 2), cof(0, 2, 1, 0)},
		{cof(1, 0, 2, 1), cof(0, 1, 2, 0), cof(0, 0, 1, 1)},
	}}
}

// Discriminant returns the determinant of the upper-left 2x2 block,
// which classifies the affine shape of the conic.
func (c Conic) Discriminant() frac.Fraction {
	return c.M[0][0].Mul(c.M[1][1]).Sub(c.M[0][1].Mul(c.M[1][0]))
}

// Type classifies the conic by the sign of its discriminant.
func (c Conic) Type() ConicType {
	switch c.Discriminant().Sign() {
	case 1:
		return TypeEllipse
	case -1:
		return TypeHyperbola
	default:
		return TypeParabola
	}
}

// clearDenominators scales a fraction triple to coprime-free integer
// coordinates. The second return is false when the triple is zero.
func clearDenominators(v [3]frac.Fraction) (homog.Coord, bool) {
	l := int64(1)
	for _, f := range v {
		l = lcm(l, f.Den())
	}

	var out homog.Coord
	zero := true
	for i, f := range v {
		out[i] = f.Num() * (l / f.Den())
		if out[i] != 0 {
			zero = false
		}
	}

	return out, !zero
}

func lcm(a, b int64) int64 {
	return a / gcd(a, b) * b
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
