package transform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/projgeom/frac"
	"github.com/katalvlaran/projgeom/homog"
	"github.com/katalvlaran/projgeom/pgplane"
)

// ErrSingularMatrix reports a transform with zero determinant where an
// invertible one is required.
var ErrSingularMatrix = errors.New("transform: singular matrix")

// Transform is a projective transformation: an invertible 3x3 matrix
// over exact fractions, row-major, acting on column coordinate vectors.
type Transform struct {
	M [3][3]frac.Fraction
}

// Identity returns the identity transformation.
func Identity() Transform {
	one := frac.FromInt(1)
	zero := frac.FromInt(0)

	return Transform{M: [3][3]frac.Fraction{
		{one, zero, zero},
		{zero, one, zero},
		{zero, zero, one},
	}}
}

// Translation returns the map (x, y) -> (x+tx, y+ty).
func Translation(tx, ty int64) Transform {
	t := Identity()
	t.M[0][2] = frac.FromInt(tx)
	t.M[1][2] = frac.FromInt(ty)

	return t
}

// Rotation returns the rotation with the given exact cosine and sine.
// The caller supplies a coherent pair (cos^2 + sin^2 = 1) such as an
// axis rotation or a Pythagorean ratio like (3/5, 4/5).
func Rotation(cos, sin frac.Fraction) Transform {
	t := Identity()
	t.M[0][0] = cos
	t.M[0][1] = sin.Neg()
	t.M[1][0] = sin
	t.M[1][1] = cos

	return t
}

// Scaling returns the map (x, y) -> (sx*x, sy*y).
func Scaling(sx, sy frac.Fraction) Transform {
	t := Identity()
	t.M[0][0] = sx
	t.M[1][1] = sy

	return t
}

// Shear returns the map (x, y) -> (x + shx*y, y + shy*x).
func Shear(shx, shy frac.Fraction) Transform {
	t := Identity()
	t.M[0][1] = shx
	t.M[1][0] = shy

	return t
}

// Compose returns t*other: other acts first, then t.
func (t Transform) Compose(other Transform) Transform {
	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := frac.FromInt(0)
			for k := 0; k < 3; k++ {
				sum = sum.Add(t.M[i][k].Mul(other.M[k][j]))
			}
			out.M[i][j] = sum
		}
	}

	return out
}

// Determinant returns det(t) as an exact fraction.
func (t Transform) Determinant() frac.Fraction {
	m := t.M
	minor := func(r1, c1, r2, c2 int) frac.Fraction {
		return m[r1][c1].Mul(m[r2][c2]).Sub(m[r1][c2].Mul(m[r2][c1]))
	}

	return m[0][0].Mul(minor(1, 1, 2, 2)).
		Sub(m[0][1].Mul(minor(1, 0, 2, 2))).
		Add(m[0][2].Mul(minor(1, 0, 2, 1)))
}

// Inverse returns t^{-1}, the adjugate divided by the determinant.
func (t Transform) Inverse() (Transform, error) {
	det := t.Determinant()
	if det.IsZero() {
		return Transform{}, fmt.Errorf("%w: no inverse", ErrSingularMatrix)
	}
	// det is nonzero, so the reciprocal exists.
	invDet, _ := det.Reciprocal()

	m := t.M
	cof := func(r1, c1, r2, c2 int) frac.Fraction {
		return m[r1][c1].Mul(m[r2][c2]).Sub(m[r1][c2].Mul(m[r2][c1]))
	}

	adj := [3][3]frac.Fraction{
		{cof(1, 1, 2, 2), cof(0, 2, 2, 1), cof(0, 1, 1, 2)},
		{cof(1, 2, 2, 0), cof(0, 0, 2, 2), cof(0, 2, 1, 0)},
		{cof(1, 0, 2, 1), cof(0, 1, 2, 0), cof(0, 0, 1, 1)},
	}

	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[i][j] = invDet.Mul(adj[i][j])
		}
	}

	return out, nil
}

// ApplyPoint returns t applied to p, cleared of denominators exactly.
func (t Transform) ApplyPoint(p pgplane.PgPoint) (pgplane.PgPoint, error) {
	coord, ok := clearDenominators(t.apply(p.Coord))
	if !ok {
		return pgplane.PgPoint{}, fmt.Errorf("%w: image of %v vanishes", ErrSingularMatrix, p.Coord)
	}

	return pgplane.PgPoint{Coord: coord}, nil
}

// ApplyLine returns t applied to l. Line coordinates transform
// contravariantly, by the transpose of the inverse, so that a point on
// l maps to a point on the image line.
func (t Transform) ApplyLine(l pgplane.PgLine) (pgplane.PgLine, error) {
	inv, err := t.Inverse()
	if err != nil {
		return pgplane.PgLine{}, err
	}

	coord, ok := clearDenominators(inv.transpose().apply(l.Coord))
	if !ok {
		return pgplane.PgLine{}, fmt.Errorf("%w: image of %v vanishes", ErrSingularMatrix, l.Coord)
	}

	return pgplane.PgLine{Coord: coord}, nil
}

// apply returns M*v as a fraction triple.
func (t Transform) apply(v homog.Coord) [3]frac.Fraction {
	var out [3]frac.Fraction
	for i := 0; i < 3; i++ {
		sum := frac.FromInt(0)
		for j := 0; j < 3; j++ {
			sum = sum.Add(t.M[i][j].Mul(frac.FromInt(v[j])))
		}
		out[i] = sum
	}

	return out
}

func (t Transform) transpose() Transform {
	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[i][j] = t.M[j][i]
		}
	}

	return out
}

// clearDenominators scales a fraction triple to integer coordinates.
// The second return is false when the triple is zero.
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
