// Package conic_test contains unit tests for conic sections and their
// pole/polar duality.
package conic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/projgeom/conic"
	"github.com/katalvlaran/projgeom/frac"
	"github.com/katalvlaran/projgeom/pgplane"
)

func TestUnitCircle_Contains(t *testing.T) {
	circle := conic.UnitCircle()

	for _, p := range []pgplane.PgPoint{
		pgplane.PgPointAt(1, 0, 1),
		pgplane.PgPointAt(0, 1, 1),
		pgplane.PgPointAt(-1, 0, 1),
		pgplane.PgPointAt(0, -1, 1),
		// Pythagorean points lie on the circle with non-unit weight.
		pgplane.PgPointAt(3, 4, 5),
		pgplane.PgPointAt(-5, 12, 13),
	} {
		assert.Truef(t, circle.Contains(p), "expected %v on the unit circle", p.Coord)
	}

	assert.False(t, circle.Contains(pgplane.PgPointAt(2, 0, 1)))
}

func TestCircle_OffCenter(t *testing.T) {
	circle := conic.Circle(1, 1, 4)

	assert.False(t, circle.Contains(pgplane.PgPointAt(1, 1, 1)))
	assert.True(t, circle.Contains(pgplane.PgPointAt(3, 1, 1)))
	assert.True(t, circle.Contains(pgplane.PgPointAt(1, 3, 1)))
}

func TestPolar_IsTangentOnTheConic(t *testing.T) {
	circle := conic.UnitCircle()

	// At (1,0) the tangent to the unit circle is x = 1.
	polar, err := circle.Polar(pgplane.PgPointAt(1, 0, 1))
	require.NoError(t, err)
	assert.True(t, polar.Equal(pgplane.PgLineAt(1, 0, -1)))

	tangent, err := circle.Tangent(pgplane.PgPointAt(1, 0, 1))
	require.NoError(t, err)
	assert.True(t, tangent.Equal(polar))
}

func TestPoleAndPolar_Inverse(t *testing.T) {
	circle := conic.UnitCircle()

	// The pole of the tangent x = 1 is the tangency point (1,0).
	pole, err := circle.Pole(pgplane.PgLineAt(1, 0, -1))
	require.NoError(t, err)
	assert.True(t, pole.Equal(pgplane.PgPointAt(1, 0, 1)))

	// Round trip from an exterior point through its polar and back.
	p := pgplane.PgPointAt(2, 3, 1)
	polar, err := circle.Polar(p)
	require.NoError(t, err)
	back, err := circle.Pole(polar)
	require.NoError(t, err)
	assert.True(t, back.Equal(p))
}

func TestPolar_DegenerateConic(t *testing.T) {
	// The rank-1 form z^2 = 0 sends every finite direction to zero.
	zero := frac.FromInt(0)
	one := frac.FromInt(1)
	degenerate := conic.New([3][3]frac.Fraction{
		{zero, zero, zero},
		{zero, zero, zero},
		{zero, zero, one},
	})

	_, err := degenerate.Polar(pgplane.PgPointAt(1, 0, 0))
	assert.ErrorIs(t, err, conic.ErrDegenerateConic)

	_, err = degenerate.Pole(pgplane.PgLineAt(1, 2, 3))
	assert.ErrorIs(t, err, conic.ErrDegenerateConic)
}

func TestDiscriminantAndType(t *testing.T) {
	assert.Equal(t, conic.TypeEllipse, conic.UnitCircle().Type())
	assert.Equal(t, 1, conic.UnitCircle().Discriminant().Sign())

	parabola := conic.Parabola(frac.FromInt(1))
	assert.Equal(t, conic.TypeParabola, parabola.Type())
	assert.True(t, parabola.Discriminant().IsZero())

	// x^2 - y^2 = 1.
	zero := frac.FromInt(0)
	one := frac.FromInt(1)
	hyperbola := conic.New([3][3]frac.Fraction{
		{one, zero, zero},
		{zero, one.Neg(), zero},
		{zero, zero, one.Neg()},
	})
	assert.Equal(t, conic.TypeHyperbola, hyperbola.Type())
}

func TestParabola_ContainsGraphPoints(t *testing.T) {
	// y = x^2 through (0,0), (1,1), (2,4) and (-3,9).
	parabola := conic.Parabola(frac.FromInt(1))

	for _, p := range []pgplane.PgPoint{
		pgplane.PgPointAt(0, 0, 1),
		pgplane.PgPointAt(1, 1, 1),
		pgplane.PgPointAt(2, 4, 1),
		pgplane.PgPointAt(-3, 9, 1),
	} {
		assert.Truef(t, parabola.Contains(p), "expected %v on y = x^2", p.Coord)
	}

	assert.False(t, parabola.Contains(pgplane.PgPointAt(1, 2, 1)))
}

func TestPascalHexagon(t *testing.T) {
	// Pascal: for six points on a conic, the meets of opposite hexagon
	// sides are collinear.
	hex := [6]pgplane.PgPoint{
		pgplane.PgPointAt(1, 0, 1),
		pgplane.PgPointAt(3, 4, 5),
		pgplane.PgPointAt(0, 1, 1),
		pgplane.PgPointAt(-3, 4, 5),
		pgplane.PgPointAt(-1, 0, 1),
		pgplane.PgPointAt(0, -1, 1),
	}
	circle := conic.UnitCircle()
	for _, p := range hex {
		require.Truef(t, circle.Contains(p), "hexagon vertex %v must be on the conic", p.Coord)
	}

	m1 := hex[0].Meet(hex[1]).Meet(hex[3].Meet(hex[4]))
	m2 := hex[1].Meet(hex[2]).Meet(hex[4].Meet(hex[5]))
	m3 := hex[2].Meet(hex[3]).Meet(hex[5].Meet(hex[0]))

	assert.True(t, pgplane.Coincident[pgplane.PgPoint, pgplane.PgLine](m1, m2, m3))
}
