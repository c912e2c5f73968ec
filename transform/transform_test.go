// Package transform_test contains unit tests for projective
// transformations.
package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/projgeom/frac"
	"github.com/katalvlaran/projgeom/pgplane"
	"github.com/katalvlaran/projgeom/transform"
)

func TestIdentity(t *testing.T) {
	p := pgplane.PgPointAt(1, 2, 3)
	got, err := transform.Identity().ApplyPoint(p)
	require.NoError(t, err)
	assert.True(t, got.Equal(p))
}

func TestTranslation(t *testing.T) {
	got, err := transform.Translation(5, 3).ApplyPoint(pgplane.PgPointAt(1, 2, 1))
	require.NoError(t, err)
	assert.True(t, got.Equal(pgplane.PgPointAt(6, 5, 1)))

	// Points at infinity are directions; translation fixes them.
	inf, err := transform.Translation(5, 3).ApplyPoint(pgplane.PgPointAt(1, 2, 0))
	require.NoError(t, err)
	assert.True(t, inf.Equal(pgplane.PgPointAt(1, 2, 0)))
}

func TestRotation_QuarterTurn(t *testing.T) {
	quarter := transform.Rotation(frac.FromInt(0), frac.FromInt(1))
	got, err := quarter.ApplyPoint(pgplane.PgPointAt(1, 0, 1))
	require.NoError(t, err)
	assert.True(t, got.Equal(pgplane.PgPointAt(0, 1, 1)))
}

func TestRotation_Pythagorean(t *testing.T) {
	// cos = 3/5, sin = 4/5 rotates (5,0) onto (3,4) exactly.
	rot := transform.Rotation(mustFrac(t, 3, 5), mustFrac(t, 4, 5))
	got, err := rot.ApplyPoint(pgplane.PgPointAt(5, 0, 1))
	require.NoError(t, err)
	assert.True(t, got.Equal(pgplane.PgPointAt(3, 4, 1)))
}

func TestScaling_StaysExact(t *testing.T) {
	// Scaling (1,1) by (1/2, 1/3) reads back as (1/2, 1/3), not (0, 0).
	sc := transform.Scaling(mustFrac(t, 1, 2), mustFrac(t, 1, 3))
	got, err := sc.ApplyPoint(pgplane.PgPointAt(1, 1, 1))
	require.NoError(t, err)
	assert.True(t, got.Equal(pgplane.PgPointAt(3, 2, 6)))
}

func TestShear(t *testing.T) {
	sh := transform.Shear(frac.FromInt(1), frac.FromInt(0))
	got, err := sh.ApplyPoint(pgplane.PgPointAt(1, 2, 1))
	require.NoError(t, err)
	assert.True(t, got.Equal(pgplane.PgPointAt(3, 2, 1)))
}

func TestCompose_OrderMatters(t *testing.T) {
	translate := transform.Translation(2, 3)
	double := transform.Scaling(frac.FromInt(2), frac.FromInt(2))

	// Scale first, then translate.
	got, err := translate.Compose(double).ApplyPoint(pgplane.PgPointAt(1, 1, 1))
	require.NoError(t, err)
	assert.True(t, got.Equal(pgplane.PgPointAt(4, 5, 1)))

	// Translate first, then scale.
	got, err = double.Compose(translate).ApplyPoint(pgplane.PgPointAt(1, 1, 1))
	require.NoError(t, err)
	assert.True(t, got.Equal(pgplane.PgPointAt(6, 8, 1)))
}

func TestInverse_RoundTrip(t *testing.T) {
	tr := transform.Translation(5, 3).Compose(
		transform.Rotation(mustFrac(t, 3, 5), mustFrac(t, 4, 5)))
	inv, err := tr.Inverse()
	require.NoError(t, err)

	p := pgplane.PgPointAt(7, -2, 1)
	image, err := tr.ApplyPoint(p)
	require.NoError(t, err)
	back, err := inv.ApplyPoint(image)
	require.NoError(t, err)
	assert.True(t, back.Equal(p))
}

func TestInverse_Singular(t *testing.T) {
	flat := transform.Scaling(frac.FromInt(0), frac.FromInt(1))
	_, err := flat.Inverse()
	assert.ErrorIs(t, err, transform.ErrSingularMatrix)

	_, err = flat.ApplyLine(pgplane.PgLineAt(1, 1, 1))
	assert.ErrorIs(t, err, transform.ErrSingularMatrix)
}

func TestApplyLine_PreservesIncidence(t *testing.T) {
	tr := transform.Translation(5, 3)
	l := pgplane.PgLineAt(1, 1, -2)
	p := pgplane.PgPointAt(1, 1, 1)
	require.True(t, l.Incident(p))

	imageL, err := tr.ApplyLine(l)
	require.NoError(t, err)
	imageP, err := tr.ApplyPoint(p)
	require.NoError(t, err)

	assert.True(t, imageL.Incident(imageP))
	assert.True(t, imageL.Equal(pgplane.PgLineAt(1, 1, -10)))
}

func TestDeterminant(t *testing.T) {
	assert.True(t, transform.Identity().Determinant().Equal(frac.FromInt(1)))

	sc := transform.Scaling(frac.FromInt(2), frac.FromInt(3))
	assert.True(t, sc.Determinant().Equal(frac.FromInt(6)))

	// A coherent rotation has determinant cos^2 + sin^2 = 1.
	rot := transform.Rotation(mustFrac(t, 3, 5), mustFrac(t, 4, 5))
	assert.True(t, rot.Determinant().Equal(frac.FromInt(1)))
}

func mustFrac(t *testing.T, num, den int64) frac.Fraction {
	t.Helper()
	f, err := frac.New(num, den)
	require.NoError(t, err)
	return f
}
