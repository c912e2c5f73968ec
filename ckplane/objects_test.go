// Package ckplane_test contains unit tests for the generic Cayley-Klein
// pair and each model's polarity formula.
package ckplane_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/projgeom/ckplane"
	"github.com/katalvlaran/projgeom/homog"
)

func TestNewPoint_Validation(t *testing.T) {
	p, err := ckplane.NewPoint[ckplane.Elliptic]([]int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, homog.Coord{1, 2, 3}, p.Coord)

	_, err = ckplane.NewPoint[ckplane.Elliptic]([]int64{1, 2})
	assert.ErrorIs(t, err, homog.ErrInvalidDimension)

	_, err = ckplane.NewLine[ckplane.Hyperbolic]([]int64{0, 0, 0})
	assert.ErrorIs(t, err, homog.ErrZeroVector)
}

func TestEqualAndHash(t *testing.T) {
	p := ckplane.PointAt[ckplane.Euclidean](1, 2, 1)
	q := ckplane.PointAt[ckplane.Euclidean](2, 4, 2)
	assert.True(t, p.Equal(q))
	assert.Equal(t, p.Hash(), q.Hash())
	assert.False(t, p.Equal(ckplane.PointAt[ckplane.Euclidean](1, 2, 2)))
}

func TestEllipticPerp_Identity(t *testing.T) {
	p := ckplane.PointAt[ckplane.Elliptic](1, 2, 3)
	assert.Equal(t, homog.Coord{1, 2, 3}, p.Perp().Coord)

	l := ckplane.LineAt[ckplane.Elliptic](4, -5, 6)
	assert.Equal(t, homog.Coord{4, -5, 6}, l.Perp().Coord)
}

func TestHyperbolicPerp_FlipsLastComponent(t *testing.T) {
	p := ckplane.PointAt[ckplane.Hyperbolic](1, 2, 3)
	assert.Equal(t, homog.Coord{1, 2, -3}, p.Perp().Coord)

	// The polarity is an involution: perp of perp returns the point.
	assert.True(t, p.Perp().Perp().Equal(p))
}

func TestMyCKPerp_AsymmetricCoefficients(t *testing.T) {
	p := ckplane.PointAt[ckplane.MyCK](1, 2, 3)
	assert.Equal(t, homog.Coord{-2, 2, -6}, p.Perp().Coord)

	l := ckplane.LineAt[ckplane.MyCK](1, 2, 3)
	assert.Equal(t, homog.Coord{-1, 4, -3}, l.Perp().Coord)

	// The two maps compose to a scalar multiple of the identity, so the
	// double polar is projectively the original object.
	assert.True(t, p.Perp().Perp().Equal(p))
	assert.True(t, l.Perp().Perp().Equal(l))
}

func TestEuclideanPerp_Degenerate(t *testing.T) {
	// Every point's polar is the line at infinity.
	p := ckplane.PointAt[ckplane.Euclidean](7, -3, 1)
	assert.Equal(t, homog.Coord{0, 0, 1}, p.Perp().Coord)

	// A line's pole is its normal direction at infinity.
	l := ckplane.LineAt[ckplane.Euclidean](2, 5, -9)
	assert.Equal(t, homog.Coord{2, 5, 0}, l.Perp().Coord)

	// Two parallel lines share the same pole; that is the singularity.
	m := ckplane.LineAt[ckplane.Euclidean](4, 10, 3)
	assert.True(t, l.Perp().Equal(m.Perp()))
}

func TestPerspectivePerp(t *testing.T) {
	// Point polar is the fixed infinity line.
	p := ckplane.PointAt[ckplane.Perspective](5, 1, 2)
	assert.True(t, p.Perp().Equal(ckplane.PerspLineInfinity()))

	// Line polar parametrizes the absolute points by their measurements:
	// for [1, 1, 1], alpha = dot([0,1,1],l) = 2, beta = dot([1,0,0],l) = 1,
	// pole = 2*[0,1,1] + 1*[1,0,0] = [1, 2, 2].
	l := ckplane.LineAt[ckplane.Perspective](1, 1, 1)
	assert.Equal(t, homog.Coord{1, 2, 2}, l.Perp().Coord)
}

func TestGenericPair_CoreOpsMatchPlainPlane(t *testing.T) {
	// The CK pair shares the projective core: meet, incidence, dot,
	// parametrize behave identically to the plain pair.
	p := ckplane.PointAt[ckplane.Hyperbolic](1, 2, 1)
	q := ckplane.PointAt[ckplane.Hyperbolic](3, 4, 1)
	join := p.Meet(q)
	assert.True(t, join.Incident(p))
	assert.True(t, join.Incident(q))
	assert.Equal(t, homog.Dot(p.Coord, join.Coord), p.Dot(join))

	mid := p.Parametrize(1, q, 1)
	assert.True(t, join.Incident(mid))
}
