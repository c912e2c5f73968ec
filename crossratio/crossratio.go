package crossratio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/projgeom/frac"
	"github.com/katalvlaran/projgeom/homog"
	"github.com/katalvlaran/projgeom/pgplane"
)

// ErrCoincidentPoints reports a degenerate quadruple: the base pair
// coincides or the cross-ratio has no finite value.
var ErrCoincidentPoints = errors.New("crossratio: coincident points leave the cross-ratio undefined")

// CrossRatio returns the exact cross-ratio (a, b; c, d) of four
// collinear points, following the classical convention
// ((c-a)(d-b)) / ((c-b)(d-a)).
//
// The computation decomposes c and d over the basis {a, b}: writing
// c = alpha*a + beta*b, every cross product of c with a or b is a
// multiple of the carrier line, and the ratios of those multiples are
// independent of the representatives chosen for all four points.
func CrossRatio(a, b, c, d pgplane.PgPoint) (frac.Fraction, error) {
	if a.Equal(b) {
		return frac.Fraction{}, fmt.Errorf("%w: base points are equal", ErrCoincidentPoints)
	}

	carrier := a.Meet(b)
	if !carrier.Incident(c) || !carrier.Incident(d) {
		return frac.Fraction{}, fmt.Errorf("%w: cross-ratio needs four collinear points", pgplane.ErrNonCollinear)
	}

	// Any nonzero component of the carrier works as the probe index; all
	// cross products below are scalar multiples of the carrier.
	k := 0
	for carrier.Coord[k] == 0 {
		k++
	}

	ca := homog.Cross(c.Coord, a.Coord)[k]
	cb := homog.Cross(c.Coord, b.Coord)[k]
	da := homog.Cross(d.Coord, a.Coord)[k]
	db := homog.Cross(d.Coord, b.Coord)[k]

	den := cb * da
	if den == 0 {
		return frac.Fraction{}, fmt.Errorf("%w: value is infinite", ErrCoincidentPoints)
	}

	return frac.New(ca*db, den)
}

// IsHarmonic reports whether (a, b; c, d) = -1.
func IsHarmonic(a, b, c, d pgplane.PgPoint) (bool, error) {
	cr, err := CrossRatio(a, b, c, d)
	if err != nil {
		return false, err
	}

	return cr.Equal(frac.FromInt(-1)), nil
}

// CrossRatioLines returns the cross-ratio of four concurrent lines by
// intersecting them with a transversal; projective invariance makes the
// choice of transversal irrelevant as long as it avoids the pencil's
// center.
func CrossRatioLines(l1, l2, l3, l4, transversal pgplane.PgLine) (frac.Fraction, error) {
	p1 := l1.Meet(transversal)
	p2 := l2.Meet(transversal)
	p3 := l3.Meet(transversal)
	p4 := l4.Meet(transversal)

	return CrossRatio(p1, p2, p3, p4)
}
