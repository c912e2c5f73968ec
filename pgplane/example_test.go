// Package pgplane_test provides runnable examples for the projective
// plane operations; each prints its expected output.
package pgplane_test

import (
	"fmt"

	"github.com/katalvlaran/projgeom/pgplane"
)

// ExamplePgPoint_Meet joins two affine points and verifies incidence.
func ExamplePgPoint_Meet() {
	// 1) Two ordinary points with unit homogeneous weight.
	p := pgplane.PgPointAt(1, 2, 1)
	q := pgplane.PgPointAt(3, 4, 1)

	// 2) Their join: the line through both.
	l := p.Meet(q)

	// 3) Both points are incident with the join; print the canonical
	//    representative so the output is scale-independent.
	fmt.Println("incident:", l.Incident(p) && l.Incident(q))
	fmt.Println("line:", l.Coord.Canonical())
	// Output:
	// incident: true
	// line: [1 -1 1]
}

// ExampleHarmConj computes the fourth harmonic point of a midpoint.
func ExampleHarmConj() {
	// 1) A segment from (0,0) to (2,0) and its midpoint.
	a := pgplane.PgPointAt(0, 0, 1)
	b := pgplane.PgPointAt(2, 0, 1)
	mid := pgplane.PgPointAt(1, 0, 1)

	// 2) The harmonic conjugate of the midpoint is the direction of the
	//    carrying line, i.e. the point at infinity [1 : 0 : 0].
	h, err := pgplane.HarmConj[pgplane.PgPoint, pgplane.PgLine](a, b, mid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("conjugate:", h.Coord.Canonical())
	// Output:
	// conjugate: [1 0 0]
}

// ExampleCheckPappus verifies Pappus's theorem on two point triples.
func ExampleCheckPappus() {
	co1 := [3]pgplane.PgPoint{
		pgplane.PgPointAt(0, 0, 1),
		pgplane.PgPointAt(1, 0, 1),
		pgplane.PgPointAt(2, 0, 1),
	}
	co2 := [3]pgplane.PgPoint{
		pgplane.PgPointAt(0, 1, 1),
		pgplane.PgPointAt(1, 1, 1),
		pgplane.PgPointAt(2, 1, 1),
	}
	ok := pgplane.CheckPappus[pgplane.PgPoint, pgplane.PgLine](co1, co2)
	fmt.Println("pappus holds:", ok)
	// Output:
	// pappus holds: true
}
