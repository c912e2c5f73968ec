// Package pgplane generic plane algorithms. Each function is written
// once over the capability interfaces and works with every point/line
// pair in the module; swapping the type arguments yields the dual
// statement.
package pgplane

// Coincident reports whether the three objects p, q, r lie on a common
// dual object: for points, whether they are collinear.
// Complexity: O(1).
func Coincident[P Primitive[P, L], L Primitive[L, P]](p, q, r P) bool {
	return p.Meet(q).Incident(r)
}

// TriDual returns the three side-lines of the triangle, opposite each
// vertex in vertex order: [a2∨a3, a1∨a3, a1∨a2]. By duality the same
// call with line arguments returns the three corner points of a
// trilateral.
//
// Returns ErrDegenerateTriangle if the vertices are collinear; the dual
// sides of a degenerate triangle would all coincide.
// Complexity: O(1).
func TriDual[P Primitive[P, L], L Primitive[L, P]](tri [3]P) ([3]L, error) {
	a1, a2, a3 := tri[0], tri[1], tri[2]
	if Coincident[P, L](a1, a2, a3) {
		return [3]L{}, ErrDegenerateTriangle
	}

	return [3]L{a2.Meet(a3), a1.Meet(a3), a1.Meet(a2)}, nil
}

// Persp reports whether the two triangles are perspective from a point:
// the three lines joining corresponding vertices pass through a common
// center. Computed as o = (a∨d) ∧ (b∨e), then testing c∨f through o.
// Complexity: O(1).
func Persp[P Primitive[P, L], L Primitive[L, P]](tri1, tri2 [3]P) bool {
	a, b, c := tri1[0], tri1[1], tri1[2]
	d, e, f := tri2[0], tri2[1], tri2[2]
	o := a.Meet(d).Meet(b.Meet(e))

	return c.Meet(f).Incident(o)
}

// CheckDesargue verifies the Desargues configuration: the two triangles
// are perspective from a point exactly when their dual trilaterals are
// perspective from a line. Returns true when the two perspectivity tests
// agree (both hold or both fail).
//
// Returns ErrDegenerateTriangle if either triangle is collinear.
// Complexity: O(1).
func CheckDesargue[P Primitive[P, L], L Primitive[L, P]](tri1, tri2 [3]P) (bool, error) {
	d1, err := TriDual[P, L](tri1)
	if err != nil {
		return false, err
	}
	d2, err := TriDual[P, L](tri2)
	if err != nil {
		return false, err
	}
	b1 := Persp[P, L](tri1, tri2)
	b2 := Persp[L, P](d1, d2)

	return b1 == b2, nil
}

// CheckPappus verifies Pappus's hexagon theorem for two collinear point
// triples: the three cross-axis intersections
// g = (a∨e)∧(b∨d), h = (a∨f)∧(c∨d), i = (b∨f)∧(c∨e)
// are themselves collinear. Returns the collinearity of g, h, i.
// Complexity: O(1).
func CheckPappus[P Primitive[P, L], L Primitive[L, P]](co1, co2 [3]P) bool {
	a, b, c := co1[0], co1[1], co1[2]
	d, e, f := co2[0], co2[1], co2[2]
	g := a.Meet(e).Meet(b.Meet(d))
	h := a.Meet(f).Meet(c.Meet(d))
	i := b.Meet(f).Meet(c.Meet(e))

	return Coincident[P, L](g, h, i)
}

// HarmConj returns the harmonic conjugate of c with respect to a and b:
// the fourth point of the harmonic range on the line a∨b. The
// construction takes an arbitrary dual object off the line (Aux), meets
// it with c, and weighs a and b by the resulting measurements:
//
//	ab  = a∨b
//	lc  = Aux(ab)∨c
//	out = (lc·b)a + (lc·a)b   (Parametrize)
//
// Applying the construction twice returns c again (the map is an
// involution on the third argument).
//
// Returns ErrNonCollinear unless a, b, c lie on a common line.
// Complexity: O(1).
func HarmConj[P Plane[P, L], L Plane[L, P]](a, b, c P) (P, error) {
	if !Coincident[P, L](a, b, c) {
		var zero P
		return zero, ErrNonCollinear
	}
	ab := a.Meet(b)
	lc := ab.Aux().Meet(c)

	return a.Parametrize(lc.Dot(b), b, lc.Dot(a)), nil
}

// Involution maps p to its harmonic conjugate with respect to origin and
// the intersection of p∨origin with mirror. Repeating the map restores
// p, hence the name.
//
// Propagates ErrNonCollinear from the underlying harmonic construction
// (possible only for degenerate input such as p equal to origin).
// Complexity: O(1).
func Involution[P Plane[P, L], L Plane[L, P]](origin P, mirror L, p P) (P, error) {
	b := p.Meet(origin).Meet(mirror)

	return HarmConj[P, L](origin, b, p)
}
