// Package projgeom is an exact projective-geometry toolkit: integer
// homogeneous coordinates, point/line duality, and the classical
// Cayley-Klein metric geometries built on top of them.
//
// 🚀 What is projgeom?
//
//	A library for doing plane projective geometry without a single
//	floating-point operation in the core:
//		• Primitives: meet/join, incidence, harmonic conjugates, involutions
//		• Theorems: Desargues and Pappus checks on exact coordinates
//		• Metrics: elliptic, hyperbolic, Euclidean, perspective and a
//		  custom model, each defined by one polarity
//		• Fractions: exact affine readings, cross-ratios, conics and
//		  projective transformations
//		• Rendering: SVG and PNG output at the float boundary
//
// ✨ Why choose projgeom?
//
//   - Exact - equality is proportionality and incidence is a zero dot
//     product, so theorems hold bit-for-bit
//   - Dual by construction - one generic implementation serves points
//     and lines, so the duality principle cannot drift
//   - Small API - a handful of operations compose into the whole of
//     classical plane geometry
//
// Under the hood, everything is organized under these subpackages:
//
//	homog/      - [3]int64 coordinate vectors, dot/cross, overflow checks
//	pgplane/    - the plain projective plane: PgPoint/PgLine + algorithms
//	ckplane/    - Cayley-Klein models: polarity, altitudes, reflections
//	frac/       - exact int64 fractions
//	predicates/ - orientation, sidedness, area, point-in-triangle
//	crossratio/ - the projective invariant of four collinear points
//	conic/      - conic sections with pole/polar duality
//	transform/  - projective transformations over fractions
//	render/     - SVG and PNG drawing
//
// Quick ASCII example:
//
//	    a ∨ b = l        two points join into a line
//	    l ∧ m = p        two lines meet in a point, always
//
//	no parallel-case branching anywhere: parallels meet at infinity.
//
// Dive into the per-package docs for the full APIs and examples.
//
//	go get github.com/katalvlaran/projgeom
package projgeom
