// Package pgplane implements the projective plane over exact integer
// homogeneous coordinates: the capability interfaces every point/line
// pair satisfies, the plain projective pair PgPoint/PgLine, and the
// model-agnostic construction algorithms.
//
// What:
//
//   - Primitive / Plane: the capability interfaces of a dual point/line
//     pair (meet, incidence, equality; then aux, dot, parametrize).
//   - PgPoint / PgLine: the plain projective model, a matched dual pair
//     wrapping homog.Coord.
//   - Coincident, TriDual, Persp, CheckDesargue, CheckPappus, HarmConj,
//     Involution: free algorithms written once, generically, usable with
//     any pair satisfying the interfaces (including the Cayley-Klein
//     pairs in package ckplane).
//
// Why:
//
//   - Duality: every statement about points has a mirror statement about
//     lines. The algorithms take the point type and line type as a pair
//     of type parameters and never assume which is which, so the dual
//     reading is available by swapping the arguments' roles.
//   - Exactness: equality is proportionality of coordinates (vanishing
//     cross product), never component-wise comparison, and no operation
//     divides.
//
// Instantiation note: Go does not infer type arguments from method sets,
// so calls where the dual type appears only in the constraint need it
// spelled out, e.g. pgplane.Coincident[pgplane.PgPoint, pgplane.PgLine].
//
// Errors (sentinel):
//
//   - ErrDegenerateTriangle: the three vertices given to TriDual (or the
//     ckplane triangle algorithms) are collinear.
//   - ErrNonCollinear: the three points given to HarmConj do not lie on
//     one line.
//
// Degenerate zero-vector objects are rejected by the validating
// constructors (homog.ErrZeroVector); building objects from raw struct
// literals bypasses that check and is a caller precondition.
package pgplane
