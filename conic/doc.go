// Package conic represents conic sections as symmetric 3x3 fraction
// matrices and exposes the pole/polar machinery exactly.
//
// What:
//
//   - Conic: the quadratic form Q; a point x lies on the conic when
//     x^T Q x = 0.
//   - New, Circle, UnitCircle, Parabola: constructors.
//   - Contains, Polar, Tangent, Pole: the incidence and duality
//     operations; Pole inverts the polarity through the adjugate so no
//     fraction inverse of the whole matrix is needed.
//   - Discriminant, Type: the affine classification into ellipse,
//     parabola and hyperbola.
//
// Why:
//
//   - A conic induces its own polarity, the curved sibling of the
//     Cayley-Klein model polarities; pole and polar against it stay in
//     integer line and point coordinates because results are cleared of
//     denominators exactly, never truncated.
//
// Errors (sentinel):
//
//   - ErrDegenerateConic: the polar or pole vanishes, meaning the
//     argument sits in the kernel of a singular quadratic form.
package conic
