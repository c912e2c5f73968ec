// Package frac implements an exact fraction over int64 for the affine
// side of the library: predicates, cross-ratios, conics and projective
// transformations all produce ratios that must not be truncated.
//
// What:
//
//   - Fraction: a reduced num/den pair with the denominator kept
//     positive, so each rational value has exactly one representation.
//   - New, FromInt: validating constructors (ErrZeroDenominator).
//   - Add, Sub, Mul, Div, Neg, Reciprocal: exact arithmetic.
//   - Cmp, Equal, IsZero, Sign: comparison by cross-multiplication.
//
// Why:
//
//   - The projective core never divides, but affine readings (coordinates
//     of a finite point, a cross-ratio value, a conic coefficient) are
//     genuine quotients. Fraction keeps them exact without floats.
//
// Width:
//
//   - Fixed int64 components, not arbitrary precision. Reduction after
//     every operation keeps magnitudes as small as the values allow;
//     callers with unbounded inputs own the overflow risk, as with the
//     unchecked homog primitives.
//
// Errors (sentinel):
//
//   - ErrZeroDenominator: a zero denominator in New, a division by a
//     zero fraction, or the reciprocal of zero.
package frac
