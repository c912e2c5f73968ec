// Package crossratio computes the cross-ratio, the fundamental
// projective invariant of four collinear points or four concurrent
// lines.
//
// What:
//
//   - CrossRatio: the exact value (a, b; c, d) as a frac.Fraction.
//   - IsHarmonic: the cross-ratio equals -1.
//   - CrossRatioLines: the pencil version, read off a transversal.
//
// Why:
//
//   - The cross-ratio is what projective maps preserve; distances and
//     ratios of distances are not invariant, this quotient of quotients
//     is. Computing it exactly needs fractions, which is why the frac
//     package exists.
//
// Method:
//
//   - c and d are decomposed in the basis {a, b} by cross products with
//     the carrier line, so the result does not depend on which scalar
//     multiples represent the four points.
//
// Errors (sentinel):
//
//   - ErrCoincidentPoints: the base pair coincides, or the value would
//     be infinite (c = b or d = a).
//   - pgplane.ErrNonCollinear: c or d is not on the line through a and b.
package crossratio
