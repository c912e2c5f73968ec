// Package predicates provides affine readings of projective points and
// lines: orientation, sidedness, distance and area, all exact.
//
// What:
//
//   - Orientation: clockwise / counter-clockwise / collinear for a point
//     triple, computed over exact fractions.
//   - LinePosition: which side of a line a point lies on, by the sign of
//     the integer dot product.
//   - Affine: the exact (x, y) coordinates of a finite point.
//   - SquaredDistance, TriangleArea, PointInTriangle, AngleCosine: the
//     usual computational-geometry predicates over frac.Fraction.
//   - IsAtInfinity, IsLineAtInfinity: the z = 0 tests.
//
// Why:
//
//   - The projective core deliberately knows nothing about "finite" or
//     "infinite"; these predicates are the bridge to affine geometry,
//     and they stay exact by reading coordinates as fractions instead
//     of truncating an integer division.
//
// Caveats:
//
//   - LinePosition's Left/Right depend on the sign of the chosen
//     homogeneous representatives; scaling the line by -1 swaps them.
//     OnLine is representative-independent.
//   - AngleCosine is a sign-faithful surrogate, not the true cosine: it
//     divides the dot product by the product of squared norms, which
//     preserves the sign and the zero but not the magnitude.
//
// Errors (sentinel):
//
//   - ErrPointAtInfinity: an affine predicate was given a point with
//     z = 0.
package predicates
