// Package transform applies projective transformations, 3x3 matrices
// over exact fractions, to integer points and lines.
//
// What:
//
//   - Transform: a row-major fraction matrix acting on homogeneous
//     coordinates.
//   - Identity, Translation, Scaling, Shear: affine constructors;
//     Rotation takes an exact cosine/sine pair (think Pythagorean
//     triples such as 3/5 and 4/5) instead of an angle, so the package
//     stays float-free.
//   - Compose, Determinant, Inverse: matrix algebra; Inverse rejects
//     singular matrices with ErrSingularMatrix.
//   - ApplyPoint, ApplyLine: the group action. Lines transform by the
//     inverse transpose, which is what keeps incidence invariant.
//
// Why:
//
//   - Results are cleared of denominators exactly before conversion
//     back to integer coordinates; a truncating division would silently
//     move points off their lines.
//
// Errors (sentinel):
//
//   - ErrSingularMatrix: Inverse or ApplyLine on a rank-deficient
//     transform, and ApplyPoint when the image collapses to the zero
//     vector.
package transform
