// Package homog provides the raw integer arithmetic underneath the
// projective-plane packages: 3-component homogeneous coordinate vectors
// and the handful of primitive operations every construction reduces to.
//
// What:
//
//   - Coord: a [3]int64 homogeneous coordinate (point or line payload).
//   - Coord2: a [2]int64 planar vector for the affine-part helpers.
//   - Dot, Dot2, Cross, Cross2, Plucker: the primitive operations.
//   - Canonical, Hash: a proportionality-stable representative and hash.
//   - CheckedAdd, CheckedMul, CheckedDot, CheckedCross: overflow-detecting
//     variants for callers that cannot bound their inputs.
//
// Why:
//
//   - Exact geometry: every operation is integer-only, no division, no
//     floating point, so results are bit-exact and order-independent.
//   - A homogeneous coordinate is only meaningful up to a nonzero scalar
//     factor; Canonical folds that equivalence class to one representative.
//
// Coordinate width:
//
//   - Coordinates are int64. The unchecked primitives compute products of
//     two components plus one addition; inputs below roughly 2^31 in
//     magnitude can never overflow. Chains of meets amplify magnitude
//     multiplicatively, so long derivations over large inputs should use
//     the Checked* variants or renormalize with Canonical between steps.
//
// Errors (sentinel):
//
//   - ErrInvalidDimension: a slice given to FromSlice/Coord2FromSlice does
//     not have the required length (3, respectively 2).
//   - ErrZeroVector: the all-zero vector, which names no projective object.
//   - ErrOverflow: a Checked* operation left the int64 range.
package homog
