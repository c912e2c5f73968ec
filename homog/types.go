// Package homog defines the coordinate types and sentinel errors shared
// by the projgeom packages.
package homog

import "errors"

// Sentinel errors for coordinate construction and checked arithmetic.
var (
	// ErrInvalidDimension indicates a coordinate slice of the wrong length.
	ErrInvalidDimension = errors.New("homog: coordinate vector must have exactly the required length")
	// ErrZeroVector indicates the all-zero vector, which is not a valid projective object.
	ErrZeroVector = errors.New("homog: zero vector does not name a projective object")
	// ErrOverflow indicates a checked operation exceeded the int64 range.
	ErrOverflow = errors.New("homog: arithmetic overflow")
)

// Coord is a homogeneous coordinate: three signed integers, meaningful
// only up to multiplication by a nonzero scalar. It is the payload of
// every point and line type in this module.
type Coord [3]int64

// Coord2 is a planar 2-component vector used by the affine-part helpers
// (Dot2, Cross2) of the Euclidean model.
type Coord2 [2]int64

// FromSlice validates and converts a caller-supplied slice into a Coord.
// Returns ErrInvalidDimension unless len(xs) == 3, and ErrZeroVector for
// the all-zero vector (a degenerate object is rejected at construction
// rather than surfacing as a meaningless result downstream).
// Complexity: O(1).
func FromSlice(xs []int64) (Coord, error) {
	if len(xs) != 3 {
		return Coord{}, ErrInvalidDimension
	}
	c := Coord{xs[0], xs[1], xs[2]}
	if c.IsZero() {
		return Coord{}, ErrZeroVector
	}

	return c, nil
}

// Coord2FromSlice validates and converts a slice into a Coord2.
// Returns ErrInvalidDimension unless len(xs) == 2.
// Complexity: O(1).
func Coord2FromSlice(xs []int64) (Coord2, error) {
	if len(xs) != 2 {
		return Coord2{}, ErrInvalidDimension
	}

	return Coord2{xs[0], xs[1]}, nil
}

// IsZero reports whether every component of c is zero.
func (c Coord) IsZero() bool {
	return c[0] == 0 && c[1] == 0 && c[2] == 0
}

// AffinePart returns the first two components of c as a Coord2.
// For a line [a, b, c] this is the normal direction [a, b]; for a point
// it is the affine numerator pair.
func (c Coord) AffinePart() Coord2 {
	return Coord2{c[0], c[1]}
}
