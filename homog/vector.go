// Package homog implements the primitive vector operations: dot products,
// cross products, and the Plucker linear combination. These are pure
// functions over fixed-width integers; no operation divides.
package homog

import (
	"encoding/binary"
	"hash/fnv"
)

// Dot returns the 3-component dot product a·b.
// Complexity: O(1).
func Dot(a, b Coord) int64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Dot2 returns the planar dot product of two 2-component vectors.
// Complexity: O(1).
func Dot2(a, b Coord2) int64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Cross2 returns the scalar planar cross product a[0]*b[1] - a[1]*b[0].
// Complexity: O(1).
func Cross2(a, b Coord2) int64 {
	return a[0]*b[1] - a[1]*b[0]
}

// Cross returns the 3-component vector cross product a × b.
// Geometrically this is the meet: the line joining two points, or the
// point where two lines intersect. Cross of proportional vectors is the
// zero vector, which is exactly the equality test used by the object
// types.
// Complexity: O(1).
func Cross(a, b Coord) Coord {
	return Coord{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Plucker returns the component-wise scaled sum ld·a + mu·b. It is the
// parametrization primitive: sweeping (ld, mu) over all ratios traces
// every object on the pencil spanned by a and b.
// Complexity: O(1).
func Plucker(ld int64, a Coord, mu int64, b Coord) Coord {
	return Coord{
		ld*a[0] + mu*b[0],
		ld*a[1] + mu*b[1],
		ld*a[2] + mu*b[2],
	}
}

// gcd returns the greatest common divisor of two non-negative integers.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// abs returns the absolute value of x. Behavior at math.MinInt64 is the
// caller's concern, consistent with the unchecked width policy.
func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// Canonical returns the canonical representative of the proportionality
// class of c: components divided by their greatest common divisor, with
// the sign flipped so the last nonzero component is positive.
// Proportional coordinates map to the identical Coord, which makes
// Canonical the basis of Hash. The zero vector maps to itself.
// Complexity: O(log max|c_i|) for the gcd.
func (c Coord) Canonical() Coord {
	// 1) Reduce by the gcd of the absolute components.
	g := gcd(gcd(abs(c[0]), abs(c[1])), abs(c[2]))
	if g > 1 {
		c[0] /= g
		c[1] /= g
		c[2] /= g
	}
	// 2) Normalize the overall sign on the last nonzero component.
	switch {
	case c[2] != 0:
		if c[2] < 0 {
			c[0], c[1], c[2] = -c[0], -c[1], -c[2]
		}
	case c[1] != 0:
		if c[1] < 0 {
			c[0], c[1] = -c[0], -c[1]
		}
	case c[0] < 0:
		c[0] = -c[0]
	}

	return c
}

// Hash returns a stable 64-bit hash of the proportionality class of c:
// proportional coordinates hash identically, matching the equality
// semantics of the point and line types built on Coord.
func (c Coord) Hash() uint64 {
	canon := c.Canonical()
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range canon {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}
