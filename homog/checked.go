// Package homog checked arithmetic: overflow-detecting variants of the
// primitives for callers whose coordinate magnitudes cannot be bounded
// in advance. The unchecked primitives stay branch-free for the common
// case of small coordinates.
package homog

import (
	"fmt"
	"math"
)

// CheckedAdd returns a + b, or ErrOverflow if the sum leaves int64.
func CheckedAdd(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}

	return a + b, nil
}

// CheckedSub returns a - b, or ErrOverflow if the difference leaves int64.
func CheckedSub(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}

	return a - b, nil
}

// CheckedMul returns a * b, or ErrOverflow if the product leaves int64.
func CheckedMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a || (a == math.MinInt64 && b == -1) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}

	return p, nil
}

// CheckedDot returns Dot(a, b) with every intermediate product and sum
// verified against int64 overflow.
func CheckedDot(a, b Coord) (int64, error) {
	var sum int64
	for i := 0; i < 3; i++ {
		p, err := CheckedMul(a[i], b[i])
		if err != nil {
			return 0, err
		}
		sum, err = CheckedAdd(sum, p)
		if err != nil {
			return 0, err
		}
	}

	return sum, nil
}

// CheckedCross returns Cross(a, b) with every intermediate product and
// difference verified against int64 overflow.
func CheckedCross(a, b Coord) (Coord, error) {
	var out Coord
	// Each component is a[i]*b[j] - a[j]*b[i] for a fixed index pair.
	pairs := [3][2]int{{1, 2}, {2, 0}, {0, 1}}
	for k, ij := range pairs {
		i, j := ij[0], ij[1]
		p1, err := CheckedMul(a[i], b[j])
		if err != nil {
			return Coord{}, err
		}
		p2, err := CheckedMul(a[j], b[i])
		if err != nil {
			return Coord{}, err
		}
		out[k], err = CheckedSub(p1, p2)
		if err != nil {
			return Coord{}, err
		}
	}

	return out, nil
}
