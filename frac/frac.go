package frac

import (
	"errors"
	"fmt"
)

// ErrZeroDenominator reports an attempt to build or derive a fraction
// whose denominator would be zero.
var ErrZeroDenominator = errors.New("frac: zero denominator")

// Fraction is an exact rational value with int64 components. The zero
// value is 0/1. A Fraction is always stored reduced, with the
// denominator positive, so == on the struct would agree with Equal;
// still use Equal so intent survives refactors.
type Fraction struct {
	num int64
	den int64
}

// New returns num/den reduced to canonical form.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fmt.Errorf("%w: %d/0", ErrZeroDenominator, num)
	}

	return reduce(num, den), nil
}

// FromInt returns n as the fraction n/1.
func FromInt(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

// reduce divides out the gcd and moves the sign to the numerator.
// den must be nonzero.
func reduce(num, den int64) Fraction {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Fraction{num: 0, den: 1}
	}
	g := gcd(abs(num), den)
	return Fraction{num: num / g, den: den / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Num returns the reduced numerator; it carries the sign.
func (f Fraction) Num() int64 { return f.normalized().num }

// Den returns the reduced denominator, always positive.
func (f Fraction) Den() int64 { return f.normalized().den }

// normalized maps the struct zero value onto the canonical 0/1.
func (f Fraction) normalized() Fraction {
	if f.den == 0 {
		return Fraction{num: 0, den: 1}
	}
	return f
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	f, g = f.normalized(), g.normalized()
	if f.den == g.den {
		return reduce(f.num+g.num, f.den)
	}
	// Factor out the common part of the denominators first; that keeps
	// the intermediate products as small as the inputs allow.
	common := gcd(f.den, g.den)
	l := f.den / common
	r := g.den / common

	return reduce(r*f.num+l*g.num, f.den*r)
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	return f.Add(g.Neg())
}

// Mul returns f * g, cross-reducing before multiplying.
func (f Fraction) Mul(g Fraction) Fraction {
	f, g = f.normalized(), g.normalized()
	g1 := gcd(abs(f.num), g.den)
	g2 := gcd(abs(g.num), f.den)

	return reduce((f.num/g1)*(g.num/g2), (f.den/g2)*(g.den/g1))
}

// Div returns f / g.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	r, err := g.Reciprocal()
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: division by zero fraction", ErrZeroDenominator)
	}

	return f.Mul(r), nil
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	f = f.normalized()
	return Fraction{num: -f.num, den: f.den}
}

// Reciprocal returns den/num.
func (f Fraction) Reciprocal() (Fraction, error) {
	f = f.normalized()
	if f.num == 0 {
		return Fraction{}, fmt.Errorf("%w: reciprocal of zero", ErrZeroDenominator)
	}

	return reduce(f.den, f.num), nil
}

// Cmp compares f and g by cross-multiplication, returning -1, 0 or +1.
// Both denominators are positive, so the product order is the value
// order.
func (f Fraction) Cmp(g Fraction) int {
	f, g = f.normalized(), g.normalized()
	lhs := f.num * g.den
	rhs := g.num * f.den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Equal reports whether f and g denote the same rational value.
func (f Fraction) Equal(g Fraction) bool { return f.Cmp(g) == 0 }

// IsZero reports whether f is 0.
func (f Fraction) IsZero() bool { return f.normalized().num == 0 }

// Sign returns -1, 0 or +1 matching the sign of f.
func (f Fraction) Sign() int {
	switch n := f.normalized().num; {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// String renders f as "(num/den)".
func (f Fraction) String() string {
	f = f.normalized()
	return fmt.Sprintf("(%d/%d)", f.num, f.den)
}
