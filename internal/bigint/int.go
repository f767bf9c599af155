// Package bigint implements arbitrary-precision signed integers stored as
// sign and magnitude, the magnitude being a vector of decimal digits.
//
// Values are immutable: every operation returns a new Int and digit vectors
// are never written after construction, so copies of an Int may share them.
// The zero value is the number 0.
package bigint

import (
	"math"
	"slices"

	"fortio.org/safecast"
)

// Int represents a big signed integer.
type Int struct {
	neg bool
	// digits are base-10 little-endian (digits[0] is least significant).
	//
	// Canonical form has no most-significant zeros and neg=false for zero.
	// A nil slice is read as the single digit 0.
	digits []uint8
}

var zeroDigits = []uint8{0}

// Zero returns the integer 0.
func Zero() Int { return Int{} }

// FromInt64 creates an Int from an int64.
func FromInt64(v int64) Int {
	if v >= 0 {
		return Int{digits: digitsFromUint64(uint64(v))}
	}
	u := uint64(-(v + 1)) //nolint:gosec // G115: -(v+1) is non-negative and fits in uint64 here.
	u++
	return Int{neg: true, digits: digitsFromUint64(u)}
}

// FromUint64 creates an Int from a uint64.
func FromUint64(v uint64) Int {
	return Int{digits: digitsFromUint64(v)}
}

// normalize trims most-significant zeros and canonicalizes the sign of zero.
// Every path that assembles a digit vector ends here.
func normalize(neg bool, digits []uint8) Int {
	digits = trimDigits(digits)
	if isZeroDigits(digits) {
		neg = false
	}
	return Int{neg: neg, digits: digits}
}

func (x Int) mag() []uint8 {
	if len(x.digits) == 0 {
		return zeroDigits
	}
	return x.digits
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return isZeroDigits(x.digits) }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Len returns the number of decimal digits in the magnitude of x.
func (x Int) Len() int { return len(x.mag()) }

// Neg returns -x. Zero stays positive.
func (x Int) Neg() Int {
	if x.IsZero() {
		return Int{}
	}
	return Int{neg: !x.neg, digits: x.digits}
}

// Abs returns |x|.
func (x Int) Abs() Int { return Int{digits: x.digits} }

// Int64 converts x to int64 if it fits.
func (x Int) Int64() (int64, bool) {
	d := x.mag()
	// Any 19-digit magnitude fits in a uint64; 20 digits exceed MaxInt64.
	if len(d) > 19 {
		return 0, false
	}
	var mag uint64
	for i := len(d) - 1; i >= 0; i-- {
		mag = mag*10 + uint64(d[i])
	}
	if x.neg {
		if mag == uint64(math.MaxInt64)+1 {
			return math.MinInt64, true
		}
		v, err := safecast.Conv[int64](mag)
		if err != nil {
			return 0, false
		}
		return -v, true
	}
	v, err := safecast.Conv[int64](mag)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Equal reports x == y. Canonical form makes this structural.
func (x Int) Equal(y Int) bool {
	return x.neg == y.neg && slices.Equal(x.mag(), y.mag())
}

// NotEqual reports x != y.
func (x Int) NotEqual(y Int) bool { return !x.Equal(y) }

// Less reports x < y.
func (x Int) Less(y Int) bool {
	if x.neg != y.neg {
		return x.neg
	}
	xd, yd := x.mag(), y.mag()
	if len(xd) != len(yd) {
		if x.neg {
			return len(xd) > len(yd)
		}
		return len(xd) < len(yd)
	}
	for i := len(xd) - 1; i >= 0; i-- {
		if xd[i] != yd[i] {
			if x.neg {
				return xd[i] > yd[i]
			}
			return xd[i] < yd[i]
		}
	}
	return false
}

// LessEq reports x <= y.
func (x Int) LessEq(y Int) bool { return x.Less(y) || x.Equal(y) }

// Greater reports x > y.
func (x Int) Greater(y Int) bool { return !x.LessEq(y) }

// GreaterEq reports x >= y.
func (x Int) GreaterEq(y Int) bool { return !x.Less(y) }

// Cmp compares x and y and returns -1, 0, or +1.
func (x Int) Cmp(y Int) int {
	switch {
	case x.Less(y):
		return -1
	case x.Equal(y):
		return 0
	default:
		return 1
	}
}
