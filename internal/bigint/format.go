package bigint

import (
	"fmt"
	"slices"
)

const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// String returns the decimal representation of x.
func (x Int) String() string {
	d := x.mag()
	out := make([]byte, 0, len(d)+1)
	if x.neg && !x.IsZero() {
		out = append(out, '-')
	}
	for i := len(d) - 1; i >= 0; i-- {
		out = append(out, '0'+d[i])
	}
	return string(out)
}

// Text returns the representation of x in the given base (2..36), using
// upper-case letters for digits above 9.
func (x Int) Text(base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("%w: %d (expected %d..%d)", ErrInvalidBase, base, MinBase, MaxBase)
	}
	d := x.mag()
	if isZeroDigits(d) {
		return "0", nil
	}
	var out []byte
	for !isZeroDigits(d) {
		var r int
		d, r = divSmallDigits(d, base)
		out = append(out, digitAlphabet[r])
	}
	if x.neg {
		out = append(out, '-')
	}
	slices.Reverse(out)
	return string(out), nil
}
