package bigint

// Digit vectors are base-10 little-endian: d[0] is the least significant digit.
// Every helper here treats its inputs as read-only and returns a fresh slice.

func trimDigits(d []uint8) []uint8 {
	for len(d) > 1 && d[len(d)-1] == 0 {
		d = d[:len(d)-1]
	}
	if len(d) == 0 {
		return []uint8{0}
	}
	return d
}

func isZeroDigits(d []uint8) bool {
	return len(d) == 0 || (len(d) == 1 && d[0] == 0)
}

func addDigits(a, b []uint8) []uint8 {
	n := max(len(a), len(b))
	out := make([]uint8, 0, n+1)
	var carry uint8
	for i := 0; i < n || carry != 0; i++ {
		sum := carry
		if i < len(a) {
			sum += a[i]
		}
		if i < len(b) {
			sum += b[i]
		}
		out = append(out, sum%10)
		carry = sum / 10
	}
	return out
}

// subDigits requires |a| >= |b|; callers branch on cmpDigits first.
func subDigits(a, b []uint8) []uint8 {
	out := make([]uint8, len(a))
	borrow := 0
	for i := range a {
		diff := int(a[i]) - borrow
		if i < len(b) {
			diff -= int(b[i])
		}
		if diff < 0 {
			diff += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint8(diff) //nolint:gosec // G115: diff is in [0,9].
	}
	return trimDigits(out)
}

func cmpDigits(a, b []uint8) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

func mulDigits(a, b []uint8) []uint8 {
	out := make([]uint8, len(a)+len(b))
	for i := range a {
		carry := 0
		for j := 0; j < len(b) || carry != 0; j++ {
			cur := int(out[i+j]) + carry
			if j < len(b) {
				cur += int(a[i]) * int(b[j])
			}
			out[i+j] = uint8(cur % 10) //nolint:gosec // G115: remainder is a single digit.
			carry = cur / 10
		}
	}
	return trimDigits(out)
}

// divModDigits is schoolbook long division: the running remainder takes one
// dividend digit at a time and the quotient digit is the number of times b
// can be subtracted from it. b must be nonzero.
func divModDigits(a, b []uint8) (q, r []uint8) {
	if cmpDigits(a, b) < 0 {
		r = make([]uint8, len(a))
		copy(r, a)
		return []uint8{0}, r
	}
	q = make([]uint8, len(a))
	cur := []uint8{0}
	for i := len(a) - 1; i >= 0; i-- {
		cur = shiftInDigit(cur, a[i])
		var count uint8
		for cmpDigits(cur, b) >= 0 {
			cur = subDigits(cur, b)
			count++
		}
		q[i] = count
	}
	return trimDigits(q), cur
}

// shiftInDigit returns d*10 + low.
func shiftInDigit(d []uint8, low uint8) []uint8 {
	out := make([]uint8, 0, len(d)+1)
	out = append(out, low)
	out = append(out, d...)
	return trimDigits(out)
}

// divSmallDigits divides a by a small positive divisor and returns the
// quotient digits together with the remainder.
func divSmallDigits(a []uint8, d int) ([]uint8, int) {
	q := make([]uint8, len(a))
	rem := 0
	for i := len(a) - 1; i >= 0; i-- {
		cur := rem*10 + int(a[i])
		q[i] = uint8(cur / d) //nolint:gosec // G115: rem < d keeps the quotient below 10.
		rem = cur % d
	}
	return trimDigits(q), rem
}

func digitsFromUint64(v uint64) []uint8 {
	if v == 0 {
		return []uint8{0}
	}
	out := make([]uint8, 0, 20)
	for v > 0 {
		out = append(out, uint8(v%10)) //nolint:gosec // G115: v%10 is a single digit.
		v /= 10
	}
	return out
}
