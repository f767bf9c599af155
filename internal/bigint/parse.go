package bigint

import "fmt"

const (
	// MinBase is the smallest base accepted by ParseBase and Text.
	MinBase = 2
	// MaxBase is the largest base accepted by ParseBase and Text.
	MaxBase = 36
)

// Parse reads a decimal integer: an optional leading '-' followed by one or
// more ASCII digits. Leading zeros are allowed and "-0" is zero.
func Parse(s string) (Int, error) {
	neg, body, err := splitSign(s)
	if err != nil {
		return Int{}, err
	}
	digits := make([]uint8, len(body))
	for i := range len(body) {
		ch := body[i]
		if ch < '0' || ch > '9' {
			return Int{}, fmt.Errorf("%w: invalid character %q in %q", ErrInvalidFormat, ch, s)
		}
		digits[len(body)-1-i] = ch - '0'
	}
	return normalize(neg, digits), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// ParseBase reads an integer written in the given base (2..36). Letters
// stand for digit values 10..35 in either case.
func ParseBase(s string, base int) (Int, error) {
	if base < MinBase || base > MaxBase {
		return Int{}, fmt.Errorf("%w: %d (expected %d..%d)", ErrInvalidBase, base, MinBase, MaxBase)
	}
	neg, body, err := splitSign(s)
	if err != nil {
		return Int{}, err
	}
	radix := FromInt64(int64(base))
	acc := Zero()
	for i := range len(body) {
		d, ok := digitValue(body[i])
		if !ok || d >= base {
			return Int{}, fmt.Errorf("%w: invalid base-%d digit %q in %q", ErrInvalidFormat, base, body[i], s)
		}
		acc = acc.Mul(radix).Add(FromInt64(int64(d)))
	}
	if neg {
		acc = acc.Neg()
	}
	return acc, nil
}

func splitSign(s string) (neg bool, body string, err error) {
	if s == "" {
		return false, "", fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}
	body = s
	if body[0] == '-' {
		neg = true
		body = body[1:]
	}
	if body == "" {
		return false, "", fmt.Errorf("%w: no digits in %q", ErrInvalidFormat, s)
	}
	return neg, body, nil
}

func digitValue(ch byte) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'z':
		return 10 + int(ch-'a'), true
	case ch >= 'A' && ch <= 'Z':
		return 10 + int(ch-'A'), true
	default:
		return 0, false
	}
}
