package bigint

var one = Int{digits: []uint8{1}}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	xd, yd := x.mag(), y.mag()
	if x.neg == y.neg {
		return normalize(x.neg, addDigits(xd, yd))
	}
	if cmpDigits(xd, yd) >= 0 {
		return normalize(x.neg, subDigits(xd, yd))
	}
	return normalize(y.neg, subDigits(yd, xd))
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	xd, yd := x.mag(), y.mag()
	if x.neg != y.neg {
		return normalize(x.neg, addDigits(xd, yd))
	}
	if cmpDigits(xd, yd) >= 0 {
		return normalize(x.neg, subDigits(xd, yd))
	}
	return normalize(!x.neg, subDigits(yd, xd))
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return normalize(x.neg != y.neg, mulDigits(x.mag(), y.mag()))
}

// QuoRem returns the quotient truncated toward zero and the remainder, which
// takes the sign of x, so that x == q*y + r.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivByZero
	}
	qd, rd := divModDigits(x.mag(), y.mag())
	return normalize(x.neg != y.neg, qd), normalize(x.neg, rd), nil
}

// Quo returns x / y truncated toward zero.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns x % y. The result has the sign of x, or is zero.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// AddAssign sets z = z + y.
func (z *Int) AddAssign(y Int) { *z = z.Add(y) }

// SubAssign sets z = z - y.
func (z *Int) SubAssign(y Int) { *z = z.Sub(y) }

// MulAssign sets z = z * y.
func (z *Int) MulAssign(y Int) { *z = z.Mul(y) }

// QuoAssign sets z = z / y. On error z is left unchanged.
func (z *Int) QuoAssign(y Int) error {
	q, err := z.Quo(y)
	if err != nil {
		return err
	}
	*z = q
	return nil
}

// RemAssign sets z = z % y. On error z is left unchanged.
func (z *Int) RemAssign(y Int) error {
	r, err := z.Rem(y)
	if err != nil {
		return err
	}
	*z = r
	return nil
}

// Inc increments z and returns the new value.
func (z *Int) Inc() Int {
	*z = z.Add(one)
	return *z
}

// PostInc increments z and returns the value it held before.
func (z *Int) PostInc() Int {
	prev := *z
	*z = z.Add(one)
	return prev
}

// Dec decrements z and returns the new value.
func (z *Int) Dec() Int {
	*z = z.Sub(one)
	return *z
}

// PostDec decrements z and returns the value it held before.
func (z *Int) PostDec() Int {
	prev := *z
	*z = z.Sub(one)
	return prev
}
