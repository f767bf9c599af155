// Package selftest is a runnable scenario suite that exercises the public
// bigint surface end to end, the way a user of the library would.
package selftest

import (
	"errors"
	"fmt"

	"bigint/internal/bigint"
)

// Check is one named scenario. Run returns nil on success.
type Check struct {
	Name string
	Run  func() error
}

func expectEq(what string, got, want bigint.Int) error {
	if !got.Equal(want) {
		return fmt.Errorf("%s: expected %s, got %s", what, want, got)
	}
	return nil
}

func expectErr(what string, err, kind error) error {
	if !errors.Is(err, kind) {
		return fmt.Errorf("%s: expected %v, got %v", what, kind, err)
	}
	return nil
}

func i64(v int64) bigint.Int { return bigint.FromInt64(v) }

// Checks returns the scenario suite in execution order.
func Checks() []Check {
	return []Check{
		{"default constructor", checkDefault},
		{"int constructor", checkIntConstructor},
		{"string constructor", checkStringConstructor},
		{"string rejection", checkStringRejection},
		{"stream output", checkStreamOutput},
		{"comparison operators", checkComparisons},
		{"arithmetic operators", checkArithmetic},
		{"compound assignment", checkCompound},
		{"unary negation", checkNegation},
		{"increment and decrement", checkIncDec},
		{"large division and modulus", checkLargeDivision},
		{"division by zero", checkDivByZero},
		{"based construction", checkBasedConstruction},
		{"based rendering", checkBasedRendering},
	}
}

func checkDefault() error {
	return expectEq("zero", bigint.Zero(), i64(0))
}

func checkIntConstructor() error {
	return errors.Join(
		expectEq("123", i64(123), bigint.MustParse("123")),
		expectEq("-456", i64(-456), bigint.MustParse("-456")),
		expectEq("0", i64(0), bigint.Zero()),
	)
}

func checkStringConstructor() error {
	cases := []struct {
		in   string
		want bigint.Int
	}{
		{"12345", i64(12345)},
		{"-9876", i64(-9876)},
		{"0", i64(0)},
		{"0000123456789", i64(123456789)},
		{"-0", i64(0)},
		{"123456789123456789123456789", bigint.MustParse("123456789123456789123456789")},
	}
	var errs []error
	for _, tc := range cases {
		got, err := bigint.Parse(tc.in)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", tc.in, err))
			continue
		}
		errs = append(errs, expectEq(fmt.Sprintf("%q", tc.in), got, tc.want))
	}
	return errors.Join(errs...)
}

func checkStringRejection() error {
	var errs []error
	for _, in := range []string{"", "12a45", "12 345", "12@345", "-"} {
		_, err := bigint.Parse(in)
		errs = append(errs, expectErr(fmt.Sprintf("%q", in), err, bigint.ErrInvalidFormat))
	}
	return errors.Join(errs...)
}

func checkStreamOutput() error {
	if got := fmt.Sprint(i64(12345)); got != "12345" {
		return fmt.Errorf("expected 12345, got %s", got)
	}
	if got := fmt.Sprint(i64(-9876)); got != "-9876" {
		return fmt.Errorf("expected -9876, got %s", got)
	}
	if got := bigint.MustParse("-0").String(); got != "0" {
		return fmt.Errorf("expected 0 for -0, got %s", got)
	}
	return nil
}

func checkComparisons() error {
	n1, n2, n3, n4 := i64(12345), i64(9876), i64(12345), i64(-12345)
	if n1.Equal(n3) && n1.NotEqual(n2) && n1.Greater(n2) && n1.GreaterEq(n3) &&
		n2.Less(n1) && n2.LessEq(n1) && n4.Less(n2) && n4.Less(n1) {
		return nil
	}
	return errors.New("comparison mismatch")
}

func checkArithmetic() error {
	n1, n2 := i64(123), i64(456)
	q, qErr := n2.Quo(n1)
	r, rErr := n2.Rem(n1)
	return errors.Join(
		expectEq("123 + 456", n1.Add(n2), i64(579)),
		expectEq("123 - 456", n1.Sub(n2), i64(-333)),
		expectEq("123 * 456", n1.Mul(n2), i64(56088)),
		qErr, expectEq("456 / 123", q, i64(3)),
		rErr, expectEq("456 % 123", r, i64(87)),
	)
}

func checkCompound() error {
	n1, n2 := i64(123), i64(456)
	n1.AddAssign(n2)
	n2.SubAssign(n1)
	n1.MulAssign(i64(2))
	if err := n2.QuoAssign(i64(2)); err != nil {
		return err
	}
	if err := n2.RemAssign(i64(60)); err != nil {
		return err
	}
	return errors.Join(expectEq("num1", n1, i64(1158)), expectEq("num2", n2, i64(-1)))
}

func checkNegation() error {
	return errors.Join(
		expectEq("-123", i64(123).Neg(), i64(-123)),
		expectEq("-(-456)", i64(-456).Neg(), i64(456)),
		expectEq("-0", bigint.Zero().Neg(), bigint.Zero()),
	)
}

func checkIncDec() error {
	num := i64(10)
	start := num
	num.Inc()
	if err := expectEq("++num", num, start.Add(i64(1))); err != nil {
		return err
	}
	post := num.PostInc()
	if err := errors.Join(expectEq("num++", num, start.Add(i64(2))), expectEq("num++ value", post, start.Add(i64(1)))); err != nil {
		return err
	}
	preDec := num
	num.Dec()
	if err := expectEq("--num", num, preDec.Sub(i64(1))); err != nil {
		return err
	}
	postDec := num.PostDec()
	return errors.Join(
		expectEq("num--", num, preDec.Sub(i64(2))),
		expectEq("num-- value", postDec, preDec.Sub(i64(1))),
		expectEq("final", num, i64(10)),
	)
}

func checkLargeDivision() error {
	a := bigint.MustParse("987654321987654321")
	b := bigint.MustParse("123456789123456789")
	q, qErr := a.Quo(b)
	r, rErr := a.Rem(b)
	return errors.Join(
		qErr, expectEq("quotient", q, i64(8)),
		rErr, expectEq("remainder", r, bigint.MustParse("9000000009")),
	)
}

func checkDivByZero() error {
	_, qErr := i64(100).Quo(i64(0))
	_, rErr := i64(100).Rem(i64(0))
	return errors.Join(
		expectErr("100 / 0", qErr, bigint.ErrDivByZero),
		expectErr("100 % 0", rErr, bigint.ErrDivByZero),
	)
}

func checkBasedConstruction() error {
	ff, err := bigint.ParseBase("FF", 16)
	if err != nil {
		return err
	}
	_, baseErr := bigint.ParseBase("1", 37)
	_, digitErr := bigint.ParseBase("2", 2)
	return errors.Join(
		expectEq("FF", ff, i64(255)),
		expectErr("base 37", baseErr, bigint.ErrInvalidBase),
		expectErr("digit 2 in base 2", digitErr, bigint.ErrInvalidFormat),
	)
}

func checkBasedRendering() error {
	for base := bigint.MinBase; base <= bigint.MaxBase; base++ {
		v := bigint.MustParse("123456789123456789")
		text, err := v.Text(base)
		if err != nil {
			return err
		}
		back, err := bigint.ParseBase(text, base)
		if err != nil {
			return err
		}
		if err := expectEq(fmt.Sprintf("base %d", base), back, v); err != nil {
			return err
		}
	}
	_, err := i64(1).Text(1)
	return expectErr("base 1", err, bigint.ErrInvalidBase)
}
