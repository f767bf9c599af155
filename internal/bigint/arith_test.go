package bigint_test

import (
	"errors"
	"testing"

	"bigint/internal/bigint"
)

func TestArithmeticOperators(t *testing.T) {
	n1 := bigint.FromInt64(123)
	n2 := bigint.FromInt64(456)

	if got := n1.Add(n2); !got.Equal(bigint.FromInt64(579)) {
		t.Fatalf("expected 579, got %s", got)
	}
	if got := n1.Sub(n2); !got.Equal(bigint.FromInt64(-333)) {
		t.Fatalf("expected -333, got %s", got)
	}
	if got := n1.Mul(n2); !got.Equal(bigint.FromInt64(56088)) {
		t.Fatalf("expected 56088, got %s", got)
	}
	q, err := n2.Quo(n1)
	if err != nil || !q.Equal(bigint.FromInt64(3)) {
		t.Fatalf("expected 3, got %s (err=%v)", q, err)
	}
	r, err := n2.Rem(n1)
	if err != nil || !r.Equal(bigint.FromInt64(87)) {
		t.Fatalf("expected 87, got %s (err=%v)", r, err)
	}
}

func TestAddSubCrossingZero(t *testing.T) {
	cases := []struct {
		op         string
		a, b, want string
	}{
		{"+", "5", "-5", "0"},
		{"+", "-5", "5", "0"},
		{"+", "-5", "3", "-2"},
		{"+", "5", "-8", "-3"},
		{"+", "-999", "-1", "-1000"},
		{"-", "3", "5", "-2"},
		{"-", "-3", "-5", "2"},
		{"-", "-3", "5", "-8"},
		{"-", "3", "-5", "8"},
		{"-", "7", "7", "0"},
		{"-", "-7", "-7", "0"},
		{"-", "1000", "1", "999"},
	}
	for _, tc := range cases {
		a, b := bigint.MustParse(tc.a), bigint.MustParse(tc.b)
		var got bigint.Int
		if tc.op == "+" {
			got = a.Add(b)
		} else {
			got = a.Sub(b)
		}
		if got.String() != tc.want {
			t.Fatalf("%s %s %s: expected %s, got %s", tc.a, tc.op, tc.b, tc.want, got)
		}
	}
}

func TestMulSigns(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"-12", "12", "-144"},
		{"-12", "-12", "144"},
		{"-12", "0", "0"},
		{"0", "-12", "0"},
		{"99999999999999999999", "99999999999999999999", "9999999999999999999800000000000000000001"},
	}
	for _, tc := range cases {
		got := bigint.MustParse(tc.a).Mul(bigint.MustParse(tc.b))
		if got.String() != tc.want {
			t.Fatalf("%s * %s: expected %s, got %s", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestLargeDivision(t *testing.T) {
	a := bigint.MustParse("987654321987654321")
	b := bigint.MustParse("123456789123456789")
	q, err := a.Quo(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.String() != "8" {
		t.Fatalf("expected 8, got %s", q)
	}
	r, err := a.Rem(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.String() != "9000000009" {
		t.Fatalf("expected 9000000009, got %s", r)
	}
}

func TestTruncatedDivisionSigns(t *testing.T) {
	cases := []struct{ a, b, q, r string }{
		{"7", "2", "3", "1"},
		{"-7", "2", "-3", "-1"},
		{"7", "-2", "-3", "1"},
		{"-7", "-2", "3", "-1"},
		{"-6", "3", "-2", "0"},
		{"-1", "5", "0", "-1"},
		{"1", "-5", "0", "1"},
		{"0", "-5", "0", "0"},
	}
	for _, tc := range cases {
		a, b := bigint.MustParse(tc.a), bigint.MustParse(tc.b)
		q, r, err := a.QuoRem(b)
		if err != nil {
			t.Fatalf("%s / %s: unexpected error %v", tc.a, tc.b, err)
		}
		if q.String() != tc.q || r.String() != tc.r {
			t.Fatalf("%s / %s: expected %s r %s, got %s r %s", tc.a, tc.b, tc.q, tc.r, q, r)
		}
	}
}

func TestRemSmallerDividendReturnsDividend(t *testing.T) {
	a := bigint.FromInt64(-42)
	r, err := a.Rem(bigint.FromInt64(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Equal(a) {
		t.Fatalf("expected %s, got %s", a, r)
	}
}

func TestDivisionByZero(t *testing.T) {
	a := bigint.FromInt64(100)
	if _, err := a.Quo(bigint.FromInt64(0)); !errors.Is(err, bigint.ErrDivByZero) {
		t.Fatalf("expected ErrDivByZero, got %v", err)
	}
	if _, err := a.Rem(bigint.Zero()); !errors.Is(err, bigint.ErrDivByZero) {
		t.Fatalf("expected ErrDivByZero, got %v", err)
	}
	if _, err := a.Quo(bigint.MustParse("-0")); !errors.Is(err, bigint.ErrDivByZero) {
		t.Fatalf("expected ErrDivByZero for -0 divisor, got %v", err)
	}
}

func TestCompoundAssignment(t *testing.T) {
	n1 := bigint.FromInt64(123)
	n2 := bigint.FromInt64(456)
	n1.AddAssign(n2)
	n2.SubAssign(n1)
	n1.MulAssign(bigint.FromInt64(2))
	if err := n2.QuoAssign(bigint.FromInt64(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := n2.RemAssign(bigint.FromInt64(60)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !n1.Equal(bigint.FromInt64(1158)) {
		t.Fatalf("expected 1158, got %s", n1)
	}
	if !n2.Equal(bigint.FromInt64(-1)) {
		t.Fatalf("expected -1, got %s", n2)
	}
}

func TestCompoundAssignmentKeepsReceiverOnError(t *testing.T) {
	n := bigint.FromInt64(77)
	if err := n.QuoAssign(bigint.Zero()); !errors.Is(err, bigint.ErrDivByZero) {
		t.Fatalf("expected ErrDivByZero, got %v", err)
	}
	if err := n.RemAssign(bigint.Zero()); !errors.Is(err, bigint.ErrDivByZero) {
		t.Fatalf("expected ErrDivByZero, got %v", err)
	}
	if !n.Equal(bigint.FromInt64(77)) {
		t.Fatalf("expected receiver to stay 77, got %s", n)
	}
}

func TestIncrementDecrement(t *testing.T) {
	num := bigint.FromInt64(10)
	start := num

	if got := num.Inc(); !got.Equal(bigint.FromInt64(11)) || !num.Equal(got) {
		t.Fatalf("pre-increment: expected 11, got %s (num=%s)", got, num)
	}
	if prev := num.PostInc(); !prev.Equal(bigint.FromInt64(11)) || !num.Equal(bigint.FromInt64(12)) {
		t.Fatalf("post-increment: expected prev 11 and num 12, got %s and %s", prev, num)
	}
	if got := num.Dec(); !got.Equal(bigint.FromInt64(11)) {
		t.Fatalf("pre-decrement: expected 11, got %s", got)
	}
	if prev := num.PostDec(); !prev.Equal(bigint.FromInt64(11)) || !num.Equal(bigint.FromInt64(10)) {
		t.Fatalf("post-decrement: expected prev 11 and num 10, got %s and %s", prev, num)
	}
	if !num.Equal(start) {
		t.Fatalf("expected to return to %s, got %s", start, num)
	}
	if !start.Equal(bigint.FromInt64(10)) {
		t.Fatalf("snapshot changed: %s", start)
	}
}

func TestIncrementAcrossZero(t *testing.T) {
	n := bigint.FromInt64(-1)
	if got := n.Inc(); got.String() != "0" || got.Sign() != 0 {
		t.Fatalf("expected 0, got %s", got)
	}
	if got := n.Dec(); got.String() != "-1" {
		t.Fatalf("expected -1, got %s", got)
	}
	m := bigint.MustParse("-1000")
	m.Inc()
	if m.String() != "-999" {
		t.Fatalf("expected -999, got %s", m)
	}
}
