package calc

import (
	"context"
	"fmt"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"

	"bigint/internal/bigint"
	"bigint/internal/trace"
)

// Error is an evaluation failure at a byte offset of the normalized input.
type Error struct {
	Pos int
	Msg string
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("offset %d: %s: %v", e.Pos, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("offset %d: %v", e.Pos, e.Err)
	default:
		return fmt.Sprintf("offset %d: %s", e.Pos, e.Msg)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Result is the value of an expression: an integer, or a truth value for
// comparisons.
type Result struct {
	Value  bigint.Int
	IsBool bool
	Bool   bool
}

// Text renders the result; integers are written in the given base.
func (r Result) Text(base int) (string, error) {
	if r.IsBool {
		if r.Bool {
			return "true", nil
		}
		return "false", nil
	}
	return r.Value.Text(base)
}

// Eval parses and evaluates src.
func Eval(ctx context.Context, src string) (Result, error) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeExpr, "eval", trace.CurrentSpan(ctx))
	span.WithExtra("src", src)
	res, err := eval(norm.NFKC.String(src))
	if err != nil {
		span.End(err.Error())
		return Result{}, err
	}
	span.End("")
	return res, nil
}

func eval(src string) (Result, error) {
	toks, err := tokenize(src)
	if err != nil {
		return Result{}, err
	}
	p := &parser{toks: toks}
	res, err := p.parseCmp()
	if err != nil {
		return Result{}, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return Result{}, &Error{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %q", tok.text)}
	}
	return res, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseCmp() (Result, error) {
	lhs, err := p.parseSum()
	if err != nil {
		return Result{}, err
	}
	tok := p.peek()
	if tok.kind != tokOp {
		return Result{Value: lhs}, nil
	}
	var cmp func(a, b bigint.Int) bool
	switch tok.text {
	case "==":
		cmp = bigint.Int.Equal
	case "!=":
		cmp = bigint.Int.NotEqual
	case "<":
		cmp = bigint.Int.Less
	case "<=":
		cmp = bigint.Int.LessEq
	case ">":
		cmp = bigint.Int.Greater
	case ">=":
		cmp = bigint.Int.GreaterEq
	default:
		return Result{Value: lhs}, nil
	}
	p.next()
	rhs, err := p.parseSum()
	if err != nil {
		return Result{}, err
	}
	return Result{IsBool: true, Bool: cmp(lhs, rhs)}, nil
}

func (p *parser) parseSum() (bigint.Int, error) {
	acc, err := p.parseProd()
	if err != nil {
		return bigint.Int{}, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokOp || (tok.text != "+" && tok.text != "-") {
			return acc, nil
		}
		p.next()
		rhs, err := p.parseProd()
		if err != nil {
			return bigint.Int{}, err
		}
		if tok.text == "+" {
			acc.AddAssign(rhs)
		} else {
			acc.SubAssign(rhs)
		}
	}
}

func (p *parser) parseProd() (bigint.Int, error) {
	acc, err := p.parseUnary()
	if err != nil {
		return bigint.Int{}, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokOp || (tok.text != "*" && tok.text != "/" && tok.text != "%") {
			return acc, nil
		}
		p.next()
		rhs, err := p.parseUnary()
		if err != nil {
			return bigint.Int{}, err
		}
		switch tok.text {
		case "*":
			acc.MulAssign(rhs)
		case "/":
			err = acc.QuoAssign(rhs)
		case "%":
			err = acc.RemAssign(rhs)
		}
		if err != nil {
			return bigint.Int{}, &Error{Pos: tok.pos, Err: err}
		}
	}
}

func (p *parser) parseUnary() (bigint.Int, error) {
	if tok := p.peek(); tok.kind == tokOp && tok.text == "-" {
		p.next()
		v, err := p.parseUnary()
		if err != nil {
			return bigint.Int{}, err
		}
		return v.Neg(), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (bigint.Int, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		v, err := parseLiteral(tok.text)
		if err != nil {
			return bigint.Int{}, &Error{Pos: tok.pos, Err: err}
		}
		return v, nil
	case tokLParen:
		v, err := p.parseSum()
		if err != nil {
			return bigint.Int{}, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return bigint.Int{}, &Error{Pos: closing.pos, Msg: "expected ')'"}
		}
		return v, nil
	case tokEOF:
		return bigint.Int{}, &Error{Pos: tok.pos, Msg: "unexpected end of expression"}
	default:
		return bigint.Int{}, &Error{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %q", tok.text)}
	}
}

// parseLiteral reads one unsigned number token.
func parseLiteral(text string) (bigint.Int, error) {
	if radix, digits, ok := strings.Cut(text, "#"); ok {
		b, err := bigint.Parse(radix)
		if err != nil {
			return bigint.Int{}, err
		}
		b64, fits := b.Int64()
		if !fits {
			return bigint.Int{}, fmt.Errorf("%w: %s", bigint.ErrInvalidBase, radix)
		}
		base, err := safecast.Conv[int](b64)
		if err != nil {
			return bigint.Int{}, fmt.Errorf("%w: %s", bigint.ErrInvalidBase, radix)
		}
		return bigint.ParseBase(digits, base)
	}
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			return bigint.ParseBase(text[2:], 16)
		case 'o', 'O':
			return bigint.ParseBase(text[2:], 8)
		case 'b', 'B':
			return bigint.ParseBase(text[2:], 2)
		}
	}
	return bigint.Parse(text)
}
