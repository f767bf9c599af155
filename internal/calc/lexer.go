package calc

import "fmt"

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func isWordByte(ch byte) bool {
	return ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '#'
}

func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		ch := src[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			i++
		case ch >= '0' && ch <= '9':
			start := i
			for i < len(src) && isWordByte(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokNumber, text: src[start:i], pos: start})
		case ch == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case ch == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		case ch == '+' || ch == '-' || ch == '*' || ch == '/' || ch == '%':
			toks = append(toks, token{kind: tokOp, text: src[i : i+1], pos: i})
			i++
		case ch == '=' || ch == '!' || ch == '<' || ch == '>':
			if i+1 < len(src) && src[i+1] == '=' {
				toks = append(toks, token{kind: tokOp, text: src[i : i+2], pos: i})
				i += 2
				continue
			}
			if ch == '<' || ch == '>' {
				toks = append(toks, token{kind: tokOp, text: src[i : i+1], pos: i})
				i++
				continue
			}
			return nil, &Error{Pos: i, Msg: fmt.Sprintf("unexpected %q", ch)}
		default:
			return nil, &Error{Pos: i, Msg: fmt.Sprintf("unexpected %q", ch)}
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}
