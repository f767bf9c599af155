// Package calc evaluates integer expressions over bigint values.
//
// Grammar:
//
//	cmp     := sum [("==" | "!=" | "<" | "<=" | ">" | ">=") sum]
//	sum     := prod {("+" | "-") prod}
//	prod    := unary {("*" | "/" | "%") unary}
//	unary   := "-" unary | primary
//	primary := number | "(" sum ")"
//
// Numbers are decimal, prefixed with 0x, 0o or 0b, or written as
// base#digits (for example 36#ZZ). Input is NFKC-normalized first, so
// full-width digits are accepted.
package calc
