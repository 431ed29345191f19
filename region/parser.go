// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cpmech/gosl/chk"
)

// Parse lowers a small embedded Boolean expression over 1-based region
// indices to an Expr tree (§6). Accepted operators: ^ or ∧ for intersect,
// | or ∨ for union, ~ or ¬ for complement (prefix, binds tighter than
// either binary operator); parentheses group sub-expressions. Grammar:
//
//	expr    := term ( '|' term )*
//	term    := factor ( '^' factor )*
//	factor  := '~' factor | '(' expr ')' | NUMBER
//
// Indices in the source text are 1-based; Parse lowers them to the
// 0-based Leaf indices the tree form uses internally.
func Parse(src string) (Expr, error) {
	p := &parser{toks: tokenize(src)}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, chk.Err("unexpected trailing input at token %q", p.toks[p.pos])
	}
	return e, nil
}

type parser struct {
	toks []string
	pos  int
}

func (p *parser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek() == "|" || p.peek() == "∨" {
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = Union{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek() == "^" || p.peek() == "∧" {
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = Intersect{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseFactor() (Expr, error) {
	tok := p.peek()
	switch {
	case tok == "~" || tok == "¬":
		p.next()
		x, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return Complement{X: x}, nil
	case tok == "(":
		p.next()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, chk.Err("expected ')' but found %q", p.peek())
		}
		p.next()
		return e, nil
	case tok == "":
		return nil, chk.Err("unexpected end of expression")
	default:
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, chk.Err("expected a region index or operator, found %q", tok)
		}
		if n < 1 {
			return nil, chk.Err("region index %d in source text must be ≥ 1 (1-based)", n)
		}
		p.next()
		return Leaf{Index: n - 1}, nil
	}
}

// tokenize splits src into single-character operators/parentheses and
// maximal digit runs, skipping whitespace.
func tokenize(src string) []string {
	var toks []string
	i := 0
	for i < len(src) {
		r := src[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			i++
		case r >= '0' && r <= '9':
			j := i
			for j < len(src) && src[j] >= '0' && src[j] <= '9' {
				j++
			}
			toks = append(toks, src[i:j])
			i = j
		case strings.ContainsRune("^|~()", rune(r)):
			toks = append(toks, string(r))
			i++
		default:
			// multi-byte unicode operators ∧ ∨ ¬ pass through as single tokens
			rn, size := utf8.DecodeRuneInString(src[i:])
			toks = append(toks, string(rn))
			i += size
		}
	}
	return toks
}
