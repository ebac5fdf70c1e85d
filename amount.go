package moneytxt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// This file implements the restricted arithmetic evaluator for ledger amount
// fields. An amount field may be a simple literal like "12.50" or a small
// formula like "(5+3)*2". The accepted operator set is exactly
// + - * ( ) with decimal literals; ',' is accepted as an alternate decimal
// separator. Anything else is a parse error, never a silent zero.

// EvalAmount evaluates an amount expression into a decimal value.
func EvalAmount(s string) (decimal.Decimal, error) {
	toks, err := scanAmount(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, err
	}
	p := &amountParser{toks: toks}
	v, err := p.expr()
	if err != nil {
		return decimal.Zero, err
	}
	if !p.done() {
		return decimal.Zero, fmt.Errorf("unexpected %q in amount %q", p.peek(), s)
	}
	return v, nil
}

type amountToken struct {
	kind rune   // one of '+', '-', '*', '(', ')', 'n' for number
	text string // the literal text for numbers
}

func scanAmount(s string) ([]amountToken, error) {
	var toks []amountToken
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '+' || c == '-' || c == '*' || c == '(' || c == ')':
			toks = append(toks, amountToken{kind: rune(c)})
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			dots := 0
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
				if s[j] == '.' {
					dots++
				}
				j++
			}
			if dots > 1 || j == i+1 && s[i] == '.' {
				return nil, fmt.Errorf("invalid number %q in amount", s[i:j])
			}
			toks = append(toks, amountToken{kind: 'n', text: s[i:j]})
			i = j
		default:
			return nil, fmt.Errorf("invalid character %q in amount %q", c, s)
		}
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty amount")
	}
	return toks, nil
}

// amountParser is a recursive-descent parser over the scanned tokens:
//
//	expr   = term   { ("+"|"-") term }
//	term   = factor { "*" factor }
//	factor = number | "(" expr ")" | ("+"|"-") factor
type amountParser struct {
	toks []amountToken
	pos  int
}

func (p *amountParser) done() bool { return p.pos >= len(p.toks) }

func (p *amountParser) peek() rune {
	if p.done() {
		return 0
	}
	return p.toks[p.pos].kind
}

func (p *amountParser) next() amountToken {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *amountParser) expr() (decimal.Decimal, error) {
	v, err := p.term()
	if err != nil {
		return decimal.Zero, err
	}
	for p.peek() == '+' || p.peek() == '-' {
		op := p.next().kind
		w, err := p.term()
		if err != nil {
			return decimal.Zero, err
		}
		if op == '+' {
			v = v.Add(w)
		} else {
			v = v.Sub(w)
		}
	}
	return v, nil
}

func (p *amountParser) term() (decimal.Decimal, error) {
	v, err := p.factor()
	if err != nil {
		return decimal.Zero, err
	}
	for p.peek() == '*' {
		p.next()
		w, err := p.factor()
		if err != nil {
			return decimal.Zero, err
		}
		v = v.Mul(w)
	}
	return v, nil
}

func (p *amountParser) factor() (decimal.Decimal, error) {
	switch p.peek() {
	case 'n':
		return decimal.NewFromString(p.next().text)
	case '(':
		p.next()
		v, err := p.expr()
		if err != nil {
			return decimal.Zero, err
		}
		if p.peek() != ')' {
			return decimal.Zero, fmt.Errorf("missing closing parenthesis in amount")
		}
		p.next()
		return v, nil
	case '+':
		p.next()
		return p.factor()
	case '-':
		p.next()
		v, err := p.factor()
		return v.Neg(), err
	case 0:
		return decimal.Zero, fmt.Errorf("amount ends unexpectedly")
	default:
		return decimal.Zero, fmt.Errorf("unexpected %q in amount", p.peek())
	}
}
