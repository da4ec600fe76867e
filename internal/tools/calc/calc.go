// Package calc evaluates plain arithmetic expressions: decimal numbers,
// + - * /, unary signs and parentheses with the usual precedence.
package calc

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultMaxLength = 1024
	DefaultMaxDepth  = 64
)

var (
	ErrEmpty    = errors.New("empty expression")
	ErrSyntax   = errors.New("syntax error")
	ErrTooLong  = errors.New("expression too long")
	ErrTooDeep  = errors.New("expression nested too deeply")
	disallowed  = regexp.MustCompile(`[^0-9+\-*/().]`)
	incrementOp = regexp.MustCompile(`\+\+|--`)
)

// Sanitize drops every character that cannot appear in an expression, so
// "abc123+45xyz" becomes "123+45".
func Sanitize(input string) string {
	return disallowed.ReplaceAllString(input, "")
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithMaxLength bounds the length of an expression.
func WithMaxLength(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.maxLength = n
		}
	}
}

// WithMaxDepth bounds the nesting of parentheses and unary signs.
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// Evaluator evaluates sanitized expressions within fixed cost limits.
type Evaluator struct {
	maxLength int
	maxDepth  int
}

func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		maxLength: DefaultMaxLength,
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval evaluates expr. Division by zero follows IEEE 754 and yields an
// infinity or NaN rather than an error.
func (e *Evaluator) Eval(expr string) (float64, error) {
	if expr == "" {
		return 0, ErrEmpty
	}
	if len(expr) > e.maxLength {
		return 0, ErrTooLong
	}
	// "1--2" and "2++3" are increment/decrement operators, not sign chains.
	if loc := incrementOp.FindStringIndex(expr); loc != nil {
		return 0, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, expr[loc[0]:loc[1]], loc[0])
	}

	p := &parser{src: expr, maxDepth: e.maxDepth}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.src) {
		return 0, p.unexpected()
	}
	return v, nil
}

type parser struct {
	src      string
	pos      int
	depth    int
	maxDepth int
}

func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *parser) unexpected() error {
	if p.pos >= len(p.src) {
		return fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	return fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, p.src[p.pos], p.pos)
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return ErrTooDeep
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// expr := term (('+' | '-') term)*
func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

// term := unary (('*' | '/') unary)*
func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
		} else {
			left /= right
		}
	}
}

// unary := ('+' | '-') unary | primary
func (p *parser) unary() (float64, error) {
	op := p.peek()
	if op != '+' && op != '-' {
		return p.primary()
	}
	p.pos++
	if err := p.enter(); err != nil {
		return 0, err
	}
	defer p.leave()

	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	if op == '-' {
		return -v, nil
	}
	return v, nil
}

// primary := number | '(' expr ')'
func (p *parser) primary() (float64, error) {
	if p.peek() == '(' {
		p.pos++
		if err := p.enter(); err != nil {
			return 0, err
		}
		defer p.leave()

		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, p.unexpected()
		}
		p.pos++
		return v, nil
	}
	return p.number()
}

// number accepts "12", "1.5", ".5" and "5.".
func (p *parser) number() (float64, error) {
	start := p.pos
	digits := 0
	for isDigit(p.peek()) {
		p.pos++
		digits++
	}
	if p.peek() == '.' {
		p.pos++
		for isDigit(p.peek()) {
			p.pos++
			digits++
		}
	}
	if digits == 0 {
		p.pos = start
		return 0, p.unexpected()
	}

	lit := strings.TrimSuffix(p.src[start:p.pos], ".")
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		// Overflowing literals evaluate to Infinity.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("%w: bad number %q", ErrSyntax, lit)
	}
	return v, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
