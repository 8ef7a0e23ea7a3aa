package mathx

import (
	"fmt"
	"math/big"
	"strings"
)

// parsePoly parses a sum of polynomial terms such as "2x^2 - 3x + 1" or
// "x^2/4 + 1/2" into a map from exponent to rational coefficient.
// Implicit multiplication between coefficient and variable is allowed,
// as is an explicit "*".
func parsePoly(src, variable string) (map[int]*big.Rat, error) {
	p := &polyParser{src: src, variable: variable}
	coeffs := make(map[int]*big.Rat)

	p.skipSpace()
	if p.pos == len(p.src) {
		return nil, fmt.Errorf("%w: empty side in %q", ErrNotPolynomial, src)
	}
	first := true
	for p.pos < len(p.src) {
		neg, signed := p.signs()
		if !first && !signed {
			return nil, fmt.Errorf("%w: expected '+' or '-' at offset %d in %q", ErrNotPolynomial, p.pos, src)
		}
		c, exp, err := p.term()
		if err != nil {
			return nil, err
		}
		if neg {
			c.Neg(c)
		}
		coeff(coeffs, exp).Add(coeff(coeffs, exp), c)
		first = false
		p.skipSpace()
	}
	return coeffs, nil
}

type polyParser struct {
	src      string
	pos      int
	variable string
}

func (p *polyParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

// signs consumes a run of leading '+'/'-' and reports the net sign.
func (p *polyParser) signs() (neg, signed bool) {
	for p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
		if p.src[p.pos] == '-' {
			neg = !neg
		}
		signed = true
		p.pos++
		p.skipSpace()
	}
	return neg, signed
}

// term parses [coefficient]["*"][variable["^"exponent]]["/"divisor].
func (p *polyParser) term() (*big.Rat, int, error) {
	c := big.NewRat(1, 1)
	haveNum := false

	if n, ok, err := p.number(); err != nil {
		return nil, 0, err
	} else if ok {
		c = n
		haveNum = true
	}
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '*' {
		p.pos++
		p.skipSpace()
	}

	exp := 0
	if p.matchVariable() {
		exp = 1
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == '^' {
			p.pos++
			p.skipSpace()
			n, ok, err := p.number()
			if err != nil {
				return nil, 0, err
			}
			if !ok || !n.IsInt() || n.Sign() < 0 {
				return nil, 0, fmt.Errorf("%w: exponent must be a non-negative integer at offset %d in %q", ErrNotPolynomial, p.pos, p.src)
			}
			exp = int(n.Num().Int64())
		}
	} else if !haveNum {
		if p.pos == len(p.src) {
			return nil, 0, fmt.Errorf("%w: unexpected end of input in %q", ErrNotPolynomial, p.src)
		}
		return nil, 0, fmt.Errorf("%w: unexpected %q at offset %d in %q", ErrNotPolynomial, p.src[p.pos], p.pos, p.src)
	}

	// Trailing divisor: "x^2/4", "3x/2".
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '/' {
		p.pos++
		p.skipSpace()
		n, ok, err := p.number()
		if err != nil {
			return nil, 0, err
		}
		if !ok || n.Sign() == 0 {
			return nil, 0, fmt.Errorf("%w: bad divisor at offset %d in %q", ErrNotPolynomial, p.pos, p.src)
		}
		c.Quo(c, n)
	}
	return c, exp, nil
}

// number consumes an optional unsigned decimal number ("3", "0.5").
func (p *polyParser) number() (*big.Rat, bool, error) {
	start := p.pos
	dot := false
	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		if ch >= '0' && ch <= '9' {
			p.pos++
			continue
		}
		if ch == '.' && !dot {
			dot = true
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return nil, false, nil
	}
	lit := p.src[start:p.pos]
	r, ok := new(big.Rat).SetString(lit)
	if !ok {
		return nil, false, fmt.Errorf("%w: bad number %q in %q", ErrNotPolynomial, lit, p.src)
	}
	return r, true, nil
}

// matchVariable consumes the variable name if it starts at the current
// position and ends at a token boundary.
func (p *polyParser) matchVariable() bool {
	if !strings.HasPrefix(p.src[p.pos:], p.variable) {
		return false
	}
	end := p.pos + len(p.variable)
	if end < len(p.src) && isWordChar(p.src[end]) {
		return false
	}
	p.pos = end
	return true
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
