package tariff

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EvalFormula evaluates a closed-form tariff expression over the single bound
// variable x. The grammar is deliberately small: numbers, x, + - * / ^,
// parentheses, and the functions log (natural) and log10. The evaluator has no
// access to ambient state; any other identifier is an error.
func EvalFormula(expr string, x float64) (float64, error) {
	p := &formulaParser{input: expr, x: x}
	value, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.New("formula did not produce a finite value")
	}
	return value, nil
}

type formulaParser struct {
	input string
	pos   int
	x     float64
}

func (p *formulaParser) parseExpr() (float64, error) {
	value, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch {
		case p.accept('+'):
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value += rhs
		case p.accept('-'):
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value -= rhs
		default:
			return value, nil
		}
	}
}

func (p *formulaParser) parseTerm() (float64, error) {
	value, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch {
		case p.accept('*'):
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			value *= rhs
		case p.accept('/'):
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, errors.New("division by zero")
			}
			value /= rhs
		default:
			return value, nil
		}
	}
}

func (p *formulaParser) parseUnary() (float64, error) {
	p.skipSpace()
	if p.accept('-') {
		value, err := p.parseUnary()
		return -value, err
	}
	return p.parsePower()
}

func (p *formulaParser) parsePower() (float64, error) {
	base, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.accept('^') {
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	}
	return base, nil
}

func (p *formulaParser) parseFactor() (float64, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, errors.New("unexpected end of formula")
	}

	if p.accept('(') {
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if !p.expect(')') {
			return 0, errors.New("missing closing parenthesis")
		}
		return value, nil
	}

	c := p.input[p.pos]
	if c >= '0' && c <= '9' || c == '.' {
		return p.parseNumber()
	}
	if isIdentByte(c) {
		return p.parseIdent()
	}
	return 0, fmt.Errorf("unexpected %q at offset %d", c, p.pos)
}

func (p *formulaParser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}
		break
	}
	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", p.input[start:p.pos])
	}
	return value, nil
}

func (p *formulaParser) parseIdent() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && isIdentByte(p.input[p.pos]) {
		p.pos++
	}
	name := strings.ToLower(p.input[start:p.pos])

	switch name {
	case "x":
		return p.x, nil
	case "log", "ln", "log10":
		p.skipSpace()
		if !p.expect('(') {
			return 0, fmt.Errorf("%s requires parentheses", name)
		}
		arg, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if !p.expect(')') {
			return 0, errors.New("missing closing parenthesis")
		}
		if arg <= 0 {
			return 0, fmt.Errorf("%s of non-positive value", name)
		}
		if name == "log10" {
			return math.Log10(arg), nil
		}
		return math.Log(arg), nil
	}
	return 0, fmt.Errorf("unknown identifier %q", name)
}

func (p *formulaParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *formulaParser) accept(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *formulaParser) expect(c byte) bool {
	p.skipSpace()
	return p.accept(c)
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
