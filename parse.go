// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"strings"

	"github.com/hdlsim/hdlsim/internal/hdl"
	"github.com/hdlsim/hdlsim/internal/lex"
	"github.com/pkg/errors"
)

// ParseCircuit parses a complete circuit description. The syntax is line
// oriented; '#' starts a comment running to the end of the line:
//
//	.hardware <name>
//	.inputs <signal>...
//	.outputs <signal>...
//	.latches <signal>...
//	.def <name>(<param>, ...) = <expr>
//	.update
//	<signal> = <expr>
//	.simulate
//	<input> = <bits>
//
// Expressions combine signal names with / (not, highest precedence),
// * (and), + (or, lowest), function calls f(a, b) and parentheses.
//
// Update targets must be plain signal names: a primed latch output is
// written by latch propagation only, and each target may appear at most
// once.
//
func ParseCircuit(src string) (*Circuit, error) {
	p := &parser{l: hdl.Lexer(src)}
	return p.circuit()
}

// ParseExpr parses a single boolean expression, such as "xor(a, /b')".
//
func ParseExpr(src string) (Expr, error) {
	p := &parser{l: hdl.Lexer(src)}
	p.next()
	p.skipEOL()
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipEOL()
	if p.i.Type != hdl.EOF {
		return nil, p.errorf("unexpected %s after expression", p.i)
	}
	return e, nil
}

type parser struct {
	l lex.Interface
	i lex.Item
}

func (p *parser) next() {
	p.i = p.l.Lex()
}

func (p *parser) skipEOL() {
	for p.i.Type == hdl.EOL {
		p.next()
	}
}

func (p *parser) errorf(format string, args ...interface{}) error {
	args = append(args, int(p.i.Pos)+1)
	return errors.Errorf(format+" at pos %d", args...)
}

func (p *parser) circuit() (*Circuit, error) {
	c := &Circuit{}
	targets := make(map[string]bool)
	p.next()
	p.skipEOL()
	for p.i.Type != hdl.EOF {
		if p.i.Type != hdl.Section {
			return nil, p.errorf("expected section keyword, got %s", p.i)
		}
		sec := p.i.Value.(string)
		p.next()
		var err error
		switch sec {
		case "hardware":
			c.Name, err = p.ident()
			if err == nil {
				err = p.eol()
			}
		case "inputs":
			c.Inputs, err = p.identList()
		case "outputs":
			c.Outputs, err = p.identList()
		case "latches":
			c.Latches, err = p.identList()
		case "def":
			var d *Def
			if d, err = p.def(); err == nil {
				c.Defs = append(c.Defs, d)
			}
		case "update":
			err = p.updates(c, targets)
		case "simulate":
			err = p.traces(c)
		default:
			return nil, p.errorf("unknown section .%s", sec)
		}
		if err != nil {
			return nil, err
		}
		p.skipEOL()
	}
	return c, nil
}

func (p *parser) ident() (string, error) {
	if p.i.Type != hdl.Ident {
		return "", p.errorf("expected identifier, got %s", p.i)
	}
	n := p.i.Value.(string)
	p.next()
	return n, nil
}

// eol expects the end of the current line (or of the input).
func (p *parser) eol() error {
	if p.i.Type != hdl.EOL && p.i.Type != hdl.EOF {
		return p.errorf("unexpected %s at end of line", p.i)
	}
	return nil
}

// identList reads signal names up to the end of the line.
func (p *parser) identList() ([]string, error) {
	var out []string
	for p.i.Type == hdl.Ident {
		out = append(out, p.i.Value.(string))
		p.next()
	}
	if len(out) == 0 {
		return nil, p.errorf("expected at least one signal name")
	}
	return out, p.eol()
}

func (p *parser) def() (*Def, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if p.i.Type != hdl.LParen {
		return nil, p.errorf("expected ( after function name %s", name)
	}
	p.next()
	var params []string
	seen := make(map[string]bool)
	for {
		pn, err := p.ident()
		if err != nil {
			return nil, err
		}
		if seen[pn] {
			return nil, p.errorf("duplicate parameter %s in function %s", pn, name)
		}
		seen[pn] = true
		params = append(params, pn)
		if p.i.Type != hdl.Comma {
			break
		}
		p.next()
	}
	if p.i.Type != hdl.RParen {
		return nil, p.errorf("expected ) after parameter list, got %s", p.i)
	}
	p.next()
	if p.i.Type != hdl.Equal {
		return nil, p.errorf("expected = in definition of %s, got %s", name, p.i)
	}
	p.next()
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &Def{Name: name, Params: params, Body: body}, p.eol()
}

// updates reads "target = expr" lines until the next section.
func (p *parser) updates(c *Circuit, targets map[string]bool) error {
	if err := p.eol(); err != nil {
		return err
	}
	p.skipEOL()
	for p.i.Type == hdl.Ident {
		target := p.i.Value.(string)
		if strings.HasSuffix(target, "'") {
			return p.errorf("cannot update latch output %s", target)
		}
		if targets[target] {
			return p.errorf("duplicate update for signal %s", target)
		}
		targets[target] = true
		p.next()
		if p.i.Type != hdl.Equal {
			return p.errorf("expected = after %s, got %s", target, p.i)
		}
		p.next()
		e, err := p.expr()
		if err != nil {
			return err
		}
		c.Updates = append(c.Updates, Update{Target: target, Expr: e})
		if err := p.eol(); err != nil {
			return err
		}
		p.skipEOL()
	}
	return nil
}

// traces reads "input = bits" lines until the next section.
func (p *parser) traces(c *Circuit) error {
	if err := p.eol(); err != nil {
		return err
	}
	p.skipEOL()
	for p.i.Type == hdl.Ident {
		sig := p.i.Value.(string)
		p.next()
		if p.i.Type != hdl.Equal {
			return p.errorf("expected = after %s, got %s", sig, p.i)
		}
		p.next()
		if p.i.Type != hdl.Bits {
			return p.errorf("expected a 0/1 sequence for %s, got %s", sig, p.i)
		}
		bits := p.i.Value.(string)
		values := make([]bool, len(bits))
		for i, b := range bits {
			switch b {
			case '0':
				values[i] = false
			case '1':
				values[i] = true
			default:
				return p.errorf("invalid digit %c in trace for %s", b, sig)
			}
		}
		p.next()
		c.SimInputs = append(c.SimInputs, Trace{Signal: sig, Values: values})
		if err := p.eol(); err != nil {
			return err
		}
		p.skipEOL()
	}
	return nil
}

// expr = conj { '+' conj }
func (p *parser) expr() (Expr, error) {
	e, err := p.conj()
	if err != nil {
		return nil, err
	}
	for p.i.Type == hdl.Plus {
		p.next()
		r, err := p.conj()
		if err != nil {
			return nil, err
		}
		e = Or{A: e, B: r}
	}
	return e, nil
}

// conj = unary { '*' unary }
func (p *parser) conj() (Expr, error) {
	e, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.i.Type == hdl.Star {
		p.next()
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		e = And{A: e, B: r}
	}
	return e, nil
}

// unary = '/' unary | primary
func (p *parser) unary() (Expr, error) {
	if p.i.Type == hdl.Slash {
		p.next()
		e, err := p.unary()
		if err != nil {
			return nil, err
		}
		return Not{X: e}, nil
	}
	return p.primary()
}

// primary = name | name '(' expr {',' expr} ')' | '(' expr ')'
func (p *parser) primary() (Expr, error) {
	switch p.i.Type {
	case hdl.LParen:
		p.next()
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.i.Type != hdl.RParen {
			return nil, p.errorf("missing ), got %s", p.i)
		}
		p.next()
		return e, nil
	case hdl.Ident:
		name := p.i.Value.(string)
		p.next()
		if p.i.Type != hdl.LParen {
			return Signal(name), nil
		}
		p.next()
		var args []Expr
		for {
			a, err := p.expr()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.i.Type != hdl.Comma {
				break
			}
			p.next()
		}
		if p.i.Type != hdl.RParen {
			return nil, p.errorf("missing ) in call to %s, got %s", name, p.i)
		}
		p.next()
		return Call{Name: name, Args: args}, nil
	}
	return nil, p.errorf("expected a signal name, call, / or (, got %s", p.i)
}
