// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import "strings"

// An Expr is a node in a boolean expression tree. The set of
// implementations is closed: Signal, And, Or, Not and Call. Expressions
// are immutable; evaluation never modifies them.
//
type Expr interface {
	expr()
}

// Signal reads a single named signal from the environment. Reading a latch
// output uses the primed name, e.g. Signal("L'").
//
type Signal string

// And is the conjunction of two expressions: a * b.
//
type And struct {
	A, B Expr
}

// Or is the disjunction of two expressions: a + b.
//
type Or struct {
	A, B Expr
}

// Not negates an expression: /a.
//
type Not struct {
	X Expr
}

// Call applies a named function definition to its arguments:
// xor(a, /b).
//
type Call struct {
	Name string
	Args []Expr
}

func (Signal) expr() {}
func (And) expr()    {}
func (Or) expr()     {}
func (Not) expr()    {}
func (Call) expr()   {}

// A Def is a named boolean function definition:
//
//	.def xor(a, b) = a * /b + /a * b
//
// Parameter names are unique within a definition. The body may reference
// only the parameters and global signals.
//
type Def struct {
	Name   string
	Params []string
	Body   Expr
}

// An Update is one equation of the update section. The target signal is
// recomputed from the expression once per simulation cycle. Targets are
// never raw inputs or primed latch outputs.
//
type Update struct {
	Target string
	Expr   Expr
}

// A Trace is the sequence of values a signal takes across simulation
// cycles, index 0 being cycle 0.
//
type Trace struct {
	Signal string
	Values []bool
}

// String renders the trace in source form, e.g. "Out = 0101".
//
func (t Trace) String() string {
	var b strings.Builder
	b.Grow(len(t.Signal) + 3 + len(t.Values))
	b.WriteString(t.Signal)
	b.WriteString(" = ")
	for _, v := range t.Values {
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
