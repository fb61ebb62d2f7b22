// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of ready-made function definitions for
// building circuits programmatically.
//
package hwlib

import "github.com/hdlsim/hdlsim"

// Nand returns nand(a, b) = /(a * b).
//
func Nand() *hdlsim.Def {
	return &hdlsim.Def{
		Name:   "nand",
		Params: []string{"a", "b"},
		Body:   hdlsim.Not{X: hdlsim.And{A: hdlsim.Signal("a"), B: hdlsim.Signal("b")}},
	}
}

// Nor returns nor(a, b) = /(a + b).
//
func Nor() *hdlsim.Def {
	return &hdlsim.Def{
		Name:   "nor",
		Params: []string{"a", "b"},
		Body:   hdlsim.Not{X: hdlsim.Or{A: hdlsim.Signal("a"), B: hdlsim.Signal("b")}},
	}
}

// Xor returns xor(a, b) = a * /b + /a * b.
//
func Xor() *hdlsim.Def {
	return &hdlsim.Def{
		Name:   "xor",
		Params: []string{"a", "b"},
		Body: hdlsim.Or{
			A: hdlsim.And{A: hdlsim.Signal("a"), B: hdlsim.Not{X: hdlsim.Signal("b")}},
			B: hdlsim.And{A: hdlsim.Not{X: hdlsim.Signal("a")}, B: hdlsim.Signal("b")},
		},
	}
}

// Xnor returns xnor(a, b) = a * b + /a * /b.
//
func Xnor() *hdlsim.Def {
	return &hdlsim.Def{
		Name:   "xnor",
		Params: []string{"a", "b"},
		Body: hdlsim.Or{
			A: hdlsim.And{A: hdlsim.Signal("a"), B: hdlsim.Signal("b")},
			B: hdlsim.And{A: hdlsim.Not{X: hdlsim.Signal("a")}, B: hdlsim.Not{X: hdlsim.Signal("b")}},
		},
	}
}

// Mux returns mux(a, b, sel) = a * /sel + b * sel.
//
func Mux() *hdlsim.Def {
	return &hdlsim.Def{
		Name:   "mux",
		Params: []string{"a", "b", "sel"},
		Body: hdlsim.Or{
			A: hdlsim.And{A: hdlsim.Signal("a"), B: hdlsim.Not{X: hdlsim.Signal("sel")}},
			B: hdlsim.And{A: hdlsim.Signal("b"), B: hdlsim.Signal("sel")},
		},
	}
}

// HalfAdderSum returns hasum(a, b), the sum bit of a half adder.
//
func HalfAdderSum() *hdlsim.Def {
	d := Xor()
	d.Name = "hasum"
	return d
}

// HalfAdderCarry returns hacarry(a, b) = a * b, the carry bit of a half
// adder.
//
func HalfAdderCarry() *hdlsim.Def {
	return &hdlsim.Def{
		Name:   "hacarry",
		Params: []string{"a", "b"},
		Body:   hdlsim.And{A: hdlsim.Signal("a"), B: hdlsim.Signal("b")},
	}
}
