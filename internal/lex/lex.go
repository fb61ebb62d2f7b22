// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lex implements a small state-function driven lexer engine.
// Clients provide an initial state function; state functions consume runes
// and emit items, returning the next state or nil to fall back to the
// initial state.
//
package lex

import (
	"bufio"
	"fmt"
	"io"
)

// EOF is returned by Next once the input is exhausted, and is the Type of
// the item emitted at end of input.
const EOF = -1

// Type identifies the kind of a lexed item. Values other than EOF are
// client-defined.
//
type Type int

// Pos is a rune offset in the input.
//
type Pos int

// An Item is a single token produced by the lexer.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

// String returns the item's value in printable form.
//
func (i Item) String() string {
	switch v := i.Value.(type) {
	case string:
		return v
	case rune:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// A StateFn scans some input, possibly emitting items, and returns the
// next state. Returning nil resumes at the initial state.
//
type StateFn func(l *Lexer) StateFn

// Interface is the consumer side of a lexer.
//
type Interface interface {
	Lex() Item
}

// A Lexer turns runes from its input into Items according to the client's
// state functions.
//
type Lexer struct {
	r     *bufio.Reader
	init  StateFn
	state StateFn
	queue []Item

	cur    rune
	pos    Pos
	backed bool
	done   bool
}

// New returns a new lexer reading from r, starting in state init.
//
func New(r io.Reader, init StateFn) *Lexer {
	return &Lexer{r: bufio.NewReader(r), init: init, state: init, pos: -1}
}

// Next returns the next rune in the input, or EOF.
//
func (l *Lexer) Next() rune {
	if l.backed {
		l.backed = false
		return l.cur
	}
	if l.done {
		l.cur = EOF
		return l.cur
	}
	r, _, err := l.r.ReadRune()
	if err != nil {
		l.done = true
		l.cur = EOF
		return l.cur
	}
	l.cur = r
	l.pos++
	return r
}

// Current returns the last rune returned by Next.
//
func (l *Lexer) Current() rune {
	return l.cur
}

// Backup undoes the last call to Next. Only one rune of lookahead is kept.
//
func (l *Lexer) Backup() {
	l.backed = true
}

// AcceptWhile consumes runes as long as pred returns true. The first rune
// rejected by pred is pushed back.
//
func (l *Lexer) AcceptWhile(pred func(r rune) bool) {
	for r := l.Next(); r != EOF && pred(r); r = l.Next() {
	}
	l.Backup()
}

// Emit queues an item of the given type and value at the current position.
//
func (l *Lexer) Emit(t Type, value interface{}) {
	l.queue = append(l.queue, Item{Type: t, Pos: l.pos, Value: value})
}

// Lex returns the next item in the input stream, running state functions
// until one is emitted.
//
func (l *Lexer) Lex() Item {
	for len(l.queue) == 0 {
		if l.state == nil {
			l.state = l.init
		}
		l.state = l.state(l)
	}
	i := l.queue[0]
	copy(l.queue, l.queue[1:])
	l.queue = l.queue[:len(l.queue)-1]
	return i
}
