// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// Errors reported by evaluation and simulation. All of them are fatal: the
// run that raised one stops immediately and its recorded outputs are
// discarded. Errors crossing the cycle loop may be wrapped; use
// errors.Cause to recover the original kind.

var (
	// ErrNoInputs reports a circuit whose simulate section supplies no
	// traces at all.
	ErrNoInputs = errors.New("no simulation inputs")

	// ErrTraceLength reports input traces that disagree on length.
	ErrTraceLength = errors.New("simulation inputs differ in length")
)

// An UnboundSignalError reports a variable lookup that found no binding in
// any reachable scope. An unset signal is always an error, never an
// implicit 0.
//
type UnboundSignalError struct {
	Name string
}

func (e *UnboundSignalError) Error() string {
	return "signal " + e.Name + " is not defined"
}

// An UndefinedFuncError reports a call to a function with no registered
// definition.
//
type UndefinedFuncError struct {
	Name string
}

func (e *UndefinedFuncError) Error() string {
	return "function " + e.Name + " is not defined"
}

// An ArityError reports a call whose argument count differs from the
// definition's parameter count.
//
type ArityError struct {
	Name string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return "function " + e.Name + " expects " + strconv.Itoa(e.Want) +
		" arguments, got " + strconv.Itoa(e.Got)
}

// A RedefinedError reports two function definitions sharing a name.
//
type RedefinedError struct {
	Name string
}

func (e *RedefinedError) Error() string {
	return "function " + e.Name + " is already defined"
}

// A MissingTraceError reports a declared input signal with no trace, or
// with an empty one.
//
type MissingTraceError struct {
	Signal string
}

func (e *MissingTraceError) Error() string {
	return "input signal " + e.Signal + " has no trace values"
}

// A TraceRangeError reports a cycle index past the end of an input trace.
//
type TraceRangeError struct {
	Signal string
	Cycle  int
}

func (e *TraceRangeError) Error() string {
	return "input signal " + e.Signal + " has no value for cycle " +
		strconv.Itoa(e.Cycle)
}
