// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"sort"
	"strings"
)

// An Env maps signal names to boolean values. Envs form a chain of scopes:
// variable lookup walks from the innermost scope outward to the root.
// Function definitions live at the root scope only.
//
// A Circuit owns a single root Env for the whole simulation, mutated in
// place cycle over cycle. Call scopes are created by Eval for function
// application and discarded when the call returns.
//
type Env struct {
	vars  map[string]bool
	defs  map[string]*Def // root scope only
	outer *Env
}

// NewEnv returns a fresh root environment.
//
func NewEnv() *Env {
	return &Env{
		vars: make(map[string]bool),
		defs: make(map[string]*Def),
	}
}

// NewScope returns a new empty scope whose parent is e.
//
func (e *Env) NewScope() *Env {
	return &Env{vars: make(map[string]bool), outer: e}
}

func (e *Env) root() *Env {
	for e.outer != nil {
		e = e.outer
	}
	return e
}

// Get returns the value bound to name, searching from the innermost scope
// outward.
//
func (e *Env) Get(name string) (bool, error) {
	for s := e; s != nil; s = s.outer {
		if v, ok := s.vars[name]; ok {
			return v, nil
		}
	}
	return false, &UnboundSignalError{Name: name}
}

// Set binds name to v in the innermost scope that already binds it. If the
// name is unbound anywhere in the chain, the binding is created in e
// itself. A single operation thus covers both initializing a fresh signal
// and updating an existing one.
//
func (e *Env) Set(name string, v bool) {
	for s := e; s != nil; s = s.outer {
		if _, ok := s.vars[name]; ok {
			s.vars[name] = v
			return
		}
	}
	e.vars[name] = v
}

// bind creates or replaces a binding in this scope only, ignoring outer
// scopes. Parameter binding uses it so that a parameter shadows a global
// signal of the same name instead of overwriting it.
func (e *Env) bind(name string, v bool) {
	e.vars[name] = v
}

// Define registers a function definition at the root scope.
//
func (e *Env) Define(d *Def) error {
	r := e.root()
	if _, ok := r.defs[d.Name]; ok {
		return &RedefinedError{Name: d.Name}
	}
	r.defs[d.Name] = d
	return nil
}

// Def returns the definition registered under name at the root scope, or
// nil if there is none. Definitions are not nestable: call scopes never
// hold any.
//
func (e *Env) Def(name string) *Def {
	return e.root().defs[name]
}

// Snapshot returns a copy of all variable bindings visible from e, the
// innermost binding winning for shadowed names. The copy is detached from
// the environment.
//
func (e *Env) Snapshot() map[string]bool {
	m := make(map[string]bool)
	for s := e; s != nil; s = s.outer {
		for k, v := range s.vars {
			if _, ok := m[k]; !ok {
				m[k] = v
			}
		}
	}
	return m
}

// String renders the visible bindings sorted by name, one "name = bit"
// pair per line.
//
func (e *Env) String() string {
	m := e.Snapshot()
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, n := range names {
		b.WriteString(n)
		if m[n] {
			b.WriteString(" = 1\n")
		} else {
			b.WriteString(" = 0\n")
		}
	}
	return b.String()
}
