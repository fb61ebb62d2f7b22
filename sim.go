// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"github.com/pkg/errors"
)

// A Circuit is a complete hardware description together with its
// simulation inputs. ParseCircuit builds one from source text; Run fills
// in SimLength and SimOutputs.
//
type Circuit struct {
	Name    string
	Inputs  []string
	Outputs []string
	Latches []string
	Defs    []*Def
	Updates []Update

	// SimInputs holds one trace per input signal, all of equal length.
	SimInputs []Trace

	// SimOutputs holds one trace per output signal, recorded by Run.
	// Each trace has length SimLength.
	SimOutputs []Trace

	// SimLength is the common length of the input traces, derived by Run.
	// It is the number of simulated cycles.
	SimLength int
}

// A Probe receives a read-only snapshot of the environment after
// initialization (cycle 0) and after every subsequent cycle.
//
type Probe func(cycle int, state map[string]bool)

// Run simulates the circuit over its input traces: one initialization pass
// for cycle 0, then SimLength-1 cycle advances. The recorded output traces
// land in SimOutputs and the root environment of the run is returned for
// inspection. On error the run stops immediately and SimOutputs is
// discarded.
//
// The simulation is strictly sequential. Updates are applied in list
// order, in a single pass per cycle; no dependency resolution is
// performed, so an update reading a signal that no earlier update (or
// input/latch seeding) has set fails with an unbound signal error.
//
func (c *Circuit) Run(probe Probe) (*Env, error) {
	c.SimOutputs = nil
	c.SimLength = 0

	env := NewEnv()
	for _, d := range c.Defs {
		if err := env.Define(d); err != nil {
			return nil, err
		}
	}
	if err := c.initialize(env); err != nil {
		c.SimOutputs = nil
		return nil, err
	}
	if probe != nil {
		probe(0, env.Snapshot())
	}
	for i := 1; i < c.SimLength; i++ {
		if err := c.nextCycle(env, i); err != nil {
			c.SimOutputs = nil
			return nil, errors.Wrapf(err, "cycle %d", i)
		}
		if probe != nil {
			probe(i, env.Snapshot())
		}
	}
	return env, nil
}

// initialize seeds the environment for cycle 0: input values at trace
// index 0, all latch outputs reset to 0, then one pass over the updates.
func (c *Circuit) initialize(env *Env) error {
	for _, in := range c.Inputs {
		tr := c.inputTrace(in)
		if tr == nil || len(tr.Values) == 0 {
			return &MissingTraceError{Signal: in}
		}
		env.Set(in, tr.Values[0])
	}

	// all input traces must agree on length. That common length is the
	// number of cycles to run.
	if len(c.SimInputs) == 0 {
		return ErrNoInputs
	}
	n := len(c.SimInputs[0].Values)
	for _, tr := range c.SimInputs[1:] {
		if len(tr.Values) != n {
			return ErrTraceLength
		}
	}
	c.SimLength = n

	for _, l := range c.Latches {
		env.Set(l+"'", false)
	}
	if err := c.applyUpdates(env); err != nil {
		return err
	}
	return c.record(env)
}

// nextCycle advances the simulation to cycle i. Latch outputs take the
// value their inputs held at the end of cycle i-1; this happens before the
// cycle's input samples are loaded.
func (c *Circuit) nextCycle(env *Env, i int) error {
	for _, l := range c.Latches {
		v, err := env.Get(l)
		if err != nil {
			return err
		}
		env.Set(l+"'", v)
	}
	for _, in := range c.Inputs {
		tr := c.inputTrace(in)
		if tr == nil || i >= len(tr.Values) {
			return &TraceRangeError{Signal: in, Cycle: i}
		}
		env.Set(in, tr.Values[i])
	}
	if err := c.applyUpdates(env); err != nil {
		return err
	}
	return c.record(env)
}

func (c *Circuit) applyUpdates(env *Env) error {
	for _, u := range c.Updates {
		if err := u.Apply(env); err != nil {
			return err
		}
	}
	return nil
}

// record appends the current value of every output signal to SimOutputs.
func (c *Circuit) record(env *Env) error {
	if c.SimOutputs == nil {
		c.SimOutputs = make([]Trace, len(c.Outputs))
		for i, o := range c.Outputs {
			c.SimOutputs[i] = Trace{Signal: o, Values: make([]bool, 0, c.SimLength)}
		}
	}
	for i, o := range c.Outputs {
		v, err := env.Get(o)
		if err != nil {
			return err
		}
		c.SimOutputs[i].Values = append(c.SimOutputs[i].Values, v)
	}
	return nil
}

func (c *Circuit) inputTrace(name string) *Trace {
	for i := range c.SimInputs {
		if c.SimInputs[i].Signal == name {
			return &c.SimInputs[i]
		}
	}
	return nil
}

// OutputTrace returns the recorded trace for the named output signal, or
// nil if the signal is not an output or the circuit has not been run.
//
func (c *Circuit) OutputTrace(name string) *Trace {
	for i := range c.SimOutputs {
		if c.SimOutputs[i].Signal == name {
			return &c.SimOutputs[i]
		}
	}
	return nil
}
