package hdlsim_test

import (
	"testing"

	hdl "github.com/hdlsim/hdlsim"
	"github.com/hdlsim/hdlsim/hdltest"
	"github.com/pkg/errors"
)

func trace(t *testing.T, err error) {
	t.Helper()
	if err, ok := err.(interface {
		StackTrace() errors.StackTrace
	}); ok {
		for _, f := range err.StackTrace() {
			t.Logf("%+v ", f)
		}
	}
}

func Test_run_inverter(t *testing.T) {
	c := hdltest.Run(t, `
.hardware inv
.inputs In
.outputs Out
.update
Out = /In
.simulate
In = 1010
`)
	if c.SimLength != 4 {
		t.Fatalf("SimLength = %d, expected 4", c.SimLength)
	}
	hdltest.CompareTraces(t, c, map[string]string{"Out": "0101"})
}

func Test_run_xor(t *testing.T) {
	c := hdltest.Run(t, `
.hardware x
.inputs In1 In2
.outputs Out
.def xor(A, B) = A * /B + /A * B
.update
Out = xor(In1, In2)
.simulate
In1 = 01
In2 = 00
`)
	hdltest.CompareTraces(t, c, map[string]string{"Out": "01"})
}

// A latch output lags its input by one cycle and starts at 0.
func Test_run_latch_delay(t *testing.T) {
	c := hdltest.Run(t, `
.hardware delay
.inputs In
.outputs Out
.latches L
.update
L = In
Out = L'
.simulate
In = 1011
`)
	// Out (= L') at cycle i is the value L held at the end of cycle i-1,
	// i.e. In shifted right by one cycle
	hdltest.CompareTraces(t, c, map[string]string{"Out": "0101"})
}

// Every recorded output trace has length SimLength, which is the common
// input trace length.
func Test_run_trace_lengths(t *testing.T) {
	c := hdltest.Run(t, `
.hardware half
.inputs A B
.outputs S C
.def xor(a, b) = a * /b + /a * b
.update
S = xor(A, B)
C = A * B
.simulate
A = 010101
B = 001101
`)
	if c.SimLength != 6 {
		t.Fatalf("SimLength = %d, expected 6", c.SimLength)
	}
	if len(c.SimOutputs) != len(c.Outputs) {
		t.Fatalf("%d output traces for %d outputs", len(c.SimOutputs), len(c.Outputs))
	}
	for _, tr := range c.SimOutputs {
		if len(tr.Values) != c.SimLength {
			t.Errorf("trace %s has length %d, expected %d", tr.Signal, len(tr.Values), c.SimLength)
		}
	}
}

func mustParse(t *testing.T, src string) *hdl.Circuit {
	t.Helper()
	c, err := hdl.ParseCircuit(src)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func Test_run_inconsistent_lengths(t *testing.T) {
	c := mustParse(t, `
.hardware bad
.inputs In1 In2
.outputs Out
.update
Out = In1 * In2
.simulate
In1 = 01
In2 = 0
`)
	_, err := c.Run(nil)
	if errors.Cause(err) != hdl.ErrTraceLength {
		trace(t, err)
		t.Fatalf("got %v, expected ErrTraceLength", err)
	}
	// the failure happens before any cycle executes
	if c.SimOutputs != nil {
		t.Fatal("partial outputs recorded after a failed run")
	}
}

func Test_run_missing_trace(t *testing.T) {
	c := mustParse(t, `
.hardware bad
.inputs In1 In2
.outputs Out
.update
Out = In1 * In2
.simulate
In1 = 01
`)
	_, err := c.Run(nil)
	e, ok := errors.Cause(err).(*hdl.MissingTraceError)
	if !ok {
		trace(t, err)
		t.Fatalf("got %v, expected a MissingTraceError", err)
	}
	if e.Signal != "In2" {
		t.Fatalf("error names signal %q, expected In2", e.Signal)
	}

	// an empty trace is as bad as a missing one
	c = &hdl.Circuit{
		Name:      "bad",
		Inputs:    []string{"In"},
		SimInputs: []hdl.Trace{{Signal: "In"}},
	}
	_, err = c.Run(nil)
	if _, ok := errors.Cause(err).(*hdl.MissingTraceError); !ok {
		t.Fatalf("got %v, expected a MissingTraceError", err)
	}
}

func Test_run_no_inputs(t *testing.T) {
	c := &hdl.Circuit{Name: "empty"}
	if _, err := c.Run(nil); errors.Cause(err) != hdl.ErrNoInputs {
		t.Fatalf("got %v, expected ErrNoInputs", err)
	}
}

func Test_run_unbound_signal(t *testing.T) {
	c := mustParse(t, `
.hardware bad
.inputs In
.outputs Out
.update
Out = In * Ghost
.simulate
In = 01
`)
	_, err := c.Run(nil)
	e, ok := errors.Cause(err).(*hdl.UnboundSignalError)
	if !ok {
		trace(t, err)
		t.Fatalf("got %v, expected an UnboundSignalError", err)
	}
	if e.Name != "Ghost" {
		t.Fatalf("error names signal %q, expected Ghost", e.Name)
	}
	if c.SimOutputs != nil {
		t.Fatal("partial outputs recorded after a failed run")
	}
}

func Test_run_duplicate_def(t *testing.T) {
	c := mustParse(t, `
.hardware bad
.inputs In
.outputs Out
.def f(a) = a
.def f(a) = /a
.update
Out = f(In)
.simulate
In = 01
`)
	_, err := c.Run(nil)
	if e, ok := errors.Cause(err).(*hdl.RedefinedError); !ok || e.Name != "f" {
		t.Fatalf("got %v, expected a RedefinedError for f", err)
	}
}

// Updates are applied in list order, in a single pass: a target may feed a
// later update within the same cycle.
func Test_run_update_order(t *testing.T) {
	c := hdltest.Run(t, `
.hardware chain
.inputs In
.outputs Out
.update
Mid = /In
Out = /Mid
.simulate
In = 0110
`)
	hdltest.CompareTraces(t, c, map[string]string{"Out": "0110"})
}

// The probe sees one snapshot per cycle, starting with cycle 0.
func Test_run_probe(t *testing.T) {
	c := mustParse(t, `
.hardware inv
.inputs In
.outputs Out
.update
Out = /In
.simulate
In = 101
`)
	var cycles []int
	var last map[string]bool
	_, err := c.Run(func(cycle int, state map[string]bool) {
		cycles = append(cycles, cycle)
		last = state
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(cycles) != 3 {
		t.Fatalf("probe called %d times, expected 3", len(cycles))
	}
	for i, cy := range cycles {
		if cy != i {
			t.Fatalf("cycles = %v", cycles)
		}
	}
	if last["Out"] || !last["In"] {
		t.Fatalf("final state = %v", last)
	}
}

// Run returns the final environment for inspection.
func Test_run_final_env(t *testing.T) {
	c := mustParse(t, `
.hardware delay
.inputs In
.outputs Out
.latches L
.update
L = In
Out = L'
.simulate
In = 10
`)
	env, err := c.Run(nil)
	if err != nil {
		t.Fatal(err)
	}
	v, err := env.Get("L'")
	if err != nil {
		t.Fatal(err)
	}
	if !v {
		t.Fatal("L' = 0 at the end of the run, expected 1")
	}
}
