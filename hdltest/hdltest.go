// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hdltest provides utility functions for testing circuits.
//
package hdltest

import (
	"testing"

	"github.com/hdlsim/hdlsim"
)

// Run parses and simulates the given circuit source, failing the test on
// any error. The returned circuit carries the recorded output traces.
//
func Run(t *testing.T, src string) *hdlsim.Circuit {
	t.Helper()
	c, err := hdlsim.ParseCircuit(src)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Run(nil); err != nil {
		t.Fatal(err)
	}
	return c
}

// CompareTraces checks the recorded output traces of c against want, a map
// from output signal name to the expected 0/1 string.
//
func CompareTraces(t *testing.T, c *hdlsim.Circuit, want map[string]string) {
	t.Helper()
	for sig, bits := range want {
		tr := c.OutputTrace(sig)
		if tr == nil {
			t.Errorf("no recorded trace for output %s", sig)
			continue
		}
		if got := bitString(tr.Values); got != bits {
			t.Errorf("output %s = %s, expected %s", sig, got, bits)
		}
	}
}

func bitString(values []bool) string {
	b := make([]byte, len(values))
	for i, v := range values {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}
