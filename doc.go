/*
Package hdlsim implements an interpreter and cycle-based simulator for a
small hardware description language.

A circuit is described by its input, output and latch signal names, a set
of named boolean function definitions, and one update equation per computed
signal. The simulator drives the circuit over concrete input traces and
reproduces, cycle by cycle, the value of every signal.

Signals are single-bit boolean wires. A latch contributes two signals: its
own name (the latch input) and the primed name "name'" (the registered
output), which lags the input by exactly one cycle and starts at 0.

The textual syntax is line oriented:

	.hardware half
	.inputs A B
	.outputs S C
	.def xor(a, b) = a * /b + /a * b
	.update
	S = xor(A, B)
	C = A * B
	.simulate
	A = 0101
	B = 0011

ParseCircuit turns a source text into a Circuit, and Circuit.Run simulates
it, recording one output Trace per declared output.
*/
package hdlsim
