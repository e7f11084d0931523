// Package funge implements the execution engine of a Befunge-style
// interpreter.
//
// The engine consists of an instruction pointer (position and direction)
// walking a toroidal program space, an unbounded stack of 8-bit values, a
// string mode flag, and an append-only output buffer. Each call to Step
// performs exactly one state transition. Arithmetic wraps modulo 256, and
// popping an empty stack yields zero.
//
// Division or modulo by zero, and failure to obtain an input line, are
// fatal to the run and reported as errors from Step.
package funge
