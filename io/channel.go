// Package io provides the host side input and output adapters for the
// interpreter.
//
// Both Console and Script implement the funge.Input capability, so the
// engine can be driven either from a terminal or from canned lines.
package io

import (
	"github.com/ezrec/befunge/funge"
)

// Source is a rewindable supplier of input lines.
type Source interface {
	funge.Input
	// Rewind resets the source to its initial state.
	Rewind()
}

var (
	_ Source = (*Console)(nil)
	_ Source = (*Script)(nil)
)
