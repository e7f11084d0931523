package funge

import (
	"errors"

	"github.com/ezrec/befunge/translate"
)

var f = translate.From

var (
	ErrDivideByZero     = errors.New(f("divide by zero"))
	ErrModuloByZero     = errors.New(f("modulo by zero"))
	ErrInputUnavailable = errors.New(f("input unavailable"))
)

// ErrInstruction identifies the cell character that raised an error.
type ErrInstruction rune

func (ei ErrInstruction) Error() string {
	return f("instruction %q (%v)", rune(ei), Decode(rune(ei)))
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}
