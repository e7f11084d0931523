package emulator

import (
	"errors"

	"github.com/ezrec/befunge/space"
	"github.com/ezrec/befunge/translate"
)

var f = translate.From

var (
	ErrSpaceSize   = errors.New(f("space size must be positive"))
	ErrStartBounds = errors.New(f("start position outside of space"))
	ErrStepLimit   = errors.New(f("step limit reached"))
)

// ErrRuntime indicates the step and position of a runtime error.
type ErrRuntime struct {
	Step int
	Pos  space.Point
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("step %d at (%d,%d) %v", err.Step, err.Pos.X, err.Pos.Y, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
