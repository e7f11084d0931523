package compose

import (
	"github.com/ezrec/befunge/translate"
)

var f = translate.From

// ErrCharacter reports a value that cannot be stored in a cell.
type ErrCharacter string

func (err ErrCharacter) Error() string {
	return f("'%v' is not a single character", string(err))
}

// ErrScript indicates the composition script that failed.
type ErrScript struct {
	Name string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("script %v: %v", err.Name, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
