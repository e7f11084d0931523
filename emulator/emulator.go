// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/befunge/compose"
	"github.com/ezrec/befunge/funge"
	"github.com/ezrec/befunge/internal"
	"github.com/ezrec/befunge/io"
	"github.com/ezrec/befunge/space"
	"github.com/ezrec/befunge/watch"
)

const (
	DEFAULT_WIDTH  = 10 // Default program space width.
	DEFAULT_HEIGHT = 10 // Default program space height.
)

var _emulator_defines = map[string]string{
	"DEFAULT_WIDTH":  fmt.Sprintf("%v", DEFAULT_WIDTH),
	"DEFAULT_HEIGHT": fmt.Sprintf("%v", DEFAULT_HEIGHT),
}

// Emulator state. Program space + execution state + host IO.
type Emulator struct {
	Verbose      bool // If set, enables verbose logging.
	*funge.Funge      // Reference to the execution state.

	Console  io.Console       // Console input, used unless Input is replaced.
	Composer compose.Composer // Composer for the initial program space.
	Limit    int              // Maximum steps per run; zero is unlimited.
}

// NewEmulator creates a new emulator over an empty program space.
func NewEmulator(width, height int) (emu *Emulator, err error) {
	if width <= 0 || height <= 0 {
		err = ErrSpaceSize
		return
	}

	emu = &Emulator{
		Funge: funge.NewFunge(space.NewSpace(width, height)),
	}

	emu.Funge.Input = &emu.Console

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Funge.Space.Defines(),
		emu.Funge.Defines(),
	)
}

// Compose runs a composition script against the program space, with all
// of the defines visible to the script.
func (emu *Emulator) Compose(name string, src string) (err error) {
	for key, value := range emu.Defines() {
		emu.Composer.Predefine(key, value)
	}

	emu.Composer.Verbose = emu.Verbose

	err = emu.Composer.Compose(name, src, emu.Funge.Space)

	return
}

// Reset the execution state to run from start.
// The program space is left as is.
func (emu *Emulator) Reset(start space.Point) (err error) {
	if !emu.Funge.Space.Contains(start.X, start.Y) {
		err = ErrStartBounds
		return
	}

	if source, ok := emu.Funge.Input.(io.Source); ok {
		source.Rewind()
	}

	emu.Funge.Verbose = emu.Verbose
	emu.Funge.Start = start
	emu.Funge.Reset()

	return
}

// Ticks returns the total steps since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Funge.Ticks
}

// Tick performs a single step of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Funge.Verbose = emu.Verbose

	step := emu.Funge.Ticks
	pos := emu.Funge.Ip
	defer func() {
		if err != nil {
			err = &ErrRuntime{Step: step, Pos: pos, Err: err}
		}
	}()

	if emu.Limit > 0 && step >= emu.Limit {
		err = ErrStepLimit
		return
	}

	done, err = emu.Funge.Step()
	if done && emu.Verbose {
		log.Printf("emulator: done after %d steps", emu.Funge.Ticks)
	}

	return
}

// Run ticks the emulator until the program terminates or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Frame returns a snapshot of the state for observers.
func (emu *Emulator) Frame(done bool) watch.Frame {
	fg := emu.Funge
	return watch.Frame{
		Step:      fg.Ticks,
		X:         fg.Ip.X,
		Y:         fg.Ip.Y,
		Direction: fg.Direction.String(),
		Grid:      fg.Grid(false),
		Stack:     fg.StackText(),
		Output:    fg.OutputText(),
		Done:      done,
	}
}
