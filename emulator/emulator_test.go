package emulator

import (
	"bytes"
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/befunge/funge"
	"github.com/ezrec/befunge/io"
	"github.com/ezrec/befunge/space"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator(DEFAULT_WIDTH, DEFAULT_HEIGHT)
	assert.NoError(err)

	assert.False(emu.Verbose)
	assert.NotNil(emu.Funge)
	assert.Equal(DEFAULT_WIDTH, emu.Funge.Space.Width)
	assert.Equal(DEFAULT_HEIGHT, emu.Funge.Space.Height)
	assert.Equal(funge.DIR_RIGHT, emu.Funge.Direction)
	assert.Same(&emu.Console, emu.Funge.Input)
}

func TestEmulator_SpaceSize(t *testing.T) {
	assert := assert.New(t)

	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		_, err := NewEmulator(size[0], size[1])
		assert.ErrorIs(err, ErrSpaceSize, "%v", size)
	}
}

func TestEmulator_Defines(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator(80, 25)
	assert.NoError(err)

	defines := maps.Collect(emu.Defines())
	assert.Equal("80", defines["WIDTH"])
	assert.Equal("25", defines["HEIGHT"])
	assert.Equal("10", defines["DEFAULT_WIDTH"])
	assert.Equal("255", defines["CELL_MAX"])
	assert.Equal("0", defines["START_X"])
}

// doRun composes and runs a program, returning its output.
func doRun(emu *Emulator, src string, input []string, t *testing.T) (output string) {
	assert := assert.New(t)

	err := emu.Compose(t.Name(), src)
	if !assert.NoError(err) {
		t.FailNow()
	}

	emu.Funge.Input = &io.Script{Lines: input}

	err = emu.Reset(space.Point{})
	assert.NoError(err)

	emu.Limit = 10000
	err = emu.Run()
	assert.NoError(err)

	output = emu.OutputText()
	return
}

func TestEmulator_Add(t *testing.T) {
	assert := assert.New(t)

	emu, _ := NewEmulator(10, 10)
	output := doRun(emu, `row(0, "55+.@")`, nil, t)

	assert.Equal("10 ", output)
	assert.True(emu.Funge.Stack.Empty())
	assert.Equal(5, emu.Ticks())
}

func TestEmulator_Hello(t *testing.T) {
	assert := assert.New(t)

	emu, _ := NewEmulator(32, 4)

	// Push the text in reverse, then print until the terminator is seen.
	src := `row(0, '0"!olleH">:#,_@')`
	output := doRun(emu, src, nil, t)
	assert.Equal("Hello!", output)
}

func TestEmulator_Echo(t *testing.T) {
	assert := assert.New(t)

	// The demo program: read a line, then print it back forever.
	emu, _ := NewEmulator(10, 10)
	err := emu.Compose("demo", `
put(1, 0, "~")
put(2, 0, "v")
put(2, 1, ",")
put(2, 2, ">")
put(3, 2, "^")
put(3, 0, "<")
`)
	assert.NoError(err)

	emu.Funge.Input = &io.Script{Lines: []string{"ab"}}
	assert.NoError(emu.Reset(space.Point{}))

	emu.Limit = 40
	err = emu.Run()
	assert.ErrorIs(err, ErrStepLimit)
	assert.True(strings.HasPrefix(emu.OutputText(), "ba"))
}

func TestEmulator_Input(t *testing.T) {
	assert := assert.New(t)

	emu, _ := NewEmulator(10, 2)
	output := doRun(emu, `row(0, "&&*.@")`, []string{"12", "11"}, t)
	assert.Equal("132 ", output)
}

func TestEmulator_Console(t *testing.T) {
	assert := assert.New(t)

	emu, _ := NewEmulator(10, 2)
	assert.NoError(emu.Compose("console", `row(0, "~,,@")`))

	prompts := &bytes.Buffer{}
	emu.Console.Input = strings.NewReader("hi\r\n")
	emu.Console.Output = prompts
	emu.Console.Prompt = "? "
	assert.NoError(emu.Reset(space.Point{}))

	assert.NoError(emu.Run())
	assert.Equal("ih", emu.OutputText())
	assert.Equal("? ", prompts.String())
}

func TestEmulator_DivideByZero(t *testing.T) {
	assert := assert.New(t)

	emu, _ := NewEmulator(10, 10)
	assert.NoError(emu.Compose("div", `row(1, "10/@", x=2)`))
	assert.NoError(emu.Reset(space.Point{X: 2, Y: 1}))

	err := emu.Run()
	assert.ErrorIs(err, funge.ErrDivideByZero)

	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(2, runtime.Step)
		assert.Equal(space.Point{X: 4, Y: 1}, runtime.Pos)
	}
	assert.Contains(err.Error(), "step 2 at (4,1)")
}

func TestEmulator_InputClosed(t *testing.T) {
	assert := assert.New(t)

	emu, _ := NewEmulator(10, 10)
	assert.NoError(emu.Compose("closed", `row(0, "&@")`))
	assert.NoError(emu.Reset(space.Point{}))

	err := emu.Run()
	assert.ErrorIs(err, funge.ErrInputUnavailable)
	assert.ErrorIs(err, io.ErrInputClosed)
}

func TestEmulator_StartBounds(t *testing.T) {
	assert := assert.New(t)

	emu, _ := NewEmulator(10, 5)
	assert.ErrorIs(emu.Reset(space.Point{X: 10, Y: 0}), ErrStartBounds)
	assert.ErrorIs(emu.Reset(space.Point{X: 0, Y: -1}), ErrStartBounds)
	assert.NoError(emu.Reset(space.Point{X: 9, Y: 4}))
	assert.Equal(space.Point{X: 9, Y: 4}, emu.Funge.Ip)
}

func TestEmulator_Reset(t *testing.T) {
	assert := assert.New(t)

	emu, _ := NewEmulator(10, 10)
	script := &io.Script{Lines: []string{"7"}}
	emu.Funge.Input = script

	assert.NoError(emu.Compose("reset", `row(0, "&.@")`))
	assert.NoError(emu.Reset(space.Point{}))
	assert.NoError(emu.Run())
	assert.Equal("7 ", emu.OutputText())

	// Run again, from the same input.
	assert.NoError(emu.Reset(space.Point{}))
	assert.Equal("", emu.OutputText())
	assert.Equal(1, script.Remaining())
	assert.NoError(emu.Run())
	assert.Equal("7 ", emu.OutputText())
}

func TestEmulator_Frame(t *testing.T) {
	assert := assert.New(t)

	emu, _ := NewEmulator(4, 1)
	assert.NoError(emu.Compose("frame", `row(0, "55+.")`))
	assert.NoError(emu.Reset(space.Point{}))

	for range 4 {
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
	}

	frame := emu.Frame(false)
	assert.Equal(4, frame.Step)
	assert.Equal(0, frame.X)
	assert.Equal("right", frame.Direction)
	assert.Equal("|5|5|+|.|\n", frame.Grid)
	assert.Equal("[]", frame.Stack)
	assert.Equal("10 ", frame.Output)
	assert.False(frame.Done)
}
