// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package funge

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/ezrec/befunge/space"
)

// Input supplies lines of text to the input instructions.
// The returned line has any line terminator removed.
type Input interface {
	Line() (line string, err error)
}

// Funge is the execution state of a single run.
type Funge struct {
	Verbose bool // Set to enable verbose logging.

	Space *space.Space // Reference to the program space.
	Input Input        // Source of input lines; nil means no input.
	Rand  *rand.Rand   // Random source for '?'; nil uses the global source.

	Start      space.Point     // Starting position.
	Ip         space.Point     // Current position.
	Direction  Direction       // Current direction of travel.
	Stack      Stack           // Operand stack.
	StringMode bool            // Set while between a pair of '"'.
	Output     strings.Builder // Accumulated program output.

	Ticks int // Completed steps since reset.
}

// NewFunge creates a new execution state over a program space,
// starting at the origin.
func NewFunge(sp *space.Space) (fg *Funge) {
	fg = &Funge{
		Space: sp,
	}

	fg.Reset()

	return
}

// Defines for the execution state.
func (fg *Funge) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"START_X":   fmt.Sprintf("%v", fg.Start.X),
		"START_Y":   fmt.Sprintf("%v", fg.Start.Y),
		"CELL_MAX":  "255",
		"DIR_RIGHT": fmt.Sprintf("%d", DIR_RIGHT),
		"DIR_LEFT":  fmt.Sprintf("%d", DIR_LEFT),
		"DIR_UP":    fmt.Sprintf("%d", DIR_UP),
		"DIR_DOWN":  fmt.Sprintf("%d", DIR_DOWN),
	})
}

// Reset the execution state.
// - Moves the pointer to the starting position, heading right.
// - Clears the stack, string mode and output.
// - Zeros the tick counter.
func (fg *Funge) Reset() {
	if fg.Verbose {
		log.Printf("funge: reset to (%d,%d)", fg.Start.X, fg.Start.Y)
	}

	fg.Ip = fg.Start
	fg.Direction = DIR_RIGHT
	fg.Stack.Reset()
	fg.StringMode = false
	fg.Output.Reset()
	fg.Ticks = 0
}

// Current returns the character under the instruction pointer.
func (fg *Funge) Current() rune {
	return fg.Space.Read(fg.Ip.X, fg.Ip.Y)
}

// Step executes the instruction under the pointer, then advances the
// pointer unless the run terminated. Returns true once '@' is executed.
func (fg *Funge) Step() (done bool, err error) {
	done, err = fg.Execute(fg.Current())
	if err != nil {
		return
	}

	fg.Ticks++

	if !done {
		fg.Advance()
	}

	return
}

// MoveBy moves the pointer by (dx, dy), then wraps each axis that left
// the space onto the opposite edge.
func (fg *Funge) MoveBy(dx, dy int) {
	width, height := fg.Space.Width, fg.Space.Height

	fg.Ip.X += dx
	fg.Ip.Y += dy

	if fg.Ip.X >= width {
		fg.Ip.X = 0
	}
	if fg.Ip.X < 0 {
		fg.Ip.X = width - 1
	}

	if fg.Ip.Y >= height {
		fg.Ip.Y = 0
	}
	if fg.Ip.Y < 0 {
		fg.Ip.Y = height - 1
	}
}

// Advance moves the pointer one cell in the current direction.
func (fg *Funge) Advance() {
	fg.MoveBy(fg.Direction.Delta())
}

func (fg *Funge) random(n int) int {
	if fg.Rand != nil {
		return fg.Rand.IntN(n)
	}
	return rand.IntN(n)
}

func (fg *Funge) line() (line string, err error) {
	if fg.Input == nil {
		err = ErrInputUnavailable
		return
	}

	line, err = fg.Input.Line()
	if err != nil {
		err = errors.Join(ErrInputUnavailable, err)
	}

	return
}

// Execute performs the effect of a single cell character on the state,
// without moving the pointer. Returns true for the terminate instruction.
func (fg *Funge) Execute(ch rune) (done bool, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(ch), err)
		}
	}()

	op := Decode(ch)

	if fg.Verbose {
		mode := ""
		if fg.StringMode {
			mode = " (string)"
		}
		log.Printf("funge: (%d,%d) %v %q %v%s top=%d depth=%d",
			fg.Ip.X, fg.Ip.Y, fg.Direction, ch, op, mode, fg.Stack.Peek(), fg.Stack.Len())
	}

	st := &fg.Stack

	if fg.StringMode {
		if op == OP_STRING {
			fg.StringMode = false
		} else {
			st.Push(uint8(ch))
		}
		return
	}

	// Values are uint8, so all arithmetic below wraps modulo 256.
	switch op {
	case OP_NOP:
		// pass
	case OP_RIGHT:
		fg.Direction = DIR_RIGHT
	case OP_LEFT:
		fg.Direction = DIR_LEFT
	case OP_UP:
		fg.Direction = DIR_UP
	case OP_DOWN:
		fg.Direction = DIR_DOWN
	case OP_RANDOM:
		fg.Direction = Direction(fg.random(4))
	case OP_IF_H:
		if st.Pop() == 0 {
			fg.Direction = DIR_RIGHT
		} else {
			fg.Direction = DIR_LEFT
		}
	case OP_IF_V:
		if st.Pop() == 0 {
			fg.Direction = DIR_DOWN
		} else {
			fg.Direction = DIR_UP
		}
	case OP_SKIP:
		fg.Advance()
	case OP_DIGIT:
		st.Push(uint8(ch - '0'))
	case OP_ADD:
		a := st.Pop()
		b := st.Pop()
		st.Push(b + a)
	case OP_SUB:
		a := st.Pop()
		b := st.Pop()
		st.Push(b - a)
	case OP_MUL:
		a := st.Pop()
		b := st.Pop()
		st.Push(b * a)
	case OP_DIV:
		a := st.Pop()
		b := st.Pop()
		if a == 0 {
			err = ErrDivideByZero
			return
		}
		st.Push(b / a)
	case OP_MOD:
		a := st.Pop()
		b := st.Pop()
		if a == 0 {
			err = ErrModuloByZero
			return
		}
		st.Push(b % a)
	case OP_NOT:
		if st.Pop() == 0 {
			st.Push(1)
		} else {
			st.Push(0)
		}
	case OP_GT:
		a := st.Pop()
		b := st.Pop()
		if b > a {
			st.Push(1)
		} else {
			st.Push(0)
		}
	case OP_DUP:
		st.Push(st.Peek())
	case OP_SWAP:
		a := st.Pop()
		b := st.Pop()
		st.Push(a)
		st.Push(b)
	case OP_POP:
		st.Pop()
	case OP_STRING:
		fg.StringMode = true
	case OP_END:
		done = true
	case OP_OUT_NUM:
		fg.Output.WriteString(strconv.Itoa(int(st.Pop())))
		fg.Output.WriteByte(' ')
	case OP_OUT_CHAR:
		fg.Output.WriteRune(rune(st.Pop()))
	case OP_PUT:
		v := st.Pop()
		x := st.Pop()
		y := st.Pop()
		fg.Space.Write(int(x), int(y), rune(v))
	case OP_GET:
		x := st.Pop()
		y := st.Pop()
		st.Push(fg.Space.Numeric(int(x), int(y)))
	case OP_IN_NUM:
		var text string
		text, err = fg.line()
		if err != nil {
			return
		}
		value, perr := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 8)
		if perr != nil {
			value = 0
		}
		st.Push(uint8(value))
	case OP_IN_CHAR:
		var text string
		text, err = fg.line()
		if err != nil {
			return
		}
		for n := range len(text) {
			st.Push(text[n])
		}
	default:
		panic("unknown op")
	}

	return
}
