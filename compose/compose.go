// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package compose populates a program space from a Starlark script.
//
// The script sees the builtins put(x, y, ch), row(y, text, x=0),
// block(text, x=0, y=0) and get(x, y), plus any predefined values.
package compose

import (
	"log"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/befunge/space"
)

// Composer runs composition scripts against a program space.
type Composer struct {
	Verbose bool // If set, verbosely logs each cell written.

	predefine map[string]string
}

// Predefine defines a new value or redefines an existing value, visible
// to scripts as a global.
func (cm *Composer) Predefine(key string, value string) {
	if cm.predefine == nil {
		cm.predefine = map[string]string{key: value}
	} else {
		cm.predefine[key] = value
	}
}

// cellOf converts a Starlark string or integer into a cell character.
func cellOf(value starlark.Value) (ch rune, err error) {
	switch v := value.(type) {
	case starlark.String:
		str := string(v)
		if utf8.RuneCountInString(str) != 1 {
			err = ErrCharacter(str)
			return
		}
		ch, _ = utf8.DecodeRuneInString(str)
	case starlark.Int:
		code, ok := v.Int64()
		if !ok || code < 0 || code > utf8.MaxRune {
			err = ErrCharacter(v.String())
			return
		}
		ch = rune(code)
	default:
		err = ErrCharacter(value.String())
	}

	return
}

func (cm *Composer) write(sp *space.Space, x, y int, ch rune) {
	if cm.Verbose {
		log.Printf("compose: (%d,%d) = %q", x, y, ch)
	}
	sp.Write(x, y, ch)
}

// builtins returns the script builtins bound to a program space.
func (cm *Composer) builtins(sp *space.Space) starlark.StringDict {
	put := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x, y int
		var value starlark.Value
		err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y, "ch", &value)
		if err != nil {
			return nil, err
		}
		ch, err := cellOf(value)
		if err != nil {
			return nil, err
		}
		cm.write(sp, x, y, ch)
		return starlark.None, nil
	}

	row := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x, y int
		var text string
		err := starlark.UnpackArgs(b.Name(), args, kwargs, "y", &y, "text", &text, "x?", &x)
		if err != nil {
			return nil, err
		}
		for n, ch := range []rune(text) {
			cm.write(sp, x+n, y, ch)
		}
		return starlark.None, nil
	}

	block := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x, y int
		var text string
		err := starlark.UnpackArgs(b.Name(), args, kwargs, "text", &text, "x?", &x, "y?", &y)
		if err != nil {
			return nil, err
		}
		for dy, line := range strings.Split(text, "\n") {
			for dx, ch := range []rune(line) {
				if ch == ' ' {
					continue
				}
				cm.write(sp, x+dx, y+dy, ch)
			}
		}
		return starlark.None, nil
	}

	get := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x, y int
		err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y)
		if err != nil {
			return nil, err
		}
		return starlark.String(string(sp.Read(x, y))), nil
	}

	return starlark.StringDict{
		"put":   starlark.NewBuiltin("put", put),
		"row":   starlark.NewBuiltin("row", row),
		"block": starlark.NewBuiltin("block", block),
		"get":   starlark.NewBuiltin("get", get),
	}
}

// Compose executes the script src, named name, writing into sp.
func (cm *Composer) Compose(name string, src string, sp *space.Space) (err error) {
	defer func() {
		if err != nil {
			err = &ErrScript{Name: name, Err: err}
		}
	}()

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	pred := cm.builtins(sp)
	for key, str := range cm.predefine {
		value, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			pred[key] = starlark.String(str)
		} else {
			pred[key] = starlark.MakeInt64(value)
		}
	}

	if cm.Verbose {
		log.Printf("compose: %v (%d predefines)", name, len(cm.predefine))
	}

	_, err = starlark.ExecFileOptions(&opts, thread, name, src, pred)

	return
}
