package io

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Console reads input lines from an io.Reader, and writes prompts and
// display text to an io.Writer.
type Console struct {
	Input  io.Reader
	Output io.Writer
	Prompt string // Written to Output before each line is read.

	reader *bufio.Reader
}

// Rewind discards any buffered input. Call it after replacing Input.
func (con *Console) Rewind() {
	con.reader = nil
}

// Line reads one line of input, without its line terminator.
// A final line lacking a terminator is returned as is.
func (con *Console) Line() (line string, err error) {
	if con.Input == nil {
		err = ErrInputClosed
		return
	}

	if con.reader == nil {
		con.reader = bufio.NewReader(con.Input)
	}

	if len(con.Prompt) != 0 && con.Output != nil {
		_, err = io.WriteString(con.Output, con.Prompt)
		if err != nil {
			return
		}
	}

	line, err = con.reader.ReadString('\n')
	switch {
	case err == nil:
		// pass
	case errors.Is(err, io.EOF) && len(line) > 0:
		err = nil
	case errors.Is(err, io.EOF):
		err = ErrInputClosed
		return
	default:
		err = errors.Join(ErrInputClosed, err)
		return
	}

	line = Trim(line)

	return
}

// Display writes text to the output.
func (con *Console) Display(text string) (err error) {
	if con.Output == nil {
		err = ErrNoOutput
		return
	}

	_, err = io.WriteString(con.Output, text)

	return
}

// Trim removes a trailing "\n" or "\r\n" line terminator, if present.
func Trim(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}

	line = line[:len(line)-1]

	return strings.TrimSuffix(line, "\r")
}
