package io

// Script supplies a fixed list of input lines, for deterministic runs.
type Script struct {
	Lines []string

	next int
}

func (sc *Script) Rewind() {
	sc.next = 0
}

func (sc *Script) Line() (line string, err error) {
	if sc.next >= len(sc.Lines) {
		err = ErrInputClosed
		return
	}

	line = Trim(sc.Lines[sc.next])
	sc.next++

	return
}

// Remaining returns the number of unread lines.
func (sc *Script) Remaining() int {
	return len(sc.Lines) - sc.next
}
