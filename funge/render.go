package funge

import (
	"fmt"
	"strings"
)

const (
	highlightOn  = "\x1b[47m" // White background.
	highlightOff = "\x1b[0m"  // Reset colors and formatting.
)

// Printable returns ch, or a blank for control and non-printable code points.
func Printable(ch rune) rune {
	if ch <= 32 || (ch >= 128 && ch <= 157) {
		return ' '
	}

	return ch
}

// Grid renders the program space within its bounds, one row per line.
// Each cell is preceded by '|', and each row is closed by "|\n".
// If highlight is set, the cell under the pointer is marked with ANSI
// background color codes.
func (fg *Funge) Grid(highlight bool) string {
	var sb strings.Builder

	for y := range fg.Space.Height {
		for x := range fg.Space.Width {
			here := highlight && fg.Ip.X == x && fg.Ip.Y == y

			sb.WriteByte('|')
			if here {
				sb.WriteString(highlightOn)
			}
			sb.WriteRune(Printable(fg.Space.Read(x, y)))
			if here {
				sb.WriteString(highlightOff)
			}
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}

// StackText renders the stack from top to bottom, as "[ top ... bottom]".
func (fg *Funge) StackText() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for n := len(fg.Stack.Data) - 1; n >= 0; n-- {
		fmt.Fprintf(&sb, " %d", fg.Stack.Data[n])
	}
	sb.WriteByte(']')

	return sb.String()
}

// OutputText returns the output accumulated so far.
func (fg *Funge) OutputText() string {
	return fg.Output.String()
}

// String returns the current execution state as a string.
func (fg *Funge) String() (text string) {
	mode := "normal"
	if fg.StringMode {
		mode = "string"
	}

	text += fmt.Sprintf("% 9s: (%d,%d)\n", "ip", fg.Ip.X, fg.Ip.Y)
	text += fmt.Sprintf("% 9s: %v\n", "direction", fg.Direction)
	text += fmt.Sprintf("% 9s: %v\n", "mode", mode)
	text += fmt.Sprintf("% 9s: %q\n", "cell", fg.Current())
	text += fmt.Sprintf("% 9s: %v\n", "stack", fg.StackText())
	text += fmt.Sprintf("% 9s: %d\n", "ticks", fg.Ticks)

	return
}
