package funge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/befunge/space"
)

func TestPrintable(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		ch     rune
		expect rune
	}){
		{0, ' '},
		{'\n', ' '},
		{' ', ' '},
		{'!', '!'},
		{'~', '~'},
		{127, 127},
		{128, ' '},
		{157, ' '},
		{158, 158},
		{'È', 'È'},
	}

	for _, entry := range table {
		assert.Equal(entry.expect, Printable(entry.ch), "%d", entry.ch)
	}
}

func TestFunge_Grid(t *testing.T) {
	assert := assert.New(t)

	fg := load(3, 2, "1>", "\tv@")

	expect := strings.Join([]string{
		"|1|>| |",
		"| |v|@|",
		"",
	}, "\n")
	assert.Equal(expect, fg.Grid(false))

	fg.Ip = space.Point{X: 1, Y: 1}
	expect = strings.Join([]string{
		"|1|>| |",
		"| |\x1b[47mv\x1b[0m|@|",
		"",
	}, "\n")
	assert.Equal(expect, fg.Grid(true))
}

func TestFunge_Grid_OutOfBounds(t *testing.T) {
	assert := assert.New(t)

	fg := load(2, 1, "ab")
	fg.Space.Write(5, 5, 'z')
	assert.Equal("|a|b|\n", fg.Grid(false))
}

func TestFunge_StackText(t *testing.T) {
	assert := assert.New(t)

	fg := load(1, 1)
	assert.Equal("[]", fg.StackText())

	fg.Stack.Push(1)
	fg.Stack.Push(20)
	fg.Stack.Push(255)
	assert.Equal("[ 255 20 1]", fg.StackText())
}

func TestFunge_String(t *testing.T) {
	assert := assert.New(t)

	fg := load(3, 1, `"`)
	_, err := fg.Step()
	assert.NoError(err)

	text := fg.String()
	assert.Contains(text, "ip: (1,0)")
	assert.Contains(text, "direction: right")
	assert.Contains(text, "mode: string")
	assert.Contains(text, "ticks: 1")
}
