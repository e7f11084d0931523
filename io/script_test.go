package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScript_Line(t *testing.T) {
	assert := assert.New(t)

	sc := &Script{Lines: []string{"12", "hello\n"}}
	assert.Equal(2, sc.Remaining())

	line, err := sc.Line()
	assert.NoError(err)
	assert.Equal("12", line)

	line, err = sc.Line()
	assert.NoError(err)
	assert.Equal("hello", line)
	assert.Equal(0, sc.Remaining())

	_, err = sc.Line()
	assert.ErrorIs(err, ErrInputClosed)

	sc.Rewind()
	line, err = sc.Line()
	assert.NoError(err)
	assert.Equal("12", line)
}
