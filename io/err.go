package io

import (
	"errors"

	"github.com/ezrec/befunge/translate"
)

var f = translate.From

var (
	ErrInputClosed = errors.New(f("input closed"))
	ErrNoOutput    = errors.New(f("no output"))
)
