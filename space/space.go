// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package space implements the sparse, toroidal program space of a Befunge
// interpreter.
//
// Cells are stored in a map keyed by coordinate. The Width and Height only
// serve as moduli for wrap-around; no dense grid is ever allocated. Cells
// that were never written read back as the null character.
package space

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Point is a coordinate in the program space.
type Point struct {
	X, Y int
}

// Space is the program space simulation.
type Space struct {
	Width  int // Logical width, used for wrap-around.
	Height int // Logical height, used for wrap-around.

	cells map[Point]rune
}

// NewSpace creates a new, empty program space.
func NewSpace(width, height int) (sp *Space) {
	sp = &Space{
		Width:  width,
		Height: height,
		cells:  map[Point]rune{},
	}

	return
}

// Defines returns an iterator over the space defines.
func (sp *Space) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"WIDTH":  fmt.Sprintf("%v", sp.Width),
		"HEIGHT": fmt.Sprintf("%v", sp.Height),
	})
}

// Reset removes all cells.
func (sp *Space) Reset() {
	clear(sp.cells)
}

// Len returns the number of written cells.
func (sp *Space) Len() int {
	return len(sp.cells)
}

// Write sets the cell at (x, y) to ch.
func (sp *Space) Write(x, y int, ch rune) {
	if sp.cells == nil {
		sp.cells = map[Point]rune{}
	}
	sp.cells[Point{X: x, Y: y}] = ch
}

// Read returns the cell at (x, y), or the null character if it was
// never written.
func (sp *Space) Read(x, y int) rune {
	return sp.cells[Point{X: x, Y: y}]
}

// Numeric returns the cell at (x, y) as a byte value.
// Only the low 8 bits of the code point are kept.
func (sp *Space) Numeric(x, y int) uint8 {
	return uint8(sp.Read(x, y))
}

// Contains returns true if (x, y) lies within the logical bounds.
func (sp *Space) Contains(x, y int) bool {
	return x >= 0 && x < sp.Width && y >= 0 && y < sp.Height
}

// Wrap folds an arbitrary coordinate onto the torus.
func (sp *Space) Wrap(x, y int) (int, int) {
	return wrap(x, sp.Width), wrap(y, sp.Height)
}

func wrap(val, bound int) int {
	if bound <= 0 {
		return 0
	}
	return (val%bound + bound) % bound
}

// Cells returns an iterator over all written cells, in row-major order.
func (sp *Space) Cells() iter.Seq2[Point, rune] {
	return func(yield func(pt Point, ch rune) bool) {
		points := slices.SortedFunc(maps.Keys(sp.cells), func(a, b Point) int {
			if a.Y != b.Y {
				return a.Y - b.Y
			}
			return a.X - b.X
		})
		for _, pt := range points {
			if !yield(pt, sp.cells[pt]) {
				return
			}
		}
	}
}
