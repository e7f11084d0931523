package funge

// Direction of instruction pointer travel.
type Direction int

//go:generate go tool stringer -linecomment -type=Direction
const (
	DIR_RIGHT = Direction(0) // right
	DIR_LEFT  = Direction(1) // left
	DIR_UP    = Direction(2) // up
	DIR_DOWN  = Direction(3) // down
)

// Delta returns the position change for one step in the direction.
func (dir Direction) Delta() (dx, dy int) {
	switch dir {
	case DIR_RIGHT:
		dx = 1
	case DIR_LEFT:
		dx = -1
	case DIR_UP:
		dy = -1
	case DIR_DOWN:
		dy = 1
	}

	return
}
