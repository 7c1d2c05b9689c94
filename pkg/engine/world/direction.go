package world

// Direction represents an orthogonal step on the board
type Direction int

// Direction constants, declared in search order
const (
	Up Direction = iota
	Down
	Right
	Left
)

// SearchOrder returns the directions in the fixed order used by every board search.
// Changing it changes every seeded layout.
func SearchOrder() []Direction {
	return []Direction{Up, Down, Right, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four orthogonal directions
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction (y grows downwards)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}
