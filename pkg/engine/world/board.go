package world

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrOccupied    = errors.New("tile already occupied")
)

// Board represents the tile map with encapsulated tile storage
type Board struct {
	tiles  [][]Tile // indexed [y][x]
	width  int
	height int

	start Point
	exit  Point
}

// NewBoard creates a new board of empty tiles with the given dimensions
func NewBoard(width, height int) *Board {
	b := &Board{}
	b.Build(width, height)
	return b
}

// Build initializes the board with the given dimensions
func (b *Board) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Board dimensions must be positive")
	}

	b.width = width
	b.height = height
	b.tiles = make([][]Tile, height)
	for y := range b.tiles {
		b.tiles[y] = make([]Tile, width)
		for x := range b.tiles[y] {
			b.tiles[y][x] = EmptyTile()
		}
	}
}

// Width returns the number of columns in the board
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows in the board
func (b *Board) Height() int {
	return b.height
}

// StartPoint returns the starting position
func (b *Board) StartPoint() Point {
	return b.start
}

// ExitPoint returns the exit position
func (b *Board) ExitPoint() Point {
	return b.exit
}

// IsValidPosition checks if a position is within board bounds
func (b *Board) IsValidPosition(p Point) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// IsPlayablePosition checks if a position is inside the perimeter
func (b *Board) IsPlayablePosition(p Point) bool {
	return p.X >= 1 && p.X < b.width-1 && p.Y >= 1 && p.Y < b.height-1
}

// IsOnPerimeter checks if a position is on the edge of the board
func (b *Board) IsOnPerimeter(p Point) bool {
	return b.IsValidPosition(p) && !b.IsPlayablePosition(p)
}

// Tile returns the tile at p. Positions outside the board read as walls.
func (b *Board) Tile(p Point) Tile {
	if !b.IsValidPosition(p) {
		return NewTile(Wall)
	}
	return b.tiles[p.Y][p.X]
}

// IsFree returns true if p is on the board and nothing occupies it
func (b *Board) IsFree(p Point) bool {
	return b.IsValidPosition(p) && b.tiles[p.Y][p.X].IsEmpty()
}

// IsPassable returns true if p is on the board and its tile does not block movement
func (b *Board) IsPassable(p Point) bool {
	return b.IsValidPosition(p) && !b.tiles[p.Y][p.X].IsBlocking()
}

// Place puts t on an empty tile. It never overwrites an occupied tile.
func (b *Board) Place(p Point, t Tile) error {
	if !b.IsValidPosition(p) {
		return fmt.Errorf("place %s at %s: %w", t.Kind, p, ErrOutOfBounds)
	}
	if current := b.tiles[p.Y][p.X]; !current.IsEmpty() {
		return fmt.Errorf("place %s at %s (holds %s): %w", t.Kind, p, current.Kind, ErrOccupied)
	}
	b.tiles[p.Y][p.X] = t
	return nil
}

// Set overwrites the tile at p regardless of its contents.
// Returns false if p is out of bounds.
func (b *Board) Set(p Point, t Tile) bool {
	if !b.IsValidPosition(p) {
		return false
	}
	b.tiles[p.Y][p.X] = t
	return true
}

// Clear empties the tile at p. Returns false if p is out of bounds.
func (b *Board) Clear(p Point) bool {
	return b.Set(p, EmptyTile())
}

// SetStartAt sets the starting position. Returns false if out of bounds.
func (b *Board) SetStartAt(p Point) bool {
	if !b.IsValidPosition(p) {
		return false
	}
	b.start = p
	return true
}

// SetExitAt sets the exit position and places the exit tile there,
// replacing whatever was on it. Returns false if out of bounds.
func (b *Board) SetExitAt(p Point) bool {
	if !b.Set(p, NewTile(Exit)) {
		return false
	}
	b.exit = p
	return true
}

// ForEachTile iterates over all tiles in row-major order
func (b *Board) ForEachTile(fn func(p Point, t Tile)) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			fn(Point{X: x, Y: y}, b.tiles[y][x])
		}
	}
}

// Count returns the number of tiles of the given kind
func (b *Board) Count(kind Kind) int {
	n := 0
	b.ForEachTile(func(_ Point, t Tile) {
		if t.Kind == kind {
			n++
		}
	})
	return n
}

// FreePoints returns every empty tile in row-major order
func (b *Board) FreePoints() []Point {
	var free []Point
	b.ForEachTile(func(p Point, t Tile) {
		if t.IsEmpty() {
			free = append(free, p)
		}
	})
	return free
}

// PassableNeighbours returns the in-bounds, non-blocking neighbours of p in search order
func (b *Board) PassableNeighbours(p Point) []Point {
	neighbours := make([]Point, 0, 4)
	for _, dir := range SearchOrder() {
		n := p.Step(dir)
		if b.IsPassable(n) {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	c := &Board{
		width:  b.width,
		height: b.height,
		start:  b.start,
		exit:   b.exit,
		tiles:  make([][]Tile, b.height),
	}
	for y := range b.tiles {
		c.tiles[y] = make([]Tile, b.width)
		copy(c.tiles[y], b.tiles[y])
	}
	return c
}

// Validate checks the board for common issues and returns an error describing the first one found
func (b *Board) Validate() error {
	if b.width <= 0 || b.height <= 0 {
		return errors.New("board has invalid dimensions")
	}
	if !b.IsPlayablePosition(b.start) {
		return fmt.Errorf("start %s is not inside the perimeter", b.start)
	}
	if b.Tile(b.start).IsBlocking() {
		return fmt.Errorf("start %s is blocked by %s", b.start, b.Tile(b.start).Kind)
	}
	if b.Tile(b.exit).Kind != Exit {
		return fmt.Errorf("exit %s holds %s", b.exit, b.Tile(b.exit).Kind)
	}
	return nil
}
