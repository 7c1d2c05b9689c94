// Package world provides generic 2D tile-board primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Kind is the category of whatever occupies a tile
type Kind uint8

// Tile kinds
const (
	Empty Kind = iota
	Wall
	Gateway
	Block
	Key
	Checkpoint
	Enemy
	Exit
)

// AllKinds returns every tile kind, Empty first
func AllKinds() []Kind {
	return []Kind{Empty, Wall, Gateway, Block, Key, Checkpoint, Enemy, Exit}
}

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Gateway:
		return "Gateway"
	case Block:
		return "Block"
	case Key:
		return "Key"
	case Checkpoint:
		return "Checkpoint"
	case Enemy:
		return "Enemy"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// IsBlocking returns true if a tile of this kind stops movement and pathfinding
func (k Kind) IsBlocking() bool {
	switch k {
	case Wall, Block, Gateway, Exit:
		return true
	default:
		return false
	}
}

// IsColoured returns true if tiles of this kind carry a colour payload
func (k Kind) IsColoured() bool {
	return k == Block || k == Gateway
}

// Colour indexes a game-defined palette. Only Block and Gateway tiles use it.
type Colour int

// NoColour is the payload of tiles that are not coloured
const NoColour Colour = -1

// Tile is a single board square: its kind plus an optional colour payload
type Tile struct {
	Kind   Kind
	Colour Colour
}

// EmptyTile returns a traversable tile with nothing on it
func EmptyTile() Tile {
	return Tile{Kind: Empty, Colour: NoColour}
}

// NewTile creates an uncoloured tile of the given kind
func NewTile(kind Kind) Tile {
	return Tile{Kind: kind, Colour: NoColour}
}

// NewColouredTile creates a Block or Gateway tile of the given colour
func NewColouredTile(kind Kind, colour Colour) Tile {
	return Tile{Kind: kind, Colour: colour}
}

// IsEmpty returns true if nothing occupies the tile
func (t Tile) IsEmpty() bool {
	return t.Kind == Empty
}

// IsBlocking returns true if the tile stops movement and pathfinding
func (t Tile) IsBlocking() bool {
	return t.Kind.IsBlocking()
}
