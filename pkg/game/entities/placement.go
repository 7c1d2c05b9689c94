package entities

import (
	"fmt"

	"fortress/pkg/engine/world"
)

// Placement records one entity put on the board during generation
type Placement struct {
	Pos    world.Point
	Kind   world.Kind
	Colour world.Colour // NoColour unless Kind is Block or Gateway
	Order  int          // Placement sequence number within the level
}

// Tile returns the board tile this placement occupies
func (p Placement) Tile() world.Tile {
	return world.Tile{Kind: p.Kind, Colour: p.Colour}
}

// Name returns the display name, e.g. "Red Block"
func (p Placement) Name() string {
	if p.Kind.IsColoured() {
		return ColourName(p.Colour) + " " + KindName(p.Kind)
	}
	return KindName(p.Kind)
}

// String formats the placement for logs and dumps
func (p Placement) String() string {
	return fmt.Sprintf("%s@%s", p.Name(), p.Pos)
}

// Opens returns true if collecting this gateway's colour lets the player through block b
func (p Placement) Opens(b Placement) bool {
	return p.Kind == world.Gateway && b.Kind == world.Block && p.Colour == b.Colour
}
