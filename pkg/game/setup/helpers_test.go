package setup

import (
	"fortress/pkg/engine/world"
	"fortress/pkg/game/entities"
)

func placement(p world.Point, kind world.Kind, colour world.Colour, order int) entities.Placement {
	return entities.Placement{Pos: p, Kind: kind, Colour: colour, Order: order}
}
