package levelgen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"fortress/pkg/engine/world"
	"fortress/pkg/game/config"
	"fortress/pkg/game/entities"
)

// Gates holds the blocks and gateways placed along a critical path, in placement order
type Gates struct {
	Blocks   []entities.Placement
	Gateways []entities.Placement
	placed   int
}

// Count returns the number of placements made
func (g *Gates) Count() int {
	return g.placed
}

func (g *Gates) record(pos world.Point, kind world.Kind, colour world.Colour) entities.Placement {
	p := entities.Placement{Pos: pos, Kind: kind, Colour: colour, Order: g.placed}
	g.placed++
	return p
}

// PlaceGates walks the critical path and, at spaced intervals, branches off it to
// drop a block of an unused colour, then may close the next path tile with a
// gateway whose colour belongs to a block that has no gateway yet.
// Blocks never land on the path; gateways only use colours of earlier blocks.
func PlaceGates(b *world.Board, path []world.Point, cfg config.Config, rng *rand.Rand) (*Gates, error) {
	gates := &Gates{}
	pathLen := len(path)

	// Branches must not wander back onto the path
	known := mapset.New[world.Point]()
	for _, p := range path {
		known.Put(p)
	}

	remaining := entities.Palette(cfg.PaletteSize) // colours with no block yet
	var allowed []world.Colour                      // block colours with no gateway yet

	nodeIndex := float64(pathLen) * cfg.BlocksStartProportion
	for nodeIndex+1 < float64(pathLen) && len(remaining) > 0 {
		i := int(math.RoundToEven(nodeIndex))
		if i+1 >= pathLen {
			break
		}
		current := path[i]
		next := path[i+1]

		branchEnd := Branch(b, current, &known, cfg.BranchStopThreshold, rng)
		if branchEnd != current {
			colour := takeColour(&remaining, rng)
			allowed = append(allowed, colour)

			block := gates.record(branchEnd, world.Block, colour)
			if err := b.Place(branchEnd, block.Tile()); err != nil {
				return nil, fmt.Errorf("block %d: %w", len(gates.Blocks), err)
			}
			gates.Blocks = append(gates.Blocks, block)

			if rng.Float64() > cfg.GatewaySkipThreshold && b.IsFree(next) {
				colour := takeColour(&allowed, rng)
				gateway := gates.record(next, world.Gateway, colour)
				if err := b.Place(next, gateway.Tile()); err != nil {
					return nil, fmt.Errorf("gateway %d: %w", len(gates.Gateways), err)
				}
				gates.Gateways = append(gates.Gateways, gateway)
			}
		}

		nodeIndex += float64(pathLen) * cfg.BlocksDistanceProportion
		nodeIndex += rng.Float64() * cfg.GatewayJitter
	}

	return gates, nil
}

// takeColour removes and returns a uniformly chosen colour, keeping the rest in order
func takeColour(colours *[]world.Colour, rng *rand.Rand) world.Colour {
	i := rng.Intn(len(*colours))
	c := (*colours)[i]
	*colours = append((*colours)[:i], (*colours)[i+1:]...)
	return c
}
