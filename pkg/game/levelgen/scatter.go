package levelgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"fortress/pkg/engine/world"
	"fortress/pkg/game/entities"
)

// ErrCapacity is returned when the board has fewer free tiles than entities to place
var ErrCapacity = errors.New("not enough free tiles")

// Scatter puts count entities of kind on uniformly random empty tiles, skipping
// anything in avoid. Random draws are bounded by maxAttempts per entity; once
// exhausted, the entity goes to a random tile from the remaining free ones.
// order is the sequence number given to the first placement.
func Scatter(b *world.Board, kind world.Kind, count int, avoid *mapset.Set[world.Point], order int, maxAttempts int, rng *rand.Rand) ([]entities.Placement, error) {
	if count <= 0 {
		return nil, nil
	}
	if avoid == nil {
		none := mapset.New[world.Point]()
		avoid = &none
	}
	if free := len(freePoints(b, avoid)); free < count {
		return nil, fmt.Errorf("placing %d %s entities on %d free tiles: %w", count, kind, free, ErrCapacity)
	}

	placed := make([]entities.Placement, 0, count)
	for n := 0; n < count; n++ {
		pos, ok := randomFreePoint(b, avoid, maxAttempts, rng)
		if !ok {
			free := freePoints(b, avoid)
			if len(free) == 0 {
				return placed, fmt.Errorf("placing %s %d of %d: %w", kind, n+1, count, ErrCapacity)
			}
			pos = free[rng.Intn(len(free))]
		}

		p := entities.Placement{Pos: pos, Kind: kind, Colour: world.NoColour, Order: order + n}
		if err := b.Place(pos, p.Tile()); err != nil {
			return placed, err
		}
		placed = append(placed, p)
	}
	return placed, nil
}

// RandomBoardPoint returns a uniformly random coordinate on the board
func RandomBoardPoint(b *world.Board, rng *rand.Rand) world.Point {
	return world.Pt(rng.Intn(b.Width()), rng.Intn(b.Height()))
}

// randomFreePoint draws up to maxAttempts random coordinates and returns the first empty one
func randomFreePoint(b *world.Board, avoid *mapset.Set[world.Point], maxAttempts int, rng *rand.Rand) (world.Point, bool) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		p := RandomBoardPoint(b, rng)
		if b.IsFree(p) && !avoid.Has(p) {
			return p, true
		}
	}
	return world.Point{}, false
}

// freePoints returns the empty tiles not in avoid, in row-major order
func freePoints(b *world.Board, avoid *mapset.Set[world.Point]) []world.Point {
	var free []world.Point
	for _, p := range b.FreePoints() {
		if !avoid.Has(p) {
			free = append(free, p)
		}
	}
	return free
}
