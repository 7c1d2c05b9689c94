// Package levelgen provides level generation utilities for placing entities.
package levelgen

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"fortress/pkg/engine/world"
)

// Branch walks outwards from start over passable tiles not yet in known and
// returns the last tile it expanded. Every tile it discovers is added to known,
// so later branches and the critical path are never revisited.
// After each expansion the walk stops with probability stop.
// A result equal to start means no branch was found.
func Branch(b *world.Board, start world.Point, known *mapset.Set[world.Point], stop float64, rng *rand.Rand) world.Point {
	current := start
	queue := []world.Point{start}

	for len(queue) > 0 {
		current = queue[0]
		queue = queue[1:]

		for _, n := range b.PassableNeighbours(current) {
			if known.Has(n) {
				continue
			}
			known.Put(n)
			queue = append(queue, n)
		}

		if rng.Float64() < stop {
			break
		}
	}

	return current
}
