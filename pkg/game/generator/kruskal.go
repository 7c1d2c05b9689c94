package generator

import (
	"math/rand"

	"fortress/pkg/game/config"
)

// KruskalGenerator knocks down walls in random order, skipping any wall whose
// two cells are already connected. The result is a perfect maze.
type KruskalGenerator struct{}

// Name returns the name of this generator
func (g *KruskalGenerator) Name() string {
	return "Kruskal"
}

// Generate builds a cols x rows layout. The same rng state always yields the same layout.
func (g *KruskalGenerator) Generate(cols, rows int, rng *rand.Rand) (*Layout, error) {
	if err := config.ValidateDimensions(cols, rows); err != nil {
		return nil, err
	}

	layout := newLayout(cols, rows)
	zones := newDisjointSet(cols * rows)

	unchecked := layout.CandidateEdges()
	for len(unchecked) > 0 {
		// Sample without replacement
		i := rng.Intn(len(unchecked))
		edge := unchecked[i]
		last := len(unchecked) - 1
		unchecked[i] = unchecked[last]
		unchecked = unchecked[:last]

		nx, ny := edge.Neighbour()
		if zones.union(layout.id(edge.X, edge.Y), layout.id(nx, ny)) {
			layout.removeWall(edge)
		}
	}

	for y := range layout.Cells {
		for x := range layout.Cells[y] {
			layout.Cells[y][x].Zone = zones.find(layout.id(x, y))
		}
	}
	return layout, nil
}
