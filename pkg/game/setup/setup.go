// Package setup builds a complete maze level from a seed and configuration.
package setup

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"fortress/pkg/engine/world"
	"fortress/pkg/game/config"
	"fortress/pkg/game/generator"
	"fortress/pkg/game/levelgen"
	"fortress/pkg/game/state"
)

// NewMaze generates a cols x rows maze and populates it.
// A single random source seeded with seed feeds every stage in a fixed order
// (layout, path, gates, keys, checkpoints, enemies), so equal inputs always
// produce equal mazes.
func NewMaze(cols, rows int, seed int64, cfg config.Config) (*state.Maze, error) {
	if err := config.ValidateDimensions(cols, rows); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))

	layout, err := generator.DefaultGenerator.Generate(cols, rows, rng)
	if err != nil {
		return nil, fmt.Errorf("generate layout: %w", err)
	}
	board, walls := generator.Materialize(layout)

	path, err := world.ShortestPath(board, board.StartPoint(), generator.PathGoal(board))
	if err != nil {
		// A perfect maze connects every cell, so this is a generator bug.
		return nil, fmt.Errorf("critical path: %w", err)
	}

	m := state.NewMaze(seed, layout, board, walls, path)
	if err := Populate(m, cfg, rng); err != nil {
		return nil, err
	}

	if err := Validate(m); err != nil {
		return nil, err
	}

	log.Printf("[MAZE] [INFO] level %s: %dx%d cells, seed %d, path %d, %d blocks, %d gateways",
		m.ID(), cols, rows, seed, len(path), len(m.Blocks()), len(m.Gateways()))
	return m, nil
}

// Populate places gates along the critical path, then scatters keys,
// checkpoints and enemies over the remaining free tiles. The start tile is kept clear.
func Populate(m *state.Maze, cfg config.Config, rng *rand.Rand) error {
	board := m.Board()

	gates, err := levelgen.PlaceGates(board, m.Path(), cfg, rng)
	if err != nil {
		return fmt.Errorf("place gates: %w", err)
	}
	if err := m.Attach(gates.Blocks...); err != nil {
		return err
	}
	if err := m.Attach(gates.Gateways...); err != nil {
		return err
	}

	avoid := mapset.New[world.Point]()
	avoid.Put(board.StartPoint())

	order := gates.Count()
	scatters := []struct {
		kind  world.Kind
		count int
	}{
		{world.Key, cfg.KeyCount},
		{world.Checkpoint, cfg.CheckpointCount},
		{world.Enemy, cfg.EnemyCount},
	}
	for _, s := range scatters {
		placed, err := levelgen.Scatter(board, s.kind, s.count, &avoid, order, cfg.MaxPlacementAttempts, rng)
		if err != nil {
			return fmt.Errorf("scatter %s: %w", s.kind, err)
		}
		if err := m.Attach(placed...); err != nil {
			return err
		}
		order += len(placed)
	}
	return nil
}
