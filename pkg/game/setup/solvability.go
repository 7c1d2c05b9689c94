package setup

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"fortress/pkg/engine/world"
	"fortress/pkg/game/state"
)

// ErrUnsolvable is returned when a generated maze breaks one of its invariants
var ErrUnsolvable = errors.New("maze is not solvable")

// Validate checks a populated maze:
//   - the board has a valid start and exit
//   - the critical path is contiguous, starts at the start, ends beside the exit,
//     and crosses no walls, blocks or exit (gateways are the only allowed obstacle)
//   - every gateway's colour belongs to a block placed before it
//   - no two entities share a tile, and no entity sits on a wall
//   - every non-wall tile is connected to the start once gates are opened
func Validate(m *state.Maze) error {
	board := m.Board()
	if err := board.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsolvable, err)
	}

	if err := validatePath(m); err != nil {
		return err
	}
	if err := validateGateColours(m); err != nil {
		return err
	}
	if err := validateOccupancy(m); err != nil {
		return err
	}
	return validateConnectivity(m)
}

func validatePath(m *state.Maze) error {
	path := m.Path()
	if len(path) == 0 {
		return fmt.Errorf("%w: empty critical path", ErrUnsolvable)
	}
	if path[0] != m.Start() {
		return fmt.Errorf("%w: path starts at %s, not the start %s", ErrUnsolvable, path[0], m.Start())
	}
	if last := path[len(path)-1]; world.ManhattanDistance(last, m.Exit()) != 1 {
		return fmt.Errorf("%w: path ends at %s, not beside the exit %s", ErrUnsolvable, last, m.Exit())
	}
	if !world.IsContiguous(path) {
		return fmt.Errorf("%w: critical path has a gap", ErrUnsolvable)
	}
	for _, p := range path {
		if tile := m.Tile(p); tile.IsBlocking() && tile.Kind != world.Gateway {
			return fmt.Errorf("%w: critical path crosses %s at %s", ErrUnsolvable, tile.Kind, p)
		}
	}
	return nil
}

func validateGateColours(m *state.Maze) error {
	blockOrder := make(map[world.Colour]int)
	for _, b := range m.Blocks() {
		if _, dup := blockOrder[b.Colour]; dup {
			return fmt.Errorf("%w: two blocks share colour %d", ErrUnsolvable, b.Colour)
		}
		blockOrder[b.Colour] = b.Order
	}
	for _, g := range m.Gateways() {
		order, ok := blockOrder[g.Colour]
		if !ok || order > g.Order {
			return fmt.Errorf("%w: gateway at %s has no earlier block of colour %d", ErrUnsolvable, g.Pos, g.Colour)
		}
	}
	return nil
}

func validateOccupancy(m *state.Maze) error {
	occupied := mapset.New[world.Point]()
	claim := func(p world.Point, what string) error {
		if occupied.Has(p) {
			return fmt.Errorf("%w: %s at %s overlaps another entity", ErrUnsolvable, what, p)
		}
		occupied.Put(p)
		return nil
	}

	for _, w := range m.Walls() {
		if err := claim(w, "wall"); err != nil {
			return err
		}
	}
	if err := claim(m.Exit(), "exit"); err != nil {
		return err
	}
	for _, e := range m.Entities() {
		if err := claim(e.Pos, e.Kind.String()); err != nil {
			return err
		}
		if m.Tile(e.Pos) != e.Tile() {
			return fmt.Errorf("%w: %s is not on the board", ErrUnsolvable, e)
		}
	}
	return nil
}

// validateConnectivity opens every gateway and block and checks that the start reaches every non-wall tile
func validateConnectivity(m *state.Maze) error {
	opened := m.Board().Clone()
	for _, e := range m.Entities() {
		if e.Kind.IsColoured() {
			opened.Clear(e.Pos)
		}
	}

	reachable := world.GetReachablePoints(opened, m.Start())
	var stranded []world.Point
	opened.ForEachTile(func(p world.Point, t world.Tile) {
		if !t.IsBlocking() && !reachable.Has(p) {
			stranded = append(stranded, p)
		}
	})
	if len(stranded) > 0 {
		return fmt.Errorf("%w: %d tiles unreachable from start, first at %s", ErrUnsolvable, len(stranded), stranded[0])
	}
	return nil
}
