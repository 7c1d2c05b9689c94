// Package state holds the generated maze that the game layer reads from.
package state

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"fortress/pkg/engine/world"
	"fortress/pkg/game/entities"
	"fortress/pkg/game/generator"
)

// Maze is one generated level: its cell layout, tile board, critical path,
// and the entities placed on it. The wall layout never changes after
// construction; entities may be removed by gameplay.
type Maze struct {
	id     uuid.UUID
	seed   int64
	layout *generator.Layout
	board  *world.Board
	path   []world.Point
	walls  []world.Point

	gateways    []entities.Placement
	blocks      []entities.Placement
	keys        []entities.Placement
	checkpoints []entities.Placement
	enemies     []entities.Placement
}

// NewMaze wraps a materialised board. Entities are attached afterwards with Attach.
func NewMaze(seed int64, layout *generator.Layout, board *world.Board, walls, path []world.Point) *Maze {
	return &Maze{
		id:     LevelID(layout.Cols, layout.Rows, seed),
		seed:   seed,
		layout: layout,
		board:  board,
		walls:  walls,
		path:   path,
	}
}

// LevelID derives a stable identifier from the grid size and seed.
// The same inputs always produce the same layout, so they share an id.
func LevelID(cols, rows int, seed int64) uuid.UUID {
	name := fmt.Sprintf("fortress:maze/%dx%d/%d", cols, rows, seed)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name))
}

// Attach records placements that are already on the board, filing each under its kind
func (m *Maze) Attach(placements ...entities.Placement) error {
	for _, p := range placements {
		if tile := m.board.Tile(p.Pos); tile != p.Tile() {
			return fmt.Errorf("attach %s: board holds %s", p, tile.Kind)
		}
		list := m.listFor(p.Kind)
		if list == nil {
			return fmt.Errorf("attach %s: kind is not an entity", p)
		}
		*list = append(*list, p)
	}
	return nil
}

func (m *Maze) listFor(kind world.Kind) *[]entities.Placement {
	switch kind {
	case world.Gateway:
		return &m.gateways
	case world.Block:
		return &m.blocks
	case world.Key:
		return &m.keys
	case world.Checkpoint:
		return &m.checkpoints
	case world.Enemy:
		return &m.enemies
	default:
		return nil
	}
}

// ID returns the level identifier
func (m *Maze) ID() uuid.UUID {
	return m.id
}

// Seed returns the seed the maze was generated from
func (m *Maze) Seed() int64 {
	return m.seed
}

// Layout returns the cell graph
func (m *Maze) Layout() *generator.Layout {
	return m.layout
}

// Board returns the tile board
func (m *Maze) Board() *world.Board {
	return m.board
}

// Tile returns the tile at p
func (m *Maze) Tile(p world.Point) world.Tile {
	return m.board.Tile(p)
}

// Start returns the player's starting tile
func (m *Maze) Start() world.Point {
	return m.board.StartPoint()
}

// Exit returns the exit tile
func (m *Maze) Exit() world.Point {
	return m.board.ExitPoint()
}

// Path returns the critical path from the start to the tile beside the exit
func (m *Maze) Path() []world.Point {
	return m.path
}

// Walls returns every wall position in placement order
func (m *Maze) Walls() []world.Point {
	return m.walls
}

// Gateways returns the gateways still on the board
func (m *Maze) Gateways() []entities.Placement {
	return m.gateways
}

// Blocks returns the blocks still on the board
func (m *Maze) Blocks() []entities.Placement {
	return m.blocks
}

// Keys returns the keys still on the board
func (m *Maze) Keys() []entities.Placement {
	return m.keys
}

// Checkpoints returns the checkpoints still on the board
func (m *Maze) Checkpoints() []entities.Placement {
	return m.checkpoints
}

// Enemies returns the enemies still on the board
func (m *Maze) Enemies() []entities.Placement {
	return m.enemies
}

// Entities returns every placement still on the board, in placement order
func (m *Maze) Entities() []entities.Placement {
	var all []entities.Placement
	for _, list := range [][]entities.Placement{m.gateways, m.blocks, m.keys, m.checkpoints, m.enemies} {
		all = append(all, list...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Order < all[j].Order })
	return all
}

// Remove takes the entity at p off the board, e.g. when the player collects it.
// Walls and the exit are part of the layout and are never removed.
func (m *Maze) Remove(p world.Point) (entities.Placement, bool) {
	list := m.listFor(m.board.Tile(p).Kind)
	if list == nil {
		return entities.Placement{}, false
	}
	for i, e := range *list {
		if e.Pos == p {
			*list = append((*list)[:i], (*list)[i+1:]...)
			m.board.Clear(p)
			return e, true
		}
	}
	return entities.Placement{}, false
}
