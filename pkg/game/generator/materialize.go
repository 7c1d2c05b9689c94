package generator

import (
	"fortress/pkg/engine/world"
)

// BoardSize returns the tile dimensions for a cols x rows layout
func BoardSize(cols, rows int) (width, height int) {
	return 2*cols + 1, 2*rows + 1
}

// Materialize converts a layout into a tile board. Cell (x, y) sits on tile
// (2x+1, 2y+1); even/even tiles and the perimeter are walls, and the tile
// between two cells is a wall only if that wall survived generation.
// The start is the first cell; the exit breaches the right perimeter beside the last cell.
// Wall positions are returned in the order they were placed.
func Materialize(layout *Layout) (*world.Board, []world.Point) {
	width, height := BoardSize(layout.Cols, layout.Rows)
	board := world.NewBoard(width, height)
	exit := world.Pt(width-1, height-2)

	var walls []world.Point
	addWall := func(p world.Point) {
		if p == exit || board.Tile(p).Kind == world.Wall {
			return
		}
		board.Set(p, world.NewTile(world.Wall))
		walls = append(walls, p)
	}

	// Perimeter
	for x := 0; x < width; x++ {
		addWall(world.Pt(x, 0))
		addWall(world.Pt(x, height-1))
	}
	for y := 1; y < height-1; y++ {
		addWall(world.Pt(0, y))
		addWall(world.Pt(width-1, y))
	}

	// Cell corners
	for y := 2; y < height; y += 2 {
		for x := 2; x < width; x += 2 {
			addWall(world.Pt(x, y))
		}
	}

	// Walls below
	for ly := 0; ly < layout.Rows-1; ly++ {
		for lx := 0; lx < layout.Cols; lx++ {
			if layout.Cells[ly][lx].WallBelow {
				addWall(world.Pt(2*lx+1, 2*ly+2))
			}
		}
	}

	// Walls right
	for ly := 0; ly < layout.Rows; ly++ {
		for lx := 0; lx < layout.Cols-1; lx++ {
			if layout.Cells[ly][lx].WallRight {
				addWall(world.Pt(2*lx+2, 2*ly+1))
			}
		}
	}

	board.SetStartAt(world.Pt(1, 1))
	board.SetExitAt(exit)
	return board, walls
}

// PathGoal returns the tile just inside the exit, where the critical path ends
func PathGoal(board *world.Board) world.Point {
	exit := board.ExitPoint()
	return world.Pt(exit.X-1, exit.Y)
}
