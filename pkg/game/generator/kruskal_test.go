// Package generator tests Kruskal layout generation and board materialisation:
// spanning-tree shape, determinism per seed, and wall placement on the board.
package generator

import (
	"errors"
	"math/rand"
	"testing"

	"fortress/pkg/engine/world"
	"fortress/pkg/game/config"
)

func generate(t *testing.T, cols, rows int, seed int64) *Layout {
	t.Helper()
	layout, err := DefaultGenerator.Generate(cols, rows, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Generate(%d, %d): %v", cols, rows, err)
	}
	return layout
}

func TestKruskalGenerate_SpanningTree(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {4, 4}, {7, 3}, {12, 9}}
	for _, size := range sizes {
		for seed := int64(0); seed < 10; seed++ {
			layout := generate(t, size[0], size[1], seed)
			cells := size[0] * size[1]
			if got := layout.RemovedWalls(); got != cells-1 {
				t.Errorf("%dx%d seed %d: removed %d walls, want %d", size[0], size[1], seed, got, cells-1)
			}
			if got := layout.Zones(); got != 1 {
				t.Errorf("%dx%d seed %d: %d zones, want 1", size[0], size[1], seed, got)
			}
		}
	}
}

func TestKruskalGenerate_CandidateCount(t *testing.T) {
	layout := generate(t, 4, 3, 1)
	if got, want := len(layout.CandidateEdges()), 2*4*3-4-3; got != want {
		t.Errorf("candidates = %d, want %d", got, want)
	}
	if layout.CandidateCount() != len(layout.CandidateEdges()) {
		t.Error("CandidateCount disagrees with CandidateEdges")
	}
}

func TestKruskalGenerate_DegenerateGrids(t *testing.T) {
	single := generate(t, 1, 1, 0)
	if n := len(single.CandidateEdges()); n != 0 {
		t.Errorf("1x1 candidates = %d, want 0", n)
	}

	row := generate(t, 5, 1, 3)
	for _, e := range row.CandidateEdges() {
		if e.Orientation != Right {
			t.Errorf("5x1 has a %s edge at %d,%d", e.Orientation, e.X, e.Y)
		}
		if row.HasWall(e) {
			t.Errorf("5x1 kept wall at %d,%d; a single row must be fully open", e.X, e.Y)
		}
	}

	column := generate(t, 1, 4, 3)
	for _, e := range column.CandidateEdges() {
		if e.Orientation != Below {
			t.Errorf("1x4 has a %s edge", e.Orientation)
		}
	}
}

func TestKruskalGenerate_Deterministic(t *testing.T) {
	a := generate(t, 9, 6, 42)
	b := generate(t, 9, 6, 42)
	for y := range a.Cells {
		for x := range a.Cells[y] {
			if a.Cells[y][x] != b.Cells[y][x] {
				t.Fatalf("cell %d,%d differs between runs: %+v vs %+v", x, y, a.Cells[y][x], b.Cells[y][x])
			}
		}
	}
}

func TestKruskalGenerate_SeedsDiffer(t *testing.T) {
	a := generate(t, 10, 10, 1)
	b := generate(t, 10, 10, 2)
	same := true
	for y := range a.Cells {
		for x := range a.Cells[y] {
			if a.Cells[y][x].WallBelow != b.Cells[y][x].WallBelow || a.Cells[y][x].WallRight != b.Cells[y][x].WallRight {
				same = false
			}
		}
	}
	if same {
		t.Error("seeds 1 and 2 produced identical 10x10 layouts")
	}
}

func TestKruskalGenerate_InvalidDimensions(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, -1}} {
		_, err := DefaultGenerator.Generate(size[0], size[1], rand.New(rand.NewSource(0)))
		if !errors.Is(err, config.ErrInvalidConfig) {
			t.Errorf("Generate(%d, %d) err = %v, want ErrInvalidConfig", size[0], size[1], err)
		}
	}
}

func TestDisjointSet(t *testing.T) {
	s := newDisjointSet(5)
	if !s.union(0, 1) || !s.union(3, 4) {
		t.Fatal("union of distinct sets returned false")
	}
	if s.union(1, 0) {
		t.Error("union of merged sets returned true")
	}
	if s.find(0) != s.find(1) || s.find(3) != s.find(4) {
		t.Error("merged ids have different representatives")
	}
	if s.find(0) == s.find(3) || s.find(2) != 2 {
		t.Error("unmerged ids share a representative")
	}
	s.union(1, 4)
	if s.find(0) != s.find(3) {
		t.Error("transitive merge failed")
	}
}

func TestMaterialize_FourByFourSeedZero(t *testing.T) {
	layout := generate(t, 4, 4, 0)
	if layout.RemovedWalls() != 15 || layout.Zones() != 1 {
		t.Fatalf("4x4 seed 0: removed %d walls in %d zones, want 15 in 1", layout.RemovedWalls(), layout.Zones())
	}
	board, walls := Materialize(layout)

	if board.Width() != 9 || board.Height() != 9 {
		t.Errorf("board = %dx%d, want 9x9", board.Width(), board.Height())
	}
	if board.StartPoint() != world.Pt(1, 1) {
		t.Errorf("start = %s, want 1,1", board.StartPoint())
	}
	if board.ExitPoint() != world.Pt(8, 7) {
		t.Errorf("exit = %s, want 8,7", board.ExitPoint())
	}
	if got := board.Tile(board.ExitPoint()).Kind; got != world.Exit {
		t.Errorf("exit tile = %s, want Exit", got)
	}
	if PathGoal(board) != world.Pt(7, 7) {
		t.Errorf("PathGoal = %s, want 7,7", PathGoal(board))
	}
	if got := board.Count(world.Wall); got != len(walls) {
		t.Errorf("board holds %d walls, wall list has %d", got, len(walls))
	}
}

func TestMaterialize_WallInvariants(t *testing.T) {
	layout := generate(t, 6, 4, 11)
	board, _ := Materialize(layout)
	exit := board.ExitPoint()

	board.ForEachTile(func(p world.Point, tile world.Tile) {
		switch {
		case p == exit:
			if tile.Kind != world.Exit {
				t.Errorf("exit %s = %s", p, tile.Kind)
			}
		case board.IsOnPerimeter(p), p.X%2 == 0 && p.Y%2 == 0:
			if tile.Kind != world.Wall {
				t.Errorf("boundary/corner %s = %s, want Wall", p, tile.Kind)
			}
		case p.X%2 == 1 && p.Y%2 == 1:
			if tile.Kind != world.Empty {
				t.Errorf("cell centre %s = %s, want Empty", p, tile.Kind)
			}
		case p.X%2 == 1:
			// Between (x, y) and (x, y+1)
			wall := layout.Cell((p.X-1)/2, (p.Y-2)/2).WallBelow
			if (tile.Kind == world.Wall) != wall {
				t.Errorf("below-connector %s = %s, layout wall = %v", p, tile.Kind, wall)
			}
		default:
			wall := layout.Cell((p.X-2)/2, (p.Y-1)/2).WallRight
			if (tile.Kind == world.Wall) != wall {
				t.Errorf("right-connector %s = %s, layout wall = %v", p, tile.Kind, wall)
			}
		}
	})
}

func TestMaterialize_AllCellsConnected(t *testing.T) {
	layout := generate(t, 8, 8, 5)
	board, _ := Materialize(layout)
	reachable := world.GetReachablePoints(board, board.StartPoint())
	free := len(board.FreePoints())
	if reachable.Size() != free {
		t.Errorf("reachable %d of %d free tiles", reachable.Size(), free)
	}
}

func TestMaterialize_SingleCell(t *testing.T) {
	board, walls := Materialize(generate(t, 1, 1, 0))
	if board.Width() != 3 || board.Height() != 3 {
		t.Fatalf("board = %dx%d, want 3x3", board.Width(), board.Height())
	}
	if len(walls) != 7 {
		t.Errorf("walls = %d, want 7 (perimeter minus exit)", len(walls))
	}
	if PathGoal(board) != board.StartPoint() {
		t.Errorf("PathGoal = %s, want the start tile", PathGoal(board))
	}
}
