package world

import (
	"errors"
	"testing"
)

func TestNewBoard_AllEmpty(t *testing.T) {
	b := NewBoard(3, 2)
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", b.Width(), b.Height())
	}
	b.ForEachTile(func(p Point, tile Tile) {
		if !tile.IsEmpty() {
			t.Errorf("tile %s = %s, want Empty", p, tile.Kind)
		}
		if tile.Colour != NoColour {
			t.Errorf("tile %s colour = %d, want NoColour", p, tile.Colour)
		}
	})
}

func TestNewBoard_PanicsOnBadDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBoard(0, 3) did not panic")
		}
	}()
	NewBoard(0, 3)
}

func TestBoard_TileOutOfBoundsIsWall(t *testing.T) {
	b := NewBoard(2, 2)
	for _, p := range []Point{Pt(-1, 0), Pt(0, -1), Pt(2, 0), Pt(0, 2)} {
		if got := b.Tile(p).Kind; got != Wall {
			t.Errorf("Tile(%s) = %s, want Wall", p, got)
		}
	}
}

func TestBoard_PlaceNeverOverwrites(t *testing.T) {
	b := NewBoard(3, 3)
	p := Pt(1, 1)
	if err := b.Place(p, NewTile(Key)); err != nil {
		t.Fatalf("Place on empty tile: %v", err)
	}
	err := b.Place(p, NewTile(Enemy))
	if !errors.Is(err, ErrOccupied) {
		t.Errorf("Place on occupied tile err = %v, want ErrOccupied", err)
	}
	if got := b.Tile(p).Kind; got != Key {
		t.Errorf("tile after failed Place = %s, want Key", got)
	}
	if err := b.Place(Pt(5, 5), NewTile(Key)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Place out of bounds err = %v, want ErrOutOfBounds", err)
	}
}

func TestBoard_PerimeterAndPlayable(t *testing.T) {
	b := NewBoard(5, 4)
	cases := []struct {
		p         Point
		perimeter bool
	}{
		{Pt(0, 0), true},
		{Pt(4, 3), true},
		{Pt(4, 1), true},
		{Pt(1, 1), false},
		{Pt(3, 2), false},
	}
	for _, tc := range cases {
		if got := b.IsOnPerimeter(tc.p); got != tc.perimeter {
			t.Errorf("IsOnPerimeter(%s) = %v, want %v", tc.p, got, tc.perimeter)
		}
		if got := b.IsPlayablePosition(tc.p); got == tc.perimeter {
			t.Errorf("IsPlayablePosition(%s) = %v, want %v", tc.p, got, !tc.perimeter)
		}
	}
	if b.IsOnPerimeter(Pt(9, 9)) {
		t.Error("IsOnPerimeter(9,9) = true for a point outside the board")
	}
}

func TestBoard_SetExitAtPlacesExitTile(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(Pt(2, 1), NewTile(Wall))
	if !b.SetExitAt(Pt(2, 1)) {
		t.Fatal("SetExitAt returned false")
	}
	if b.ExitPoint() != Pt(2, 1) {
		t.Errorf("ExitPoint = %s, want 2,1", b.ExitPoint())
	}
	if got := b.Tile(Pt(2, 1)).Kind; got != Exit {
		t.Errorf("exit tile = %s, want Exit", got)
	}
	if b.SetExitAt(Pt(3, 1)) {
		t.Error("SetExitAt out of bounds returned true")
	}
}

func TestBoard_FreePointsRowMajor(t *testing.T) {
	b := NewBoard(2, 2)
	b.Set(Pt(1, 0), NewTile(Wall))
	got := b.FreePoints()
	want := []Point{Pt(0, 0), Pt(0, 1), Pt(1, 1)}
	if len(got) != len(want) {
		t.Fatalf("FreePoints = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FreePoints[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if n := b.Count(Wall); n != 1 {
		t.Errorf("Count(Wall) = %d, want 1", n)
	}
}

func TestBoard_PassableNeighboursSearchOrder(t *testing.T) {
	b := NewBoard(3, 3)
	got := b.PassableNeighbours(Pt(1, 1))
	want := []Point{Pt(1, 0), Pt(1, 2), Pt(2, 1), Pt(0, 1)}
	if len(got) != len(want) {
		t.Fatalf("PassableNeighbours = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbour %d = %s, want %s", i, got[i], want[i])
		}
	}

	b.Set(Pt(1, 0), NewColouredTile(Gateway, 2))
	b.Set(Pt(0, 1), NewTile(Checkpoint))
	got = b.PassableNeighbours(Pt(1, 1))
	if len(got) != 3 {
		t.Errorf("with gateway above, neighbours = %v, want 3 entries", got)
	}
}

func TestBoard_CloneIsDeep(t *testing.T) {
	b := NewBoard(2, 2)
	b.SetStartAt(Pt(0, 0))
	c := b.Clone()
	c.Set(Pt(1, 1), NewTile(Enemy))
	if b.Tile(Pt(1, 1)).Kind != Empty {
		t.Error("changing the clone changed the original")
	}
	if c.StartPoint() != b.StartPoint() {
		t.Errorf("clone start = %s, want %s", c.StartPoint(), b.StartPoint())
	}
}

func TestTile_IsBlocking(t *testing.T) {
	blocking := map[Kind]bool{
		Empty: false, Wall: true, Gateway: true, Block: true,
		Key: false, Checkpoint: false, Enemy: false, Exit: true,
	}
	for _, k := range AllKinds() {
		if got := NewTile(k).IsBlocking(); got != blocking[k] {
			t.Errorf("%s.IsBlocking() = %v, want %v", k, got, blocking[k])
		}
	}
}

func TestDirection_OppositeAndDelta(t *testing.T) {
	for _, d := range SearchOrder() {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%s and its opposite %s do not cancel", d, d.Opposite())
		}
	}
	if Direction(9).IsValid() {
		t.Error("Direction(9).IsValid() = true")
	}
}
