package generator

// Orientation says which wall of a cell an edge candidate refers to
type Orientation int

const (
	Below Orientation = iota // Wall between (x, y) and (x, y+1)
	Right                    // Wall between (x, y) and (x+1, y)
)

// String returns the string representation of an orientation
func (o Orientation) String() string {
	if o == Right {
		return "Right"
	}
	return "Below"
}

// CellNode is one logical maze cell. Zone is the connected component the cell
// belongs to; after generation every cell carries the same zone.
type CellNode struct {
	WallBelow bool
	WallRight bool
	Zone      int
}

// WallEdge identifies a removable wall between two adjacent cells
type WallEdge struct {
	X, Y        int
	Orientation Orientation
}

// Neighbour returns the coordinates of the cell on the other side of the wall
func (e WallEdge) Neighbour() (x, y int) {
	if e.Orientation == Right {
		return e.X + 1, e.Y
	}
	return e.X, e.Y + 1
}

// Layout is the cell graph of a maze, indexed [y][x]
type Layout struct {
	Cols  int
	Rows  int
	Cells [][]CellNode
}

// newLayout creates a layout with every wall standing and every cell in its own zone
func newLayout(cols, rows int) *Layout {
	l := &Layout{Cols: cols, Rows: rows, Cells: make([][]CellNode, rows)}
	for y := range l.Cells {
		l.Cells[y] = make([]CellNode, cols)
		for x := range l.Cells[y] {
			l.Cells[y][x] = CellNode{WallBelow: true, WallRight: true, Zone: l.id(x, y)}
		}
	}
	return l
}

// id returns the dense integer id of a cell
func (l *Layout) id(x, y int) int {
	return x + y*l.Cols
}

// Cell returns the node at (x, y)
func (l *Layout) Cell(x, y int) CellNode {
	return l.Cells[y][x]
}

// CandidateEdges lists every internal wall: all below-walls row by row, then all right-walls.
// The bottom row has no below-walls and the last column has no right-walls.
func (l *Layout) CandidateEdges() []WallEdge {
	edges := make([]WallEdge, 0, l.CandidateCount())
	for y := 0; y < l.Rows-1; y++ {
		for x := 0; x < l.Cols; x++ {
			edges = append(edges, WallEdge{X: x, Y: y, Orientation: Below})
		}
	}
	for y := 0; y < l.Rows; y++ {
		for x := 0; x < l.Cols-1; x++ {
			edges = append(edges, WallEdge{X: x, Y: y, Orientation: Right})
		}
	}
	return edges
}

// CandidateCount is the number of internal walls: 2*W*H - W - H
func (l *Layout) CandidateCount() int {
	return 2*l.Cols*l.Rows - l.Cols - l.Rows
}

// HasWall reports whether the wall behind e is still standing
func (l *Layout) HasWall(e WallEdge) bool {
	cell := l.Cells[e.Y][e.X]
	if e.Orientation == Right {
		return cell.WallRight
	}
	return cell.WallBelow
}

// removeWall knocks down the wall behind e
func (l *Layout) removeWall(e WallEdge) {
	if e.Orientation == Right {
		l.Cells[e.Y][e.X].WallRight = false
		return
	}
	l.Cells[e.Y][e.X].WallBelow = false
}

// RemovedWalls counts the internal walls that were knocked down
func (l *Layout) RemovedWalls() int {
	n := 0
	for _, e := range l.CandidateEdges() {
		if !l.HasWall(e) {
			n++
		}
	}
	return n
}

// Zones returns the number of distinct zones
func (l *Layout) Zones() int {
	zones := make(map[int]struct{})
	for _, row := range l.Cells {
		for _, cell := range row {
			zones[cell.Zone] = struct{}{}
		}
	}
	return len(zones)
}
