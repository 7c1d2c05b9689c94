// Package deck defines the fixed level count and how each level's maze grows.
// Level numbers are 1-based; level IDs in the graph are 0-based.
package deck

import (
	"github.com/leonelquinteros/gotext"

	"fortress/pkg/game/config"
)

// TotalLevels is the number of levels in a run
const TotalLevels = 4

// FinalLevelIndex is the ID of the final level (0-based; last level).
const FinalLevelIndex = TotalLevels - 1

// Base grid size of the first level, in cells
const (
	baseCols = 6
	baseRows = 4
)

// enemyCounts is the number of enemies per level, indexed by level ID
var enemyCounts = [TotalLevels]int{4, 5, 7, 8}

// IsFinalLevel returns true if the given level (1-based) is the final level.
func IsFinalLevel(level int) bool {
	return level >= TotalLevels
}

// NextLevel returns the level (1-based) after current, or 0 if current is final.
func NextLevel(current int) int {
	if current <= 0 || current >= TotalLevels {
		return 0
	}
	return current + 1
}

// Descriptor describes one level in the run.
type Descriptor struct {
	ID          int   // 0-based level index
	Cols, Rows  int   // Maze size in cells
	Connections []int // Level IDs reachable from this level
	Depth       int   // 0 = first level
}

// Graph is the level graph: a linear run 0 → 1 → … → FinalLevelIndex.
var Graph []Descriptor

func init() {
	Graph = make([]Descriptor, TotalLevels)
	for i := 0; i < TotalLevels; i++ {
		conn := []int{}
		if i < FinalLevelIndex {
			conn = append(conn, i+1)
		}
		cols, rows := CellSize(i + 1)
		Graph[i] = Descriptor{
			ID:          i,
			Cols:        cols,
			Rows:        rows,
			Connections: conn,
			Depth:       i,
		}
	}
}

// CellSize returns the maze size in cells for the given level (1-based).
// Each level adds two columns and two rows; out-of-range levels clamp.
func CellSize(level int) (cols, rows int) {
	idx := clamp(level)
	return baseCols + 2*idx, baseRows + 2*idx
}

// Tune returns cfg adjusted for the given level (1-based): later levels carry
// more enemies and keys. Everything else is left as configured.
func Tune(cfg config.Config, level int) config.Config {
	idx := clamp(level)
	cfg.EnemyCount = enemyCounts[idx]
	cfg.KeyCount += idx
	return cfg
}

// Name returns the translated label of the given level (1-based).
func Name(level int) string {
	switch clamp(level) {
	case 0:
		return gotext.Get("LEVEL_OUTER_WALLS")
	case 1:
		return gotext.Get("LEVEL_COURTYARD")
	case 2:
		return gotext.Get("LEVEL_KEEP")
	default:
		return gotext.Get("LEVEL_THRONE_ROOM")
	}
}

// clamp maps a 1-based level onto a valid 0-based level ID
func clamp(level int) int {
	switch {
	case level <= 1:
		return 0
	case level >= TotalLevels:
		return FinalLevelIndex
	default:
		return level - 1
	}
}
