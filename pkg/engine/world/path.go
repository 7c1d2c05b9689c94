package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ErrNoPath is returned when the goal cannot be reached from the start
var ErrNoPath = errors.New("no path between points")

// ShortestPath finds a shortest route from start to goal using breadth-first search.
// Blocking tiles are impassable. Neighbours are explored in SearchOrder, so the
// result is reproducible for a given board. The returned path includes both ends.
func ShortestPath(b *Board, start, goal Point) ([]Point, error) {
	if start == goal {
		return []Point{start}, nil
	}

	known := mapset.New[Point]()
	known.Put(start)
	cameFrom := make(map[Point]Point)
	queue := []Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			break
		}

		for _, n := range b.PassableNeighbours(current) {
			if known.Has(n) {
				continue
			}
			known.Put(n)
			cameFrom[n] = current
			queue = append(queue, n)
		}
	}

	if !known.Has(goal) {
		return nil, fmt.Errorf("from %s to %s: %w", start, goal, ErrNoPath)
	}

	// Walk predecessors back from the goal
	var path []Point
	for current := goal; current != start; current = cameFrom[current] {
		path = append(path, current)
	}
	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// GetReachablePoints returns all passable points reachable from start
func GetReachablePoints(b *Board, start Point) *mapset.Set[Point] {
	return GetReachablePointsExcluding(b, start, nil)
}

// GetReachablePointsExcluding returns all passable points reachable from start without
// stepping on any point in exclude. Pass nil for no exclusion.
func GetReachablePointsExcluding(b *Board, start Point, exclude *mapset.Set[Point]) *mapset.Set[Point] {
	reachable := mapset.New[Point]()
	queue := []Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if !b.IsPassable(current) || reachable.Has(current) {
			continue
		}
		if exclude != nil && exclude.Has(current) {
			continue
		}

		reachable.Put(current)

		for _, n := range b.PassableNeighbours(current) {
			if !reachable.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return &reachable
}

// IsContiguous returns true if every consecutive pair of points is orthogonally adjacent
func IsContiguous(path []Point) bool {
	for i := 1; i < len(path); i++ {
		if ManhattanDistance(path[i-1], path[i]) != 1 {
			return false
		}
	}
	return true
}
