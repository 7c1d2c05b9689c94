package generator

// disjointSet is a union-find over dense integer ids with path compression and union by rank
type disjointSet struct {
	parent []int
	rank   []int
}

// newDisjointSet returns n singleton sets 0..n-1
func newDisjointSet(n int) *disjointSet {
	s := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range s.parent {
		s.parent[i] = i
	}
	return s
}

// find returns the representative of id's set. May adjust parent pointers.
func (s *disjointSet) find(id int) int {
	root := id
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for s.parent[id] != root {
		next := s.parent[id]
		s.parent[id] = root
		id = next
	}
	return root
}

// union merges the sets of a and b. Returns false if they were already merged.
func (s *disjointSet) union(a, b int) bool {
	x, y := s.find(a), s.find(b)
	if x == y {
		return false
	}
	switch {
	case s.rank[x] > s.rank[y]:
		s.parent[y] = x
	case s.rank[x] < s.rank[y]:
		s.parent[x] = y
	default:
		s.parent[y] = x
		s.rank[x]++
	}
	return true
}
