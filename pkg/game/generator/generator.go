// Package generator builds maze layouts and turns them into tile boards.
package generator

import (
	"math/rand"
)

// LayoutGenerator is an interface for maze layout algorithms
type LayoutGenerator interface {
	Generate(cols, rows int, rng *rand.Rand) (*Layout, error)
	Name() string
}

// Available generators
var (
	Kruskal = &KruskalGenerator{}
)

// DefaultGenerator is the default layout generator
var DefaultGenerator LayoutGenerator = Kruskal
