package renderer

import (
	"fortress/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleExit
	StylePath
	StyleKey
	StyleCheckpoint
	StyleEnemy
	StyleSubtle
	StyleHeading
)

// Renderer defines the interface for maze rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, glyphs, etc.)
	Init()

	// Render draws the whole maze and returns it ready to print
	Render(m *state.Maze) string

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Render draws m with the current renderer, or returns "" if none is set
func Render(m *state.Maze) string {
	if Current != nil {
		return Current.Render(m)
	}
	return ""
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}
