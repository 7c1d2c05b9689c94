package tui

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"fortress/pkg/engine/world"
	"fortress/pkg/game/entities"
	"fortress/pkg/game/renderer"
	"fortress/pkg/game/state"
)

// IconPath marks free tiles on the critical path when the overlay is on
const IconPath = '*'

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	// ShowPath overlays the critical path on free tiles
	ShowPath bool

	colorWall       color.Style
	colorFloor      color.Style
	colorExit       color.Style
	colorPath       color.Style
	colorKey        color.Style
	colorCheckpoint color.Style
	colorEnemy      color.Style
	colorSubtle     color.Style
	colorHeading    color.Style

	palette []color.Style // Indexed by world.Colour
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgWhite}
	t.colorFloor = color.Style{color.FgDarkGray}
	t.colorExit = color.Style{color.FgGreen, color.OpBold}
	t.colorPath = color.Style{color.FgCyan}
	t.colorKey = color.Style{color.FgYellow, color.OpBold}
	t.colorCheckpoint = color.Style{color.FgLightBlue}
	t.colorEnemy = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorHeading = color.Style{color.FgMagenta, color.OpBold}

	// Same order as the entities palette
	t.palette = []color.Style{
		{color.FgRed, color.OpBold},
		{color.FgLightRed},
		{color.FgYellow},
		{color.FgGreen},
		{color.FgBlue, color.OpBold},
		{color.FgMagenta},
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StylePath:
		return t.colorPath.Sprint(text)
	case renderer.StyleKey:
		return t.colorKey.Sprint(text)
	case renderer.StyleCheckpoint:
		return t.colorCheckpoint.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	default:
		return text
	}
}

// Render draws the board one glyph per tile, followed by the legend
func (t *TUIRenderer) Render(m *state.Maze) string {
	var onPath map[world.Point]bool
	if t.ShowPath {
		onPath = make(map[world.Point]bool, len(m.Path()))
		for _, p := range m.Path() {
			onPath[p] = true
		}
	}

	board := m.Board()
	var sb strings.Builder
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			p := world.Pt(x, y)
			sb.WriteString(t.renderTile(board.Tile(p), onPath[p]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	sb.WriteString(t.Legend(m))
	return sb.String()
}

// renderTile returns the styled glyph for a tile
func (t *TUIRenderer) renderTile(tile world.Tile, onPath bool) string {
	glyph := string(entities.Icon(tile.Kind))
	switch tile.Kind {
	case world.Empty:
		if onPath {
			return t.colorPath.Sprint(string(IconPath))
		}
		return t.colorFloor.Sprint(glyph)
	case world.Wall:
		return t.colorWall.Sprint(glyph)
	case world.Block, world.Gateway:
		return t.colourStyle(tile.Colour).Sprint(glyph)
	case world.Key:
		return t.colorKey.Sprint(glyph)
	case world.Checkpoint:
		return t.colorCheckpoint.Sprint(glyph)
	case world.Enemy:
		return t.colorEnemy.Sprint(glyph)
	case world.Exit:
		return t.colorExit.Sprint(glyph)
	default:
		return glyph
	}
}

// colourStyle returns the palette style for c, plain if c is outside the palette
func (t *TUIRenderer) colourStyle(c world.Colour) color.Style {
	if c < 0 || int(c) >= len(t.palette) {
		return color.Style{}
	}
	return t.palette[c]
}

// Legend lists each glyph with its translated name, then the gate colours in use
func (t *TUIRenderer) Legend(m *state.Maze) string {
	var sb strings.Builder
	sb.WriteString(t.colorHeading.Sprint(gotext.Get("LEGEND")))
	sb.WriteByte('\n')
	for _, kind := range world.AllKinds() {
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			t.renderTile(world.NewTile(kind), false), entities.KindName(kind)))
	}
	if t.ShowPath {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", t.colorPath.Sprint(string(IconPath)), gotext.Get("LEGEND_PATH")))
	}

	seen := make(map[world.Colour]bool)
	for _, b := range m.Blocks() {
		if seen[b.Colour] {
			continue
		}
		seen[b.Colour] = true
		sb.WriteString(fmt.Sprintf("  %s  %s\n", t.colourStyle(b.Colour).Sprint("■"), entities.ColourName(b.Colour)))
	}
	return sb.String()
}
