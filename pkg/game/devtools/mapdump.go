// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fortress/pkg/engine/world"
	"fortress/pkg/game/entities"
	"fortress/pkg/game/state"
)

// DefaultDumpFilename is used when no dump path is given
const DefaultDumpFilename = "map.txt"

// writeMapGrid writes one symbol per tile, with the start marked '@'.
func writeMapGrid(w io.Writer, m *state.Maze, withPath bool) {
	onPath := make(map[world.Point]bool)
	if withPath {
		for _, p := range m.Path() {
			onPath[p] = true
		}
	}
	b := m.Board()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			p := world.Pt(x, y)
			tile := b.Tile(p)
			switch {
			case p == m.Start():
				fmt.Fprint(w, "@")
			case onPath[p] && tile.IsEmpty():
				fmt.Fprint(w, "*")
			default:
				fmt.Fprintf(w, "%c", entities.Icon(tile.Kind))
			}
		}
		fmt.Fprintln(w)
	}
}

// writePlacements lists every placement of one kind
func writePlacements(w io.Writer, title string, list []entities.Placement) {
	fmt.Fprintf(w, "%s:\n", title)
	if len(list) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, p := range list {
		if p.Kind.IsColoured() {
			fmt.Fprintf(w, "  x: %d y: %d order: %d colour: %q\n", p.Pos.X, p.Pos.Y, p.Order, entities.ColourName(p.Colour))
			continue
		}
		fmt.Fprintf(w, "  x: %d y: %d order: %d\n", p.Pos.X, p.Pos.Y, p.Order)
	}
	fmt.Fprintln(w, "")
}

// WriteDump writes the full debug dump of m to w: metadata, legend,
// plain map, map with the critical path, and the entity lists.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func WriteDump(w io.Writer, m *state.Maze) {
	b := m.Board()

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (maze layout, critical path, entities) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "level_id: %s\n", m.ID())
	fmt.Fprintf(w, "seed: %d\n", m.Seed())
	fmt.Fprintf(w, "cell_cols: %d\n", m.Layout().Cols)
	fmt.Fprintf(w, "cell_rows: %d\n", m.Layout().Rows)
	fmt.Fprintf(w, "board_width: %d\n", b.Width())
	fmt.Fprintf(w, "board_height: %d\n", b.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "start: %s\n", m.Start())
	fmt.Fprintf(w, "exit: %s\n", m.Exit())
	fmt.Fprintf(w, "path_length: %d\n", len(m.Path()))
	fmt.Fprintf(w, "walls: %d\n", len(m.Walls()))
	fmt.Fprintf(w, "blocks: %d\n", len(m.Blocks()))
	fmt.Fprintf(w, "gateways: %d\n", len(m.Gateways()))
	fmt.Fprintf(w, "keys: %d\n", len(m.Keys()))
	fmt.Fprintf(w, "checkpoints: %d\n", len(m.Checkpoints()))
	fmt.Fprintf(w, "enemies: %d\n", len(m.Enemies()))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (tile symbols) ---")
	fmt.Fprintln(w, ". = empty  # = wall  G = gateway  B = block  k = key  c = checkpoint  e = enemy  E = exit  @ = start  * = critical path")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, m, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (critical path; free path tiles = *) ---")
	writeMapGrid(w, m, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Entities (all with x,y and placement order) ---")
	writePlacements(w, "Blocks", m.Blocks())
	writePlacements(w, "Gateways", m.Gateways())
	writePlacements(w, "Keys", m.Keys())
	writePlacements(w, "Checkpoints", m.Checkpoints())
	writePlacements(w, "Enemies", m.Enemies())

	fmt.Fprintln(w, "=== END MAP DUMP ===")
}

// DumpMapToFile writes the debug dump of m to path (DefaultDumpFilename if empty)
// and returns the absolute path written.
func DumpMapToFile(m *state.Maze, path string) (string, error) {
	if m == nil || m.Board() == nil {
		return "", fmt.Errorf("no maze")
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteDump(f, m)

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
