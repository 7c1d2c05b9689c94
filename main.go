package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"fortress/pkg/engine/terminal"
	"fortress/pkg/game/config"
	"fortress/pkg/game/deck"
	"fortress/pkg/game/devtools"
	"fortress/pkg/game/renderer"
	"fortress/pkg/game/renderer/tui"
	"fortress/pkg/game/setup"
	"fortress/pkg/game/state"
)

func initGettext(lang string) {
	gotext.Configure("locales", lang, "default")
}

// buildMaze generates the maze for a level. Explicit cols/rows override the level's size.
func buildMaze(level, cols, rows int, seed int64) (*state.Maze, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	cfg = deck.Tune(cfg, level)

	levelCols, levelRows := deck.CellSize(level)
	if cols <= 0 {
		cols = levelCols
	}
	if rows <= 0 {
		rows = levelRows
	}

	return setup.NewMaze(cols, rows, seed, cfg)
}

func main() {
	level := flag.Int("level", 1, "level number, sets the maze size and entity counts")
	cols := flag.Int("cols", 0, "maze width in cells (0 = size for the level)")
	rows := flag.Int("rows", 0, "maze height in cells (0 = size for the level)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	dump := flag.String("dump", "", "also write a debug dump of the maze to this file")
	lang := flag.String("lang", "en_GB", "language for names and the legend")
	showPath := flag.Bool("path", false, "overlay the critical path")
	flag.Parse()

	initGettext(*lang)

	if !terminal.IsTerminal() {
		color.Disable()
	}

	t := tui.New()
	t.ShowPath = *showPath
	renderer.SetRenderer(t)
	renderer.Init()

	m, err := buildMaze(*level, *cols, *rows, *seed)
	if err != nil {
		log.Fatalf("Failed to build maze: %v", err)
	}

	if width := m.Board().Width(); !terminal.Fits(width) {
		log.Printf("[MAZE] [WARN] board is %d columns wide, terminal has %d; lines will wrap", width, terminal.GetWidth())
	}

	heading := fmt.Sprintf("%s (%d/%d)  seed %d", deck.Name(*level), *level, deck.TotalLevels, m.Seed())
	fmt.Println(renderer.StyleText(heading, renderer.StyleHeading))
	fmt.Println()
	fmt.Print(renderer.Render(m))

	if *dump != "" {
		path, err := devtools.DumpMapToFile(m, *dump)
		if err != nil {
			log.Fatalf("Failed to write map dump: %v", err)
		}
		fmt.Println(renderer.StyleText("Map dump written to "+path, renderer.StyleSubtle))
	}
}
