package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/ferrisblocks/blocks"
	"github.com/plus3/ferrisblocks/play"
)

func main() {
	defaults := blocks.DefaultConfig()
	rows := flag.Int("rows", defaults.Rows, "Number of playfield rows.")
	cols := flag.Int("cols", defaults.Cols, "Number of playfield columns.")
	seed := flag.Uint64("seed", 0, "Piece sequence seed. 0 picks one from the clock.")
	tps := flag.Int("tps", 60, "Engine updates per second.")
	logPath := flag.String("log", "", "Write log output to this file instead of discarding it.")
	flag.Parse()

	cfg := blocks.Config{Rows: *rows, Cols: *cols}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *tps <= 0 {
		log.Fatalf("Invalid configuration: tps must be positive, got %d", *tps)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	game, err := blocks.New(cfg, blocks.NewRandomSource(*seed))
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	logOutput, closeLog, err := openLog(*logPath)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	// the terminal belongs to the game from here on
	log.SetOutput(logOutput)

	log.Printf("Starting %dx%d game with seed %d", cfg.Cols, cfg.Rows, *seed)

	t := &terminal{
		screen: screen,
		game:   game,
	}
	t.input = &play.InputSystem{Game: game, Paused: &t.paused}
	t.scheduler = play.NewScheduler(t.input, &play.GravitySystem{Game: game, Paused: &t.paused})
	t.run(time.Second / time.Duration(*tps))

	log.Printf("Finished with score %d after %d lines", game.Grid().Score(), game.Grid().Lines())
}

// openLog returns the writer log output goes to once the screen is up: the
// file at path, or io.Discard when path is empty.
func openLog(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
