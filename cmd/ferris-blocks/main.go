package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ferrisblocks/blocks"
	"github.com/plus3/ferrisblocks/loop/debugui"
	debugui_ebiten "github.com/plus3/ferrisblocks/loop/debugui/ebiten"
	"github.com/plus3/ferrisblocks/play"
)

const title = "Ferris Blocks"

func main() {
	defaults := blocks.DefaultConfig()
	rows := flag.Int("rows", defaults.Rows, "Number of playfield rows.")
	cols := flag.Int("cols", defaults.Cols, "Number of playfield columns.")
	cell := flag.Int("cell", defaults.CellSizePx, "Cell size in pixels.")
	seed := flag.Uint64("seed", 0, "Piece sequence seed. 0 picks one from the clock.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	tps := flag.Int("tps", 60, "Engine updates per second.")
	flag.Parse()

	cfg := blocks.Config{Rows: *rows, Cols: *cols, CellSizePx: *cell}
	if err := cfg.ValidateDisplay(); err != nil {
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
	log.Printf("Starting %dx%d game with seed %d", cfg.Cols, cfg.Rows, *seed)

	h := &host{
		game:   game,
		layout: newBoardLayout(cfg),
		dt:     1.0 / float64(*tps),
	}
	h.input = &play.InputSystem{Game: game, Paused: &h.paused}
	h.scheduler = play.NewScheduler(h.input, &play.GravitySystem{Game: game, Paused: &h.paused})

	width, height := h.layout.windowSize()
	if *debug {
		h.imgui = debugui_ebiten.NewImguiBackend(title, max(width, 1280), max(height, 720))
		imguiSystem := debugui.NewImguiSystem()
		debugui.AttachDebugUI(imguiSystem, h.scheduler, game, &h.paused)
		h.scheduler.Register(imguiSystem)
		h.capture = imguiSystem.InputState
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetTPS(*tps)

	if err := ebiten.RunGame(h); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}
