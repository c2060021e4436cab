package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/ferrisblocks/blocks"
	"github.com/plus3/ferrisblocks/play"
)

// frameTime is the simulated engine step. Inputs arrive at most once per
// frame, roughly as fast as a quick player can tap.
const frameTime = time.Second / 60

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	games := flag.Int("games", 8, "Number of games kept in play at once.")
	seed := flag.Uint64("seed", 1, "Base seed. Game i uses seed+i.")
	rows := flag.Int("rows", blocks.DefaultConfig().Rows, "Number of playfield rows.")
	cols := flag.Int("cols", blocks.DefaultConfig().Cols, "Number of playfield columns.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := blocks.Config{Rows: *rows, Cols: *cols, CellSizePx: 1}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *games <= 0 {
		log.Fatalf("Invalid configuration: games must be positive, got %d", *games)
	}

	log.Println("Starting blocks stress test...")

	log.Printf("Starting %d games...\n", *games)
	players := make([]*player, *games)
	for i := range players {
		p, err := newPlayer(cfg, *seed+uint64(i))
		if err != nil {
			log.Fatalf("Failed to start game %d: %v", i, err)
		}
		players[i] = p
	}

	report := &Report{
		Duration:       *duration,
		Games:          *games,
		Rows:           cfg.Rows,
		Cols:           cfg.Cols,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			for i, p := range players {
				if err := p.step(frameTime); err != nil {
					log.Fatalf("Game %d (seed %d) broke after %d frames: %v", i, p.seed, p.frames, err)
				}
			}
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	for _, p := range players {
		report.add(p)
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// player drives one game with random key presses through the same systems
// the interactive hosts use, restarting it whenever it ends.
type player struct {
	game  *blocks.Game
	input *play.InputSystem
	once  func(dt float64)
	rng   blocks.RandomSource
	seed  uint64

	frames   int64
	finished int
	best     uint32
	lines    uint32
	locks    uint32
	clears   [5]uint32
}

var moves = [...]blocks.Key{blocks.KeyLeft, blocks.KeyRight, blocks.KeyDown, blocks.KeySpace}

func newPlayer(cfg blocks.Config, seed uint64) (*player, error) {
	game, err := blocks.New(cfg, blocks.NewRandomSource(seed))
	if err != nil {
		return nil, err
	}
	input := &play.InputSystem{Game: game}
	scheduler := play.NewScheduler(input, &play.GravitySystem{Game: game})
	return &player{
		game:  game,
		input: input,
		once:  scheduler.Once,
		rng:   blocks.NewRandomSource(^seed),
		seed:  seed,
	}, nil
}

// step runs one frame and checks the engine's invariants afterwards.
func (p *player) step(dt time.Duration) error {
	// drop sparingly so games last long enough to build a stack
	switch n := p.rng.IntN(40); {
	case n < len(moves):
		p.input.Press(moves[n])
	case n == len(moves) && p.rng.IntN(8) == 0:
		p.input.Press(blocks.KeyUp)
	}

	if p.game.Over() {
		p.record()
		p.input.Restart()
	}

	p.once(dt.Seconds())
	p.frames++
	return checkInvariants(p.game)
}

func (p *player) record() {
	grid := p.game.Grid()
	stats := p.game.Stats()
	p.finished++
	p.best = max(p.best, grid.Score())
	p.lines += grid.Lines()
	p.locks += stats.Locks()
	for rows := range p.clears {
		p.clears[rows] += stats.Clears(rows)
	}
}
