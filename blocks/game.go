// Package blocks implements the state engine of a falling-block puzzle
// game: the playfield grid, the seven tetromino shapes, collision and
// rotation with a small kick search, row clearing and scoring, and the
// frame-driven pacing that decides when the active piece falls and locks.
//
// The engine neither renders nor reads input devices. A host calls Update
// once per frame with the elapsed time and forwards key codes to OnKey;
// a renderer reads the state between those calls through View. A Game is
// not safe for concurrent use; hosts serialize access.
package blocks

import (
	"fmt"
	"time"
)

const (
	baseFallDelay  = 650 * time.Millisecond
	levelFallStep  = 50 * time.Millisecond
	moveCooldown   = 250 * time.Millisecond
	rotateCooldown = 400 * time.Millisecond
)

// anchor offsets tried in order when rotating; the first entry is the
// unkicked rotation
var kicks = [...]Coord{{0, 0}, {-1, -1}, {0, -1}, {1, -1}}

// Pacing holds the engine's countdown timers.
//
// FallDelay is the time left until the active piece falls one row.
// Cooldown is the lock delay: while it is positive a piece resting on the
// stack is not locked yet. Moves and rotations raise it, Update decays it.
type Pacing struct {
	FallDelay time.Duration
	Cooldown  time.Duration
}

// View is the read-only state a renderer consumes between engine calls.
type View interface {
	Grid() *Grid
	Active() Piece
	Next() Piece
	Position() Coord
	Ghost() Coord
	Over() bool
}

// Game owns a grid, the active piece and its anchor, the next piece and
// the pacing timers.
type Game struct {
	cfg    Config
	grid   *Grid
	gen    *Generator
	stats  *Stats
	active Piece
	next   Piece
	pos    Coord
	pacing Pacing
	over   bool
}

var _ View = (*Game)(nil)

// New starts a game on an empty board. Pieces are drawn from src, so a
// seeded source yields a reproducible game.
func New(cfg Config, src RandomSource) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	grid, err := NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		grid:  grid,
		gen:   NewGenerator(src),
		stats: newStats(),
	}
	g.start()
	return g, nil
}

func (g *Game) start() {
	g.over = false
	g.next = g.gen.Next()
	g.promote()
	g.pacing = Pacing{FallDelay: g.fallDelay()}
}

// Reset empties the board and starts over with fresh pieces from the same
// random source.
func (g *Game) Reset() {
	g.grid.reset()
	g.stats.reset()
	g.start()
}

func (g *Game) Config() Config  { return g.cfg }
func (g *Game) Grid() *Grid     { return g.grid }
func (g *Game) Stats() *Stats   { return g.stats }
func (g *Game) Active() Piece   { return g.active }
func (g *Game) Next() Piece     { return g.next }
func (g *Game) Position() Coord { return g.pos }
func (g *Game) Pacing() Pacing  { return g.pacing }
func (g *Game) Over() bool      { return g.over }
func (g *Game) spawnPos() Coord { return Coord{X: g.cfg.Cols / 2, Y: 0} }

func (g *Game) collides(p Coord) bool {
	return g.grid.CheckCollision(p, g.active.Cells)
}

// ActiveCells returns the active piece's cells in grid coordinates.
func (g *Game) ActiveCells() Cells {
	var cells Cells
	for i, c := range g.active.Cells {
		cells[i] = g.pos.Add(c)
	}
	return cells
}

// Ghost returns the anchor the active piece would settle at if dropped now.
func (g *Game) Ghost() Coord {
	pos := g.pos
	for !g.collides(pos.Add(Coord{Y: 1})) {
		pos.Y++
	}
	return pos
}

// fallDelay is not clamped: from level 13 on it is non-positive and the
// piece falls one row on every Update.
func (g *Game) fallDelay() time.Duration {
	return baseFallDelay - time.Duration(g.grid.level)*levelFallStep
}

// Update advances the pacing timers by dt. When the fall delay runs out
// the active piece moves one row down, or locks if it is resting on the
// floor or the stack and no cooldown is pending. At most one row is moved
// per call however large dt is.
func (g *Game) Update(dt time.Duration) {
	if g.over {
		return
	}

	g.pacing.FallDelay -= dt
	g.pacing.Cooldown -= dt
	if g.pacing.FallDelay >= 0 {
		return
	}

	below := g.pos.Add(Coord{Y: 1})
	switch {
	case !g.collides(below):
		g.pos = below
	case g.pacing.Cooldown > 0:
		// lock delay: give the player the rest of the cooldown to slide or
		// rotate before committing
		g.pacing.FallDelay = g.pacing.Cooldown
		return
	default:
		g.lock()
	}
	g.pacing.FallDelay = g.fallDelay()
}

func (g *Game) lock() {
	for _, c := range g.ActiveCells() {
		if c.Y < 0 {
			g.over = true
			return
		}
	}

	cleared := g.grid.lockAndClear(g.pos, g.active.Cells)
	g.stats.recordLock(cleared)
	g.promote()
	if g.collides(g.pos) {
		g.over = true
	}
}

// promote makes the lookahead piece active at the spawn anchor and draws a
// new lookahead.
func (g *Game) promote() {
	g.pos = g.spawnPos()
	g.active = g.next
	g.next = g.gen.Next()
	g.stats.recordSpawn(g.active.Kind)
}

func (g *Game) armCooldown(d time.Duration) {
	g.pacing.Cooldown = max(g.pacing.Cooldown, d)
}

func (g *Game) shift(dx int) {
	if g.over {
		return
	}
	g.armCooldown(moveCooldown)
	if p := g.pos.Add(Coord{X: dx}); !g.collides(p) {
		g.pos = p
	}
}

// MoveLeft shifts the active piece one column left if the space is free.
func (g *Game) MoveLeft() { g.shift(-1) }

// MoveRight shifts the active piece one column right if the space is free.
func (g *Game) MoveRight() { g.shift(1) }

// MoveDown moves the active piece one row down and reports whether it
// moved.
func (g *Game) MoveDown() bool {
	if g.over {
		return false
	}
	below := g.pos.Add(Coord{Y: 1})
	if g.collides(below) {
		return false
	}
	g.pos = below
	return true
}

// Drop moves the active piece down until it rests and returns the number of
// rows it fell. The piece is not locked until the next fall tick.
func (g *Game) Drop() int {
	rows := 0
	for g.MoveDown() {
		rows++
	}
	return rows
}

// Rotate turns the active piece a quarter turn. If the turned shape does
// not fit at the anchor, the anchor is nudged one row up and up to one
// column sideways; when nothing fits the rotation is dropped. O pieces are
// left alone.
func (g *Game) Rotate() {
	if g.over || g.active.Kind == O {
		return
	}
	g.armCooldown(rotateCooldown)

	rotated := g.active.Rotated()
	for _, kick := range kicks {
		p := g.pos.Add(kick)
		if !g.grid.CheckCollision(p, rotated.Cells) {
			g.pos = p
			g.active = rotated
			return
		}
	}
}
