package main

import (
	"errors"
	"fmt"

	"github.com/plus3/ferrisblocks/blocks"
)

var scoreTable = [...]uint32{0, 100, 250, 500, 1000}

var (
	errFullRow    = errors.New("full row left on the grid")
	errOverlap    = errors.New("active piece overlaps the stack")
	errScoreDrift = errors.New("score does not match the clears")
)

// checkInvariants verifies what must hold between any two engine calls.
func checkInvariants(g *blocks.Game) error {
	grid := g.Grid()
	for y := range grid.Rows() {
		if grid.Full(y) {
			return fmt.Errorf("%w: row %d", errFullRow, y)
		}
	}

	if !g.Over() && grid.CheckCollision(g.Position(), g.Active().Cells) {
		return fmt.Errorf("%w: %v at %v", errOverlap, g.Active().Kind, g.Position())
	}

	var score, lines uint32
	for rows, points := range scoreTable {
		n := g.Stats().Clears(rows)
		score += n * points
		lines += n * uint32(rows)
	}
	if score != grid.Score() || lines != grid.Lines() {
		return fmt.Errorf("%w: score %d lines %d, expected %d and %d",
			errScoreDrift, grid.Score(), grid.Lines(), score, lines)
	}
	return nil
}
