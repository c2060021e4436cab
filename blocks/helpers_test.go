package blocks_test

import (
	"slices"
	"testing"

	"github.com/plus3/ferrisblocks/blocks"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays kinds in order and then wraps around.
type scriptedSource struct {
	seq []blocks.Kind
	i   int
}

func script(kinds ...blocks.Kind) *scriptedSource {
	return &scriptedSource{seq: kinds}
}

func (s *scriptedSource) IntN(n int) int {
	k := s.seq[s.i%len(s.seq)]
	s.i++
	return int(k) % n
}

func newGame(tb testing.TB, cfg blocks.Config, kinds ...blocks.Kind) *blocks.Game {
	tb.Helper()
	g, err := blocks.New(cfg, script(kinds...))
	require.NoError(tb, err)
	return g
}

func sortedCells(cells blocks.Cells) []blocks.Coord {
	out := slices.Clone(cells[:])
	slices.SortFunc(out, func(a, b blocks.Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// normalized translates cells so the smallest x and y are zero.
func normalized(cells blocks.Cells) []blocks.Coord {
	minX, minY := cells[0].X, cells[0].Y
	for _, c := range cells {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
	}
	var shifted blocks.Cells
	for i, c := range cells {
		shifted[i] = c.Sub(blocks.Coord{X: minX, Y: minY})
	}
	return sortedCells(shifted)
}

func filledCount(g *blocks.Grid) int {
	n := 0
	for y := range g.Rows() {
		for x := range g.Cols() {
			if c, _ := g.At(x, y); c == blocks.Filled {
				n++
			}
		}
	}
	return n
}
