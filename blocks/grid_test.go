package blocks_test

import (
	"fmt"
	"testing"

	"github.com/plus3/ferrisblocks/blocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var verticalI = blocks.Shape(blocks.I).Cells

func newGrid(t *testing.T, rows, cols int) *blocks.Grid {
	t.Helper()
	g, err := blocks.NewGrid(rows, cols)
	require.NoError(t, err)
	return g
}

// fillRow fills row y except the listed columns.
func fillRow(g *blocks.Grid, y int, except ...int) {
	skip := make(map[int]bool)
	for _, x := range except {
		skip[x] = true
	}
	for x := range g.Cols() {
		if !skip[x] {
			g.Fill(blocks.Coord{X: x, Y: y})
		}
	}
}

func TestNewGrid(t *testing.T) {
	g := newGrid(t, 20, 10)
	assert.Equal(t, 20, g.Rows())
	assert.Equal(t, 10, g.Cols())
	assert.Zero(t, filledCount(g))
	assert.Zero(t, g.Height())
	assert.Zero(t, g.Score())

	for _, dims := range [][2]int{{0, 10}, {20, 0}, {3, 10}, {20, -1}} {
		t.Run(fmt.Sprintf("rows=%d,cols=%d", dims[0], dims[1]), func(t *testing.T) {
			_, err := blocks.NewGrid(dims[0], dims[1])
			assert.ErrorIs(t, err, blocks.ErrInvalidConfig)
		})
	}
}

func TestGridAccessors(t *testing.T) {
	g := newGrid(t, 6, 5)
	g.Fill(blocks.Coord{X: 2, Y: 4})

	c, ok := g.At(2, 4)
	assert.True(t, ok)
	assert.Equal(t, blocks.Filled, c)

	c, ok = g.At(0, 0)
	assert.True(t, ok)
	assert.Equal(t, blocks.Empty, c)

	for _, p := range []blocks.Coord{{-1, 0}, {5, 0}, {0, -1}, {0, 6}} {
		_, ok := g.At(p.X, p.Y)
		assert.False(t, ok, "At(%d,%d)", p.X, p.Y)
	}

	row := g.Row(4)
	assert.Equal(t, []blocks.Cell{blocks.Empty, blocks.Empty, blocks.Filled, blocks.Empty, blocks.Empty}, row)
	row[0] = blocks.Filled
	c, _ = g.At(0, 4)
	assert.Equal(t, blocks.Empty, c, "Row must return a copy")
	assert.Nil(t, g.Row(6))

	assert.Equal(t, 2, g.Height())
	assert.False(t, g.Full(4))
	fillRow(g, 5)
	assert.True(t, g.Full(5))
	assert.False(t, g.Full(-1))
}

func TestCheckCollision(t *testing.T) {
	g := newGrid(t, 20, 10)
	g.Fill(blocks.Coord{X: 4, Y: 10})

	tests := []struct {
		name string
		pos  blocks.Coord
		want bool
	}{
		{"open space", blocks.Coord{X: 5, Y: 5}, false},
		{"left wall", blocks.Coord{X: -1, Y: 5}, true},
		{"right wall", blocks.Coord{X: 10, Y: 5}, true},
		{"resting on floor", blocks.Coord{X: 0, Y: 18}, false},
		{"through floor", blocks.Coord{X: 0, Y: 19}, true},
		{"filled cell", blocks.Coord{X: 4, Y: 9}, true},
		{"just above filled cell", blocks.Coord{X: 4, Y: 8}, false},
		{"above top row", blocks.Coord{X: 3, Y: -1}, false},
		{"fully above top row", blocks.Coord{X: 3, Y: -10}, false},
		{"above top row but outside wall", blocks.Coord{X: -1, Y: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.CheckCollision(tt.pos, verticalI))
		})
	}
}

func TestLockWithoutClear(t *testing.T) {
	g := newGrid(t, 20, 10)

	cleared := g.LockAndClear(blocks.Coord{X: 0, Y: 18}, verticalI)

	assert.Zero(t, cleared)
	assert.Equal(t, 4, filledCount(g))
	assert.Zero(t, g.Score())
	assert.Zero(t, g.Lines())
	for y := 16; y < 20; y++ {
		c, _ := g.At(0, y)
		assert.Equal(t, blocks.Filled, c)
	}
}

func TestSingleRowClear(t *testing.T) {
	g := newGrid(t, 20, 10)
	fillRow(g, 19, 9)
	g.Fill(blocks.Coord{X: 0, Y: 18})

	cleared := g.LockAndClear(blocks.Coord{X: 9, Y: 18}, verticalI)

	assert.Equal(t, 1, cleared)
	assert.Equal(t, uint32(100), g.Score())
	assert.Equal(t, uint32(1), g.Lines())
	assert.Equal(t, 20, g.Rows())

	// old row 18 is now the bottom row, the rest of the I slid down with it
	assert.Equal(t, []blocks.Cell{
		blocks.Filled, blocks.Empty, blocks.Empty, blocks.Empty, blocks.Empty,
		blocks.Empty, blocks.Empty, blocks.Empty, blocks.Empty, blocks.Filled,
	}, g.Row(19))
	for y := 17; y <= 18; y++ {
		c, _ := g.At(9, y)
		assert.Equal(t, blocks.Filled, c, "row %d", y)
	}
	assert.Equal(t, make([]blocks.Cell, 10), g.Row(0))
	assert.Equal(t, 4, filledCount(g))
}

func TestClearScoring(t *testing.T) {
	tests := []struct {
		rows  int
		score uint32
	}{
		{1, 100},
		{2, 250},
		{3, 500},
		{4, 1000},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d rows", tt.rows), func(t *testing.T) {
			g := newGrid(t, 20, 10)
			for y := 20 - tt.rows; y < 20; y++ {
				fillRow(g, y, 9)
			}

			cleared := g.LockAndClear(blocks.Coord{X: 9, Y: 18}, verticalI)

			assert.Equal(t, tt.rows, cleared)
			assert.Equal(t, tt.score, g.Score())
			assert.Equal(t, uint32(tt.rows), g.Lines())
			assert.Equal(t, 4-tt.rows, filledCount(g))
			for y := range g.Rows() {
				assert.False(t, g.Full(y))
			}
		})
	}
}

func TestClearKeepsRowOrder(t *testing.T) {
	g := newGrid(t, 20, 10)
	fillRow(g, 17, 9)
	fillRow(g, 19, 9)
	g.Fill(blocks.Coord{X: 0, Y: 18}, blocks.Coord{X: 1, Y: 18}, blocks.Coord{X: 2, Y: 18})
	g.Fill(blocks.Coord{X: 5, Y: 15})

	cleared := g.LockAndClear(blocks.Coord{X: 9, Y: 18}, verticalI)

	assert.Equal(t, 2, cleared)
	assert.Equal(t, uint32(250), g.Score())

	// survivors from the bottom up: old 18, old 16, old 15
	bottom := g.Row(19)
	assert.Equal(t, blocks.Filled, bottom[0])
	assert.Equal(t, blocks.Filled, bottom[2])
	assert.Equal(t, blocks.Filled, bottom[9])
	assert.Equal(t, blocks.Empty, bottom[3])

	c, _ := g.At(9, 18)
	assert.Equal(t, blocks.Filled, c)
	c, _ = g.At(5, 17)
	assert.Equal(t, blocks.Filled, c)
	assert.Equal(t, 6, filledCount(g))
	assert.Equal(t, 3, g.Height())
}

func TestLevelAndCombo(t *testing.T) {
	g := newGrid(t, 20, 10)

	for i := range 3 {
		for y := 16; y < 20; y++ {
			fillRow(g, y, 9)
		}
		g.LockAndClear(blocks.Coord{X: 9, Y: 18}, verticalI)
		assert.Equal(t, uint32(i+1), g.Combo())
	}

	assert.Equal(t, uint32(12), g.Lines())
	assert.Equal(t, uint32(1), g.Level())
	assert.Equal(t, uint32(3000), g.Score())

	g.LockAndClear(blocks.Coord{X: 0, Y: 18}, verticalI)
	assert.Zero(t, g.Combo())
	assert.Equal(t, uint32(3000), g.Score())
}

func TestClearingMoreThanFourRowsPanics(t *testing.T) {
	g := newGrid(t, 20, 10)
	for y := 15; y < 20; y++ {
		fillRow(g, y)
	}

	assert.Panics(t, func() {
		g.LockAndClear(blocks.Coord{X: 0, Y: 2}, verticalI)
	})
}

func TestLockOutsideGridPanics(t *testing.T) {
	g := newGrid(t, 20, 10)
	assert.Panics(t, func() { g.LockAndClear(blocks.Coord{X: 10, Y: 5}, verticalI) })
	assert.Panics(t, func() { g.LockAndClear(blocks.Coord{X: 0, Y: 19}, verticalI) })
}

func BenchmarkLockAndClear(b *testing.B) {
	g, err := blocks.NewGrid(20, 10)
	require.NoError(b, err)

	for b.Loop() {
		for y := 16; y < 20; y++ {
			for x := range 9 {
				g.Fill(blocks.Coord{X: x, Y: y})
			}
		}
		g.LockAndClear(blocks.Coord{X: 9, Y: 18}, verticalI)
	}
}
