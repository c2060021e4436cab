package blocks

import "fmt"

// Cell is the content of one grid square.
type Cell uint8

const (
	Empty Cell = iota
	Filled
)

// points awarded for clearing 0..4 rows with a single lock
var clearScores = [...]uint32{0, 100, 250, 500, 1000}

// linesPerLevel is how many cleared rows advance the level by one.
const linesPerLevel = 10

// Grid is the settled playfield. Cells are stored row-major in one dense
// slice; callers read them through At and Row and never receive the
// backing storage. Only Game mutates a Grid.
type Grid struct {
	rows  int
	cols  int
	cells []Cell

	score uint32
	lines uint32
	level uint32
	combo uint32
}

// NewGrid returns an empty rows x cols grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if err := (Config{Rows: rows, Cols: cols}).Validate(); err != nil {
		return nil, err
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

func (g *Grid) Rows() int     { return g.rows }
func (g *Grid) Cols() int     { return g.cols }
func (g *Grid) Score() uint32 { return g.score }
func (g *Grid) Lines() uint32 { return g.lines }
func (g *Grid) Level() uint32 { return g.level }
func (g *Grid) Combo() uint32 { return g.combo }

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the cell at column x, row y. ok is false outside the grid.
func (g *Grid) At(x, y int) (c Cell, ok bool) {
	if !g.inside(x, y) {
		return Empty, false
	}
	return g.cells[y*g.cols+x], true
}

// Row returns a copy of row y, or nil if y is outside the grid.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.rows {
		return nil
	}
	row := make([]Cell, g.cols)
	copy(row, g.cells[y*g.cols:(y+1)*g.cols])
	return row
}

// Full reports whether row y has no empty cell.
func (g *Grid) Full(y int) bool {
	if y < 0 || y >= g.rows {
		return false
	}
	for _, c := range g.cells[y*g.cols : (y+1)*g.cols] {
		if c == Empty {
			return false
		}
	}
	return true
}

// Height is the number of rows between the floor and the highest filled
// cell, inclusive. An empty grid has height 0.
func (g *Grid) Height() int {
	for i, c := range g.cells {
		if c == Filled {
			return g.rows - i/g.cols
		}
	}
	return 0
}

// CheckCollision reports whether cells placed at pos would leave the side
// walls, go through the floor, or overlap a filled cell. Cells above the
// top row (negative y) never collide so pieces can spawn partly hidden.
func (g *Grid) CheckCollision(pos Coord, cells Cells) bool {
	for _, c := range cells {
		abs := pos.Add(c)
		if abs.X < 0 || abs.X >= g.cols || abs.Y >= g.rows {
			return true
		}
		if abs.Y >= 0 && g.cells[abs.Y*g.cols+abs.X] == Filled {
			return true
		}
	}
	return false
}

// lockAndClear stamps cells at pos, removes every full row and returns how
// many were removed. The placement must already be validated: a column
// outside the grid panics, as does a row outside it.
func (g *Grid) lockAndClear(pos Coord, cells Cells) int {
	for _, c := range cells {
		abs := pos.Add(c)
		if abs.X < 0 || abs.X >= g.cols {
			panic(fmt.Sprintf("blocks: lock outside grid at (%d,%d)", abs.X, abs.Y))
		}
		g.cells[abs.Y*g.cols+abs.X] = Filled
	}

	// Compact bottom-up: surviving rows keep their order and slide down over
	// the removed ones.
	write := g.rows - 1
	for read := g.rows - 1; read >= 0; read-- {
		if g.Full(read) {
			continue
		}
		if write != read {
			copy(g.cells[write*g.cols:(write+1)*g.cols], g.cells[read*g.cols:(read+1)*g.cols])
		}
		write--
	}
	cleared := write + 1
	clear(g.cells[:cleared*g.cols])

	g.award(cleared)
	return cleared
}

func (g *Grid) award(cleared int) {
	if cleared < 0 || cleared >= len(clearScores) {
		panic(fmt.Sprintf("blocks: cleared %d rows with a single piece", cleared))
	}
	g.score += clearScores[cleared]
	g.lines += uint32(cleared)
	g.level = g.lines / linesPerLevel
	if cleared > 0 {
		g.combo++
	} else {
		g.combo = 0
	}
}

func (g *Grid) reset() {
	clear(g.cells)
	g.score = 0
	g.lines = 0
	g.level = 0
	g.combo = 0
}
