package blocks

// Fill marks the listed cells of g as filled.
func (g *Grid) Fill(cells ...Coord) {
	for _, c := range cells {
		g.cells[c.Y*g.cols+c.X] = Filled
	}
}

// LockAndClear exposes the engine's lock step to tests.
func (g *Grid) LockAndClear(pos Coord, cells Cells) int {
	return g.lockAndClear(pos, cells)
}

// SetPacing overrides the pacing timers.
func (g *Game) SetPacing(p Pacing) {
	g.pacing = p
}

// SetActive replaces the active piece and its anchor.
func (g *Game) SetActive(p Piece, pos Coord) {
	g.active = p
	g.pos = pos
}

// SetLevel forces the grid level.
func (g *Grid) SetLevel(level uint32) {
	g.level = level
}
