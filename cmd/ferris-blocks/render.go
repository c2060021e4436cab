package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/ferrisblocks/blocks"
)

const (
	margin     = 16
	sidePanel  = 6
	lineHeight = 16
)

var (
	background = color.RGBA{0x10, 0x10, 0x18, 0xff}
	border     = color.RGBA{0x80, 0x80, 0x80, 0xff}
	locked     = color.RGBA{0x70, 0x70, 0x78, 0xff}
	ghost      = color.RGBA{0xff, 0xff, 0xff, 0x30}
	outline    = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

var palette = [...]color.RGBA{
	blocks.I: {0x66, 0xbf, 0xff, 0xff},
	blocks.J: {0x00, 0x79, 0xf1, 0xff},
	blocks.L: {0xff, 0xa1, 0x00, 0xff},
	blocks.O: {0xff, 0xcb, 0x00, 0xff},
	blocks.S: {0x00, 0xe4, 0x30, 0xff},
	blocks.T: {0xc8, 0x7a, 0xff, 0xff},
	blocks.Z: {0xe6, 0x29, 0x37, 0xff},
}

type boardLayout struct {
	rows, cols int
	cell       int
}

func newBoardLayout(cfg blocks.Config) boardLayout {
	return boardLayout{rows: cfg.Rows, cols: cfg.Cols, cell: cfg.CellSizePx}
}

func (l boardLayout) windowSize() (int, int) {
	return l.cols*l.cell + sidePanel*l.cell + 3*margin, l.rows*l.cell + 2*margin
}

func (l boardLayout) cellRect(c blocks.Coord) (x, y, size float32) {
	return float32(margin + c.X*l.cell), float32(margin + c.Y*l.cell), float32(l.cell)
}

func (l boardLayout) drawCell(screen *ebiten.Image, c blocks.Coord, clr color.Color) {
	if c.Y < 0 {
		return
	}
	x, y, size := l.cellRect(c)
	vector.DrawFilledRect(screen, x, y, size, size, clr, false)
	vector.StrokeRect(screen, x, y, size, size, 1, outline, false)
}

func drawBoard(screen *ebiten.Image, l boardLayout, g blocks.View, paused bool) {
	screen.Fill(background)
	grid := g.Grid()

	for y := range grid.Rows() {
		for x, cell := range grid.Row(y) {
			if cell == blocks.Filled {
				l.drawCell(screen, blocks.Coord{X: x, Y: y}, locked)
			}
		}
	}

	active := g.Active()
	if !g.Over() {
		ghostPos := g.Ghost()
		for _, c := range active.Cells {
			p := ghostPos.Add(c)
			if p.Y >= 0 {
				x, y, size := l.cellRect(p)
				vector.DrawFilledRect(screen, x, y, size, size, ghost, false)
			}
		}
	}
	for _, c := range active.Cells {
		l.drawCell(screen, g.Position().Add(c), palette[active.Kind])
	}

	vector.StrokeRect(screen, margin-2, margin-2,
		float32(l.cols*l.cell+4), float32(l.rows*l.cell+4), 2, border, false)

	panelX := 2*margin + l.cols*l.cell
	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, margin)
	next := g.Next()
	for _, c := range next.Cells {
		x := float32(panelX + (c.X+2)*l.cell)
		y := float32(margin + lineHeight + (c.Y+2)*l.cell)
		vector.DrawFilledRect(screen, x, y, float32(l.cell), float32(l.cell), palette[next.Kind], false)
		vector.StrokeRect(screen, x, y, float32(l.cell), float32(l.cell), 1, outline, false)
	}

	textY := margin + lineHeight + 5*l.cell
	for _, line := range []string{
		fmt.Sprintf("SCORE %d", grid.Score()),
		fmt.Sprintf("LINES %d", grid.Lines()),
		fmt.Sprintf("LEVEL %d", grid.Level()),
	} {
		ebitenutil.DebugPrintAt(screen, line, panelX, textY)
		textY += lineHeight
	}

	switch {
	case g.Over():
		ebitenutil.DebugPrintAt(screen, "GAME OVER", panelX, textY+lineHeight)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", panelX, textY+2*lineHeight)
	case paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", panelX, textY+lineHeight)
	}
}
