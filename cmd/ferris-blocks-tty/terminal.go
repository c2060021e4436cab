package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/ferrisblocks/blocks"
	"github.com/plus3/ferrisblocks/loop"
	"github.com/plus3/ferrisblocks/play"
)

// cells are drawn two columns wide so they look square in most fonts
const cellWidth = 2

var kindColors = [...]tcell.Color{
	blocks.I: tcell.ColorAqua,
	blocks.J: tcell.ColorBlue,
	blocks.L: tcell.ColorOrange,
	blocks.O: tcell.ColorYellow,
	blocks.S: tcell.ColorGreen,
	blocks.T: tcell.ColorPurple,
	blocks.Z: tcell.ColorRed,
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	lockedStyle = tcell.StyleDefault.Background(tcell.ColorGray)
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var keyCodes = map[tcell.Key]blocks.Key{
	tcell.KeyLeft:  blocks.KeyLeft,
	tcell.KeyRight: blocks.KeyRight,
	tcell.KeyDown:  blocks.KeyDown,
	tcell.KeyUp:    blocks.KeyUp,
}

// terminal owns the screen and the game. Input events and ticks are
// handled on the same goroutine, so the engine is never touched
// concurrently.
type terminal struct {
	screen    tcell.Screen
	game      *blocks.Game
	input     *play.InputSystem
	scheduler *loop.Scheduler
	paused    bool
}

func (t *terminal) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go t.pollEvents(eventChan, quit)

	lastTime := time.Now()
	t.draw()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			t.scheduler.Once(dt)
			t.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or quit
// is closed.
func (t *terminal) pollEvents(events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// handleEvent returns false when the player quits.
func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if code, ok := keyCodes[ev.Key()]; ok {
			t.input.Press(code)
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case ' ':
			t.input.Press(blocks.KeySpace)
		case 'r', 'R':
			t.input.Restart()
		case 'p', 'P':
			t.paused = !t.paused
		case 'q', 'Q':
			return false
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *terminal) put(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *terminal) drawCell(c blocks.Coord, r rune, style tcell.Style) {
	if c.Y < 0 {
		return
	}
	x := 1 + c.X*cellWidth
	y := 1 + c.Y
	t.screen.SetContent(x, y, r, nil, style)
	t.screen.SetContent(x+1, y, r, nil, style)
}

func (t *terminal) draw() {
	t.screen.Clear()

	g := t.game
	grid := g.Grid()
	width := grid.Cols() * cellWidth

	for y := 0; y <= grid.Rows()+1; y++ {
		t.screen.SetContent(0, y, '│', nil, borderStyle)
		t.screen.SetContent(width+1, y, '│', nil, borderStyle)
	}
	for x := 0; x <= width+1; x++ {
		t.screen.SetContent(x, 0, '─', nil, borderStyle)
		t.screen.SetContent(x, grid.Rows()+1, '─', nil, borderStyle)
	}

	for y := range grid.Rows() {
		for x, cell := range grid.Row(y) {
			if cell == blocks.Filled {
				t.drawCell(blocks.Coord{X: x, Y: y}, ' ', lockedStyle)
			}
		}
	}

	active := g.Active()
	if !g.Over() {
		ghost := g.Ghost()
		for _, c := range active.Cells {
			t.drawCell(ghost.Add(c), '░', ghostStyle)
		}
	}
	style := tcell.StyleDefault.Background(kindColors[active.Kind])
	for _, c := range active.Cells {
		t.drawCell(g.Position().Add(c), ' ', style)
	}

	panelX := width + 4
	next := g.Next()
	t.put(panelX, 1, textStyle, "NEXT")
	nextStyle := tcell.StyleDefault.Background(kindColors[next.Kind])
	for _, c := range next.Cells {
		x := panelX + (c.X+1)*cellWidth
		y := 4 + c.Y
		t.screen.SetContent(x, y, ' ', nil, nextStyle)
		t.screen.SetContent(x+1, y, ' ', nil, nextStyle)
	}

	t.put(panelX, 8, textStyle, fmt.Sprintf("SCORE %d", grid.Score()))
	t.put(panelX, 9, textStyle, fmt.Sprintf("LINES %d", grid.Lines()))
	t.put(panelX, 10, textStyle, fmt.Sprintf("LEVEL %d", grid.Level()))

	switch {
	case g.Over():
		t.put(panelX, 12, alertStyle, "GAME OVER")
		t.put(panelX, 13, textStyle, "r restart  q quit")
	case t.paused:
		t.put(panelX, 12, alertStyle, "PAUSED")
	}

	t.screen.Show()
}
