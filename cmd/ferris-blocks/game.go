package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/ferrisblocks/blocks"
	"github.com/plus3/ferrisblocks/loop"
	"github.com/plus3/ferrisblocks/loop/debugui"
	debugui_ebiten "github.com/plus3/ferrisblocks/loop/debugui/ebiten"
	"github.com/plus3/ferrisblocks/play"
)

// host implements ebiten.Game. Ebiten calls Update at a fixed TPS, so
// every frame advances the engine by the same dt.
type host struct {
	game      *blocks.Game
	layout    boardLayout
	scheduler *loop.Scheduler
	input     *play.InputSystem
	imgui     *debugui_ebiten.ImguiBackend
	capture   *debugui.ImguiInputState
	dt        float64
	paused    bool
}

var keyCodes = []struct {
	key    ebiten.Key
	code   blocks.Key
	repeat bool
}{
	{ebiten.KeyArrowLeft, blocks.KeyLeft, true},
	{ebiten.KeyArrowRight, blocks.KeyRight, true},
	{ebiten.KeyArrowDown, blocks.KeyDown, true},
	{ebiten.KeyArrowUp, blocks.KeyUp, false},
	{ebiten.KeySpace, blocks.KeySpace, false},
}

// pressed reports a fresh press, or a held key once the auto-repeat delay
// has passed.
func pressed(key ebiten.Key, repeat bool) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return repeat && d > 12 && d%4 == 0
}

func (h *host) readKeys() {
	if h.capture != nil && h.capture.WantCaptureKeyboard {
		return
	}
	for _, k := range keyCodes {
		if pressed(k.key, k.repeat) {
			h.input.Press(k.code)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		h.input.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.paused = !h.paused
	}
}

func (h *host) Update() error {
	h.readKeys()
	if h.imgui == nil {
		h.scheduler.Once(h.dt)
		return nil
	}

	// ImGui panels are deferred by ImguiSystem and flushed inside Once
	h.imgui.Frame(func() { h.scheduler.Once(h.dt) })
	return nil
}

func (h *host) Draw(screen *ebiten.Image) {
	drawBoard(screen, h.layout, h.game, h.paused)

	if h.imgui != nil {
		h.imgui.Overlay(screen)
	}
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.imgui != nil {
		h.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return h.layout.windowSize()
}
