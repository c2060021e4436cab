package debugui

import (
	"github.com/plus3/ferrisblocks/blocks"
	"github.com/plus3/ferrisblocks/loop"
)

// AttachDebugUI adds the performance and game panels to sys.
func AttachDebugUI(sys *ImguiSystem, scheduler *loop.Scheduler, game *blocks.Game, paused *bool) {
	timer := NewFrameTimer()
	perf := NewPerformanceStatsPanel(120)
	panel := NewGamePanel(game, paused)

	sys.Add(func() { perf.Render(scheduler, timer.GetDeltaTime()) })
	sys.Add(panel.Render)
}
