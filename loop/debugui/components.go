package debugui

import "github.com/plus3/ferrisblocks/blocks"

type PerformanceStatsPanel struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type GamePanel struct {
	game   *blocks.Game
	paused *bool
}
