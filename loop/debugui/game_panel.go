package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ferrisblocks/blocks"
)

// NewGamePanel inspects game. When paused is non-nil the panel shows a
// checkbox bound to it.
func NewGamePanel(game *blocks.Game, paused *bool) *GamePanel {
	return &GamePanel{game: game, paused: paused}
}

func (gp *GamePanel) Render() {
	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	g := gp.game
	grid := g.Grid()

	if gp.paused != nil {
		imgui.Checkbox("Paused", gp.paused)
	}
	if g.Over() {
		imgui.Text("GAME OVER")
	}

	imgui.Text(fmt.Sprintf("Score: %d", grid.Score()))
	imgui.Text(fmt.Sprintf("Lines: %d  Level: %d  Combo: %d", grid.Lines(), grid.Level(), grid.Combo()))
	imgui.Text(fmt.Sprintf("Stack height: %d / %d", grid.Height(), grid.Rows()))

	imgui.Separator()
	pacing := g.Pacing()
	imgui.Text(fmt.Sprintf("Fall delay: %v", pacing.FallDelay))
	imgui.Text(fmt.Sprintf("Cooldown: %v", pacing.Cooldown))
	imgui.Text(fmt.Sprintf("Active: %v at %v", g.Active().Kind, g.Position()))
	imgui.Text(fmt.Sprintf("Ghost: %v", g.Ghost()))
	imgui.Text(fmt.Sprintf("Next: %v", g.Next().Kind))

	stats := g.Stats()
	if imgui.TreeNodeStr("Pieces") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PieceTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Spawned")
			imgui.TableHeadersRow()

			for _, kind := range blocks.Kinds {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(kind.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Spawned(kind)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Locks") {
		imgui.Text(fmt.Sprintf("Total: %d", stats.Locks()))
		for rows := range 5 {
			imgui.BulletText(fmt.Sprintf("%d rows: %d", rows, stats.Clears(rows)))
		}
		imgui.TreePop()
	}

	imgui.End()
}
