// Package play holds the loop systems shared by every host: one that
// feeds buffered key presses to a game and one that advances its timers.
package play

import (
	"github.com/plus3/ferrisblocks/blocks"
	"github.com/plus3/ferrisblocks/loop"
)

// InputSystem buffers key codes between frames and forwards them to the
// game in arrival order. Keys pressed while paused are discarded; a
// restart still goes through.
type InputSystem struct {
	Game   *blocks.Game
	Paused *bool

	pending []blocks.Key
	restart bool
}

// Press queues a key code for the next frame.
func (s *InputSystem) Press(code blocks.Key) {
	s.pending = append(s.pending, code)
}

// Restart asks for the game to be reset once the current frame is done.
func (s *InputSystem) Restart() {
	s.restart = true
}

// Pending reports how many key codes are waiting.
func (s *InputSystem) Pending() int {
	return len(s.pending)
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	if s.Paused == nil || !*s.Paused {
		for _, code := range s.pending {
			s.Game.OnKey(code)
		}
	}
	s.pending = s.pending[:0]

	if s.restart {
		s.restart = false
		frame.Commands.Defer(s.Game.Reset)
	}
}

// GravitySystem advances the game by the frame's elapsed time.
type GravitySystem struct {
	Game   *blocks.Game
	Paused *bool
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	if s.Paused != nil && *s.Paused {
		return
	}
	s.Game.Update(frame.Elapsed())
}

// NewScheduler registers input ahead of gravity so a key pressed during a
// frame is applied before that frame's fall tick.
func NewScheduler(input *InputSystem, gravity *GravitySystem) *loop.Scheduler {
	scheduler := loop.NewScheduler()
	scheduler.Register(input)
	scheduler.Register(gravity)
	return scheduler
}
