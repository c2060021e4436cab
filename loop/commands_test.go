package loop_test

import (
	"testing"

	"github.com/plus3/ferrisblocks/loop"
	"github.com/stretchr/testify/assert"
)

type nestingSystem struct {
	ran []int
}

func (s *nestingSystem) Execute(frame *loop.UpdateFrame) {
	frame.Commands.Defer(func() {
		s.ran = append(s.ran, 1)
		frame.Commands.Defer(func() {
			s.ran = append(s.ran, 3)
		})
	})
	frame.Commands.Defer(func() {
		s.ran = append(s.ran, 2)
	})
	if frame.Commands.Len() != 2 {
		panic("expected two queued commands")
	}
}

func TestCommandsFlushOrder(t *testing.T) {
	scheduler := loop.NewScheduler()
	sys := &nestingSystem{}
	scheduler.Register(sys)

	scheduler.Once(0.016)
	assert.Equal(t, []int{1, 2, 3}, sys.ran)

	// every frame starts with an empty buffer
	scheduler.Once(0.016)
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, sys.ran)
}
