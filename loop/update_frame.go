package loop

import "time"

// UpdateFrame is handed to every system during one scheduler pass.
// DeltaTime is the elapsed time since the previous pass in seconds.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
}

func newUpdateFrame(dt float64) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
	}
}

// Elapsed returns DeltaTime as a duration.
func (f *UpdateFrame) Elapsed() time.Duration {
	return time.Duration(f.DeltaTime * float64(time.Second))
}
