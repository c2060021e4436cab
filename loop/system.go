package loop

// System is one step of a frame. Systems are plain structs; any fields
// they hold persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts an ordinary function to a System.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) { f(frame) }
