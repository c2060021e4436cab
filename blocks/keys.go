package blocks

// Key is a browser-style keyboard code as delivered by the host.
type Key int

const (
	KeySpace Key = 32
	KeyLeft  Key = 37
	KeyUp    Key = 38
	KeyRight Key = 39
	KeyDown  Key = 40
)

// OnKey dispatches a key code to the matching action and reports whether
// the code was recognised. Up hard-drops, down soft-drops, left and right
// shift, space rotates.
func (g *Game) OnKey(code Key) bool {
	switch code {
	case KeyUp:
		g.Drop()
	case KeyDown:
		g.MoveDown()
	case KeyLeft:
		g.MoveLeft()
	case KeyRight:
		g.MoveRight()
	case KeySpace:
		g.Rotate()
	default:
		return false
	}
	return true
}
