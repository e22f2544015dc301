package gallery

// Key names a keyboard key using the browser's KeyboardEvent.key values.
type Key string

const (
	KeyEscape     Key = "Escape"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// HandleKey routes a key press to the matching transition. Keys are only
// honoured while a project is open; on a closed gallery every key returns
// ErrClosed without touching the state.
func (g *Gallery) HandleKey(k Key) error {
	if !g.open {
		return ErrClosed
	}
	switch k {
	case KeyEscape:
		g.Close()
		return nil
	case KeyArrowLeft:
		return g.Previous()
	case KeyArrowRight:
		return g.Next()
	default:
		return ErrUnboundKey
	}
}
