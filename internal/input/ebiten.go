package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Poll reads mouse, wheel and touch state from ebiten in layout coordinates.
// The left mouse button counts as a pointer while held.
func Poll(touchBuf []ebiten.TouchID) (Sample, []ebiten.TouchID) {
	var s Sample

	cx, cy := ebiten.CursorPosition()
	s.CursorX, s.CursorY = float64(cx), float64(cy)
	_, s.Wheel = ebiten.Wheel()

	touchBuf = ebiten.AppendTouchIDs(touchBuf[:0])
	for _, id := range touchBuf {
		x, y := ebiten.TouchPosition(id)
		s.Pointers = append(s.Pointers, Pointer{ID: int(id), X: float64(x), Y: float64(y)})
	}
	if len(s.Pointers) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.Pointers = append(s.Pointers, Pointer{ID: -1, X: s.CursorX, Y: s.CursorY})
	}
	return s, touchBuf
}
