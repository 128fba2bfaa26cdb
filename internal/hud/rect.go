package hud

// Rect is an axis-aligned box in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// panelCorner is the on-screen size of a 9-slice corner tile.
const panelCorner = 8

// nineSlice cuts r into corners of the given size, edges that stretch along
// one axis and a centre that stretches along both. Corners shrink to half
// of r when r is too small to hold them.
func nineSlice(r Rect, corner float64) [9]Rect {
	cw := min(corner, r.W/2)
	ch := min(corner, r.H/2)
	xs := [3]float64{r.X, r.X + cw, r.X + r.W - cw}
	ws := [3]float64{cw, r.W - 2*cw, cw}
	ys := [3]float64{r.Y, r.Y + ch, r.Y + r.H - ch}
	hs := [3]float64{ch, r.H - 2*ch, ch}

	var out [9]Rect
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = Rect{X: xs[col], Y: ys[row], W: ws[col], H: hs[row]}
		}
	}
	return out
}
