package hud

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprites looks up a loaded image by asset name, nil if missing.
type Sprites interface {
	Get(name string) *ebiten.Image
}

func fillRect(dst *ebiten.Image, r Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(dst *ebiten.Image, r Rect, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, false)
}

// panelTiles are the 9-slice pieces of the grey panel, row-major from the
// top-left corner.
var panelTiles = [9]string{
	"Panel_grey_1", "Panel_grey_2", "Panel_grey_3",
	"Panel_grey_4", "Panel_grey_5", "Panel_grey_6",
	"Panel_grey_7", "Panel_grey_8", "Panel_grey_9",
}

// drawPanel builds r from the Panel_grey_1..9 slices, or falls back to a flat
// box when any slice is missing.
func drawPanel(dst *ebiten.Image, r Rect, th Theme, sprites Sprites) {
	var tiles [9]*ebiten.Image
	for i, name := range panelTiles {
		if tiles[i] = sprites.Get(name); tiles[i] == nil {
			fillRect(dst, r, th.Panel)
			strokeRect(dst, r, th.PanelBorder)
			return
		}
	}
	for i, cell := range nineSlice(r, panelCorner) {
		if cell.W <= 0 || cell.H <= 0 {
			continue
		}
		b := tiles[i].Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(cell.W/float64(b.Dx()), cell.H/float64(b.Dy()))
		op.GeoM.Translate(cell.X, cell.Y)
		if th == DarkTheme {
			op.ColorScale.Scale(0.45, 0.45, 0.5, 1)
		}
		dst.DrawImage(tiles[i], op)
	}
}

// drawIcon fits the named sprite into a size x size box at (x, y).
func drawIcon(dst *ebiten.Image, sprites Sprites, name string, x, y, size float64) bool {
	img := sprites.Get(name)
	if img == nil {
		return false
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
	return true
}

func drawLabel(dst *ebiten.Image, face text.Face, msg string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, msg, face, op)
}

func (l Layout) DrawShopTab(dst *ebiten.Image, th Theme, sprites Sprites, face text.Face) {
	r := l.ShopTab
	drawPanel(dst, r, th, sprites)
	icon := r.H - 6
	if !drawIcon(dst, sprites, "Package", r.X+3, r.Y+3, icon) {
		fillRect(dst, Rect{X: r.X + 3, Y: r.Y + 3, W: icon, H: icon}, th.Accent)
	}
	drawLabel(dst, face, "SHOP", r.X+icon+7, r.Y+r.H/2, th.Text)
}

func (l Layout) DrawTimePanel(dst *ebiten.Image, clock string, th Theme, sprites Sprites, face text.Face) {
	r := l.TimePanel
	drawPanel(dst, r, th, sprites)
	icon := r.H * 0.6
	iy := r.Y + (r.H-icon)/2
	if !drawIcon(dst, sprites, "Clock_1_black", r.X+4, iy, icon) {
		vector.StrokeCircle(dst, float32(r.X+4+icon/2), float32(iy+icon/2), float32(icon/2), 1, th.Text, true)
	}
	drawLabel(dst, face, clock, r.X+icon+8, r.Y+r.H/2, th.Text)
}

func (s *Sidebar) Draw(dst *ebiten.Image, now float64, th Theme, sprites Sprites, face text.Face) {
	if s.State(now) == SidebarHidden {
		return
	}
	drawPanel(dst, s.Bounds(now), th, sprites)

	cb := s.CloseButton(now)
	if !drawIcon(dst, sprites, "Close", cb.X, cb.Y, cb.W) {
		fillRect(dst, cb, th.Accent)
		vector.StrokeLine(dst, float32(cb.X+3), float32(cb.Y+3), float32(cb.X+cb.W-3), float32(cb.Y+cb.H-3), 2, th.Text, false)
		vector.StrokeLine(dst, float32(cb.X+cb.W-3), float32(cb.Y+3), float32(cb.X+3), float32(cb.Y+cb.H-3), 2, th.Text, false)
	}
	drawLabel(dst, face, "SHOP", s.X(now)+sidebarMargin, 11, th.Text)

	for i := 0; i < s.TileCount(); i++ {
		r := s.Tile(now, i)
		fillRect(dst, r, th.Tile)
		strokeRect(dst, r, th.PanelBorder)
		drawLabel(dst, face, ShopItems[i], r.X+2, r.Y+r.H-7, th.PanelBorder)
	}
}

// Draw renders the bubble with its tail at (x, y) in screen space.
func (b *Bubble) Draw(dst *ebiten.Image, now, x, y, scale float64, sprites Sprites) {
	if !b.shown {
		return
	}
	alpha := float32(b.Alpha(now))
	if alpha <= 0 {
		return
	}

	bubble := sprites.Get("ChatBubble_white")
	heart := sprites.Get("heart")
	if bubble == nil || heart == nil {
		// Vector fallback: white puff with a red heart.
		r := float32(9 * scale)
		cx, cy := float32(x), float32(y)-r
		white := color.RGBA{0xff, 0xff, 0xff, 0xff}
		red := color.RGBA{0xe0, 0x30, 0x40, 0xff}
		white = scaleAlpha(white, alpha)
		red = scaleAlpha(red, alpha)
		vector.DrawFilledCircle(dst, cx, cy, r, white, true)
		vector.DrawFilledCircle(dst, cx-r*0.6, cy+r*0.9, r*0.25, white, true)
		vector.DrawFilledCircle(dst, cx-r*0.3, cy-r*0.1, r*0.3, red, true)
		vector.DrawFilledCircle(dst, cx+r*0.3, cy-r*0.1, r*0.3, red, true)
		vector.DrawFilledRect(dst, cx-r*0.35, cy, r*0.7, r*0.15, red, true)
		vector.DrawFilledCircle(dst, cx, cy+r*0.3, r*0.25, red, true)
		return
	}

	for _, img := range []*ebiten.Image{bubble, heart} {
		bw, bh := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-bw/2, -bh)
		op.GeoM.Scale(scale*0.5, scale*0.5)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleAlpha(alpha)
		dst.DrawImage(img, op)
	}
}

func scaleAlpha(c color.RGBA, a float32) color.RGBA {
	// color.RGBA is premultiplied.
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
