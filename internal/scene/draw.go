package scene

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"critters/internal/entity"
)

// Sprites looks up a loaded image by asset name, nil if missing.
type Sprites interface {
	Get(name string) *ebiten.Image
}

var (
	catOrange = color.NRGBA{R: 0xf0, G: 0x98, B: 0x40, A: 0xff}
	catDark   = color.NRGBA{R: 0xb8, G: 0x60, B: 0x20, A: 0xff}
	catEye    = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	trunk     = color.NRGBA{R: 0x6b, G: 0x44, B: 0x23, A: 0xff}
	leaves    = color.NRGBA{R: 0x2e, G: 0x7d, B: 0x4f, A: 0xff}
	rock      = color.NRGBA{R: 0x70, G: 0x76, B: 0x88, A: 0xff}
	snow      = color.NRGBA{R: 0xf4, G: 0xf6, B: 0xff, A: 0xff}
	cloudFill = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe0}
	iron      = color.NRGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xff}
	bulb      = color.NRGBA{R: 0xff, G: 0xe8, B: 0xa0, A: 0xff}
)

type skyCache struct {
	img *ebiten.Image
}

type glowCache struct {
	img    *ebiten.Image
	radius int
}

// skyPixels is a 1 x h RGBA column blending top into bottom.
func skyPixels(top, bottom color.NRGBA, h int) []byte {
	pix := make([]byte, 4*h)
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		pix[4*y] = lerp8(top.R, bottom.R, t)
		pix[4*y+1] = lerp8(top.G, bottom.G, t)
		pix[4*y+2] = lerp8(top.B, bottom.B, t)
		pix[4*y+3] = 0xff
	}
	return pix
}

// glowPixels is a premultiplied white disc of the given radius whose alpha
// falls off toward the rim.
func glowPixels(radius int) []byte {
	size := 2 * radius
	pix := make([]byte, 4*size*size)
	r := float64(radius)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			d := math.Hypot(dx, dy) / r
			if d >= 1 {
				continue
			}
			a := uint8(255 * math.Pow(1-d, 1.2))
			i := 4 * (y*size + x)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = a, a, a, a
		}
	}
	return pix
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func tint(cs *ebiten.ColorScale, c color.NRGBA) {
	cs.Scale(float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, 1)
}

// drawFitted stretches img over the box, mirrored horizontally when flip is set.
func drawFitted(dst, img *ebiten.Image, x, y, w, h float64, clr color.NRGBA, flip bool) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	op.GeoM.Translate(x, y)
	tint(&op.ColorScale, clr)
	dst.DrawImage(img, op)
}

func rect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func circle(dst *ebiten.Image, x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), clr, true)
}

// Draw renders the world at world coordinates onto dst.
// A lamp colour with zero alpha draws no glow.
func (s *Scene) Draw(dst *ebiten.Image, now float64, c *entity.Critter, critterScale float64, lamp color.NRGBA, sprites Sprites) {
	s.drawSky(dst)
	s.drawClouds(dst, sprites)

	ambient := s.light.AmbientColor
	for _, p := range s.Props {
		s.drawProp(dst, p, ambient, sprites)
	}
	s.drawGround(dst, ambient)
	for _, p := range s.Tufts {
		s.drawProp(dst, p, ambient, sprites)
	}
	s.drawProp(dst, s.Lamp, ambient, sprites)
	if c != nil {
		drawCritter(dst, c, critterScale, ambient, sprites)
	}

	if a := s.Darkness(now); a > 0 {
		rect(dst, 0, 0, s.Width, s.Height, color.NRGBA{A: uint8(255 * math.Min(a, 1))})
	}
	if lamp.A > 0 {
		s.drawGlow(dst, lamp)
	}
}

func (s *Scene) drawSky(dst *ebiten.Image) {
	h := int(s.Height)
	if s.sky == nil {
		s.sky = &skyCache{img: ebiten.NewImage(1, h)}
	}
	if s.skyStale {
		s.sky.img.WritePixels(skyPixels(s.light.SkyColors[0], s.light.SkyColors[1], h))
		s.skyStale = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.Width, 1)
	dst.DrawImage(s.sky.img, op)
}

func (s *Scene) drawClouds(dst *ebiten.Image, sprites Sprites) {
	img := sprites.Get("cloud")
	for _, c := range s.Clouds {
		if img != nil {
			drawFitted(dst, img, c.X, c.Y, c.W, c.H, s.light.LightColor, false)
			continue
		}
		fill := shade(cloudFill, s.light.LightColor)
		r := c.H / 2
		circle(dst, c.X+r, c.Y+r*1.2, r*0.8, fill)
		circle(dst, c.X+c.W/2, c.Y+r, r, fill)
		circle(dst, c.X+c.W-r, c.Y+r*1.2, r*0.8, fill)
		rect(dst, c.X+r, c.Y+r, c.W-2*r, r, fill)
	}
}

func (s *Scene) drawGround(dst *ebiten.Image, ambient color.NRGBA) {
	grassBand := (s.Height - s.GroundY) / 5
	for _, col := range s.Columns {
		rect(dst, col.X, s.GroundY, columnWidth, grassBand, shade(col.Grass, ambient))
		rect(dst, col.X, s.GroundY+grassBand, columnWidth, s.Height-s.GroundY-grassBand, shade(col.Dirt, ambient))
	}
}

func (s *Scene) drawProp(dst *ebiten.Image, p Prop, ambient color.NRGBA, sprites Sprites) {
	x, y, w, h := p.Box(s.GroundY)
	if img := sprites.Get(p.Name); img != nil {
		drawFitted(dst, img, x, y, w, h, ambient, false)
		return
	}
	switch p.Name {
	case "Mountain_medium_snowy_2":
		// Stepped pixel-art peak.
		const step = 4.0
		for row := 0.0; row < h; row += step {
			rw := w * (row + step) / h
			clr := rock
			if row < h/4 {
				clr = snow
			}
			rect(dst, p.X-rw/2, y+row, rw, step, shade(clr, ambient))
		}
	case "tree":
		rect(dst, p.X-w/10, y+h*0.55, w/5, h*0.45, shade(trunk, ambient))
		circle(dst, p.X, y+h*0.35, w*0.45, shade(leaves, ambient))
		circle(dst, p.X-w*0.2, y+h*0.5, w*0.3, shade(leaves, ambient))
		circle(dst, p.X+w*0.2, y+h*0.5, w*0.3, shade(leaves, ambient))
	case "Grass_large_1":
		for i := 0.0; i < 4; i++ {
			bx := x + i*w/4
			rect(dst, bx, y+h*(0.2+0.15*math.Mod(i, 2)), 2, h, shade(grassColors[int(i)%len(grassColors)], ambient))
		}
	case "LampPost":
		rect(dst, p.X-1.5, y+6, 3, h-6, shade(iron, ambient))
		rect(dst, p.X-w/2, y+h-3, w, 3, shade(iron, ambient))
		rect(dst, p.X-w/3, y, w*2/3, 8, shade(iron, ambient))
		rect(dst, p.X-w/4, y+2, w/2, 4, bulb)
	}
}

// drawCritter draws the sprite with its bottom centre on the critter position.
func drawCritter(dst *ebiten.Image, c *entity.Critter, scale float64, ambient color.NRGBA, sprites Sprites) {
	st := c.State
	flip := st.Facing == entity.FacingLeft
	if img := sprites.Get(st.SpriteName()); img != nil {
		b := img.Bounds()
		w, h := float64(b.Dx())*scale, float64(b.Dy())*scale
		drawFitted(dst, img, st.X-w/2, st.Y-h, w, h, ambient, flip)
		return
	}

	dir := 1.0
	if flip {
		dir = -1
	}
	body := shade(catOrange, ambient)
	dark := shade(catDark, ambient)
	x, y := st.X, st.Y
	u := c.Height / 16

	// Legs step on odd walk frames.
	lift := 0.0
	if st.Motion == entity.Walking && st.FrameIndex%2 == 1 {
		lift = u
	}
	rect(dst, x-5*u, y-3*u, 2*u, 3*u-lift, dark)
	rect(dst, x+3*u, y-3*u+lift, 2*u, 3*u-lift, dark)

	rect(dst, x-6*u, y-8*u, 12*u, 6*u, body)
	vector.StrokeLine(dst, float32(x-dir*6*u), float32(y-6*u), float32(x-dir*9*u), float32(y-11*u), float32(1.5*u), dark, true)

	// Idle frames breathe by bobbing the head.
	bob := 0.0
	if st.Motion == entity.Idle && st.FrameIndex == 1 {
		bob = u / 2
	}
	hx, hy := x+dir*5*u, y-10*u+bob
	circle(dst, hx, hy, 4*u, body)
	rect(dst, hx-3.5*u, hy-5.5*u, 2*u, 2.5*u, dark)
	rect(dst, hx+1.5*u, hy-5.5*u, 2*u, 2.5*u, dark)
	circle(dst, hx+dir*1.5*u, hy-0.5*u, 0.7*u, catEye)
	circle(dst, hx-dir*1.2*u, hy-0.5*u, 0.7*u, catEye)
}

func (s *Scene) drawGlow(dst *ebiten.Image, lamp color.NRGBA) {
	r := int(s.LampRadius)
	if r <= 0 {
		return
	}
	if s.glow == nil || s.glow.radius != r {
		img := ebiten.NewImage(2*r, 2*r)
		img.WritePixels(glowPixels(r))
		s.glow = &glowCache{img: img, radius: r}
	}
	cx, cy := s.LampHead()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(r), cy-float64(r))
	op.ColorScale.ScaleWithColor(lamp)
	op.Blend = ebiten.BlendLighter
	dst.DrawImage(s.glow.img, op)
}
