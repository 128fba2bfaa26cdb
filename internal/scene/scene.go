// Package scene holds the backdrop the critter lives in: sky, ground, props,
// drifting clouds and time-of-day lighting.
package scene

import (
	"image/color"
	"math"
	"math/rand"

	"critters/internal/anim"
	"critters/internal/config"
	"critters/internal/daylight"
)

const columnWidth = 10

var (
	dirtColors = []color.NRGBA{
		{R: 158, G: 69, B: 56, A: 0xff},
		{R: 140, G: 60, B: 48, A: 0xff},
		{R: 170, G: 80, B: 60, A: 0xff},
		{R: 145, G: 65, B: 50, A: 0xff},
	}
	grassColors = []color.NRGBA{
		{R: 34, G: 144, B: 98, A: 0xff},
		{R: 30, G: 130, B: 90, A: 0xff},
		{R: 40, G: 150, B: 110, A: 0xff},
	}
)

// Column is one 10px strip of ground.
type Column struct {
	X     float64
	Grass color.NRGBA
	Dirt  color.NRGBA
}

// Prop is a sprite standing on the ground line, centred on X.
type Prop struct {
	Name string
	X    float64
	W, H float64
}

// Box returns the prop's rectangle for a ground line at groundY.
func (p Prop) Box(groundY float64) (x, y, w, h float64) {
	return p.X - p.W/2, groundY - p.H, p.W, p.H
}

type Cloud struct {
	X, Y float64
	W, H float64

	origin float64
}

type Scene struct {
	Width, Height float64
	GroundY       float64

	Columns []Column
	Props   []Prop // back to front
	Tufts   []Prop
	Lamp    Prop
	Clouds  []Cloud

	LampRadius float64

	cloudSpeed float64
	cloudClock float64
	darkness   anim.Tween
	fade       float64
	light      daylight.TimeConfig

	// rendering caches, rebuilt lazily in Draw
	sky      *skyCache
	glow     *glowCache
	skyStale bool
}

func New(cfg config.Config, rng *rand.Rand) *Scene {
	w := float64(cfg.World.Width)
	h := float64(cfg.World.Height)
	s := &Scene{
		Width:      w,
		Height:     h,
		GroundY:    h - cfg.Scenery.GrassHeight,
		LampRadius: cfg.Lighting.LampRadius,
		fade:       cfg.Lighting.DarknessFade,
		darkness:   anim.NewTween(0),
		skyStale:   true,
		light:      daylight.Resolve(12),
	}
	if cfg.Scenery.CloudPeriod > 0 {
		s.cloudSpeed = (w + 200) / cfg.Scenery.CloudPeriod
	}

	for i := 0; i < cfg.World.Width/columnWidth; i++ {
		s.Columns = append(s.Columns, Column{
			X:     float64(i * columnWidth),
			Grass: grassColors[rng.Intn(len(grassColors))],
			Dirt:  dirtColors[rng.Intn(len(dirtColors))],
		})
	}

	s.Props = append(s.Props, Prop{Name: "Mountain_medium_snowy_2", X: w / 2, W: 120, H: 60})
	for _, x := range cfg.Scenery.TreePositions {
		s.Props = append(s.Props, Prop{Name: "tree", X: x, W: 40, H: 64})
	}
	for i := 0; i < 3; i++ {
		x := float64(80 + i*100)
		if x > w {
			break
		}
		s.Tufts = append(s.Tufts, Prop{Name: "Grass_large_1", X: x, W: 16, H: 12})
	}
	s.Lamp = Prop{Name: "LampPost", X: w / 2, W: 12, H: 40}

	for i := 0; i < cfg.Scenery.CloudCount; i++ {
		x := -100 - float64(i*200)
		s.Clouds = append(s.Clouds, Cloud{X: x, Y: 20 + float64(i*25), W: 48, H: 20, origin: x})
	}
	return s
}

// ApplyTime starts the darkness fade toward the new preset and marks the sky
// for redraw.
func (s *Scene) ApplyTime(now float64, tc daylight.TimeConfig) {
	s.light = tc
	s.darkness.To(now, tc.DarknessAlpha, s.fade, anim.Linear)
	s.skyStale = true
}

func (s *Scene) Light() daylight.TimeConfig { return s.light }

func (s *Scene) Darkness(now float64) float64 { return s.darkness.Value(now) }

// Update drifts clouds right. Each cloud travels Width+200 px from where it
// started, then jumps back and repeats.
func (s *Scene) Update(dt float64) {
	if dt <= 0 {
		return
	}
	s.cloudClock += dt
	offset := math.Mod(s.cloudClock*s.cloudSpeed, s.Width+200)
	for i := range s.Clouds {
		s.Clouds[i].X = s.Clouds[i].origin + offset
	}
}

// LampContains reports whether the world point is on the lamp post.
func (s *Scene) LampContains(x, y float64) bool {
	lx, ly, lw, lh := s.Lamp.Box(s.GroundY)
	return x >= lx && x <= lx+lw && y >= ly && y <= ly+lh
}

// LampHead is the centre of the lamp's glow.
func (s *Scene) LampHead() (float64, float64) {
	return s.Lamp.X, s.GroundY - s.Lamp.H + 6
}

// shade multiplies c by tint channel-wise.
func shade(c, tint color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(uint16(c.R) * uint16(tint.R) / 0xff),
		G: uint8(uint16(c.G) * uint16(tint.G) / 0xff),
		B: uint8(uint16(c.B) * uint16(tint.B) / 0xff),
		A: c.A,
	}
}
