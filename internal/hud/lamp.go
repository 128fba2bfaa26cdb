package hud

import (
	"image/color"

	"critters/internal/daylight"
)

// Lamp is the street lamp's light. The time of day decides whether it may
// shine; tapping the post switches it on and off.
type Lamp struct {
	Enabled bool
	Color   color.NRGBA
	On      bool
}

func NewLamp() *Lamp {
	return &Lamp{On: true}
}

func (l *Lamp) Apply(cfg daylight.TimeConfig) {
	l.Enabled = cfg.LampEnabled
	if l.Enabled {
		l.Color = cfg.LampColor
	}
}

func (l *Lamp) Toggle() { l.On = !l.On }

func (l *Lamp) Lit() bool { return l.Enabled && l.On }

// Glow is the light the lamp casts, fully transparent while it is dark.
func (l *Lamp) Glow() color.NRGBA {
	if !l.Lit() {
		return color.NRGBA{}
	}
	return l.Color
}
