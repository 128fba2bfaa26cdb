// Package daylight maps the wall-clock hour to the scene's lighting preset.
package daylight

import "image/color"

type Bucket int

const (
	Morning Bucket = iota
	Day
	Evening
	Night
)

func (b Bucket) String() string {
	switch b {
	case Morning:
		return "morning"
	case Day:
		return "day"
	case Evening:
		return "evening"
	case Night:
		return "night"
	}
	return "unknown"
}

type TimeConfig struct {
	Bucket        Bucket
	LightColor    color.NRGBA
	AmbientColor  color.NRGBA
	DarknessAlpha float64
	LampEnabled   bool
	LampColor     color.NRGBA
	SkyColors     [2]color.NRGBA // top, bottom
}

// BucketFor normalises hour into 0..23 first.
func BucketFor(hour int) Bucket {
	hour %= 24
	if hour < 0 {
		hour += 24
	}
	switch {
	case hour >= 6 && hour <= 8:
		return Morning
	case hour >= 9 && hour <= 17:
		return Day
	case hour >= 18 && hour <= 20:
		return Evening
	default:
		return Night
	}
}

func Resolve(hour int) TimeConfig {
	return presets[BucketFor(hour)]
}

func rgb(r, g, b float64) color.NRGBA {
	return color.NRGBA{R: unit(r), G: unit(g), B: unit(b), A: 0xff}
}

func unit(v float64) uint8 {
	return uint8(v*255 + 0.5)
}

var (
	white       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	transparent = color.NRGBA{}
	lampGlow    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: unit(0.8)}
)

var presets = map[Bucket]TimeConfig{
	Morning: {
		Bucket:        Morning,
		LightColor:    rgb(1.0, 0.8, 0.6),
		AmbientColor:  rgb(0.8, 0.8, 1.0),
		DarknessAlpha: 0,
		LampEnabled:   false,
		LampColor:     transparent,
		SkyColors:     [2]color.NRGBA{rgb(1.0, 0.6, 0.4), rgb(0.8, 0.8, 1.0)},
	},
	Day: {
		Bucket:        Day,
		LightColor:    white,
		AmbientColor:  white,
		DarknessAlpha: 0,
		LampEnabled:   false,
		LampColor:     transparent,
		SkyColors:     [2]color.NRGBA{rgb(0.4, 0.7, 1.0), rgb(0.8, 0.9, 1.0)},
	},
	Evening: {
		Bucket:        Evening,
		LightColor:    rgb(0.8, 0.5, 1.0),
		AmbientColor:  rgb(0.4, 0.4, 0.8),
		DarknessAlpha: 0.3,
		LampEnabled:   true,
		LampColor:     lampGlow,
		SkyColors:     [2]color.NRGBA{rgb(0.8, 0.5, 1.0), rgb(0.2, 0.2, 0.5)},
	},
	Night: {
		Bucket:        Night,
		LightColor:    rgb(0.2, 0.2, 0.4),
		AmbientColor:  rgb(0.1, 0.1, 0.2),
		DarknessAlpha: 0.6,
		LampEnabled:   true,
		LampColor:     lampGlow,
		SkyColors:     [2]color.NRGBA{rgb(0.1, 0.1, 0.2), rgb(0, 0, 0)},
	},
}

// Watcher remembers the last hour it was shown and only reports changes.
type Watcher struct {
	last int
	seen bool
}

// Observe returns the preset for hour and whether it differs from the last
// observed hour. The first call always reports a change.
func (w *Watcher) Observe(hour int) (TimeConfig, bool) {
	if w.seen && w.last == hour {
		return TimeConfig{}, false
	}
	w.seen = true
	w.last = hour
	return Resolve(hour), true
}

func (w *Watcher) Hour() int { return w.last }
