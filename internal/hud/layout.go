package hud

import (
	"image/color"
	"time"
)

// Layout places the fixed screen-space widgets.
type Layout struct {
	ShopTab   Rect
	TimePanel Rect
}

func NewLayout(screenW, screenH float64) Layout {
	return Layout{
		ShopTab:   Rect{X: 8, Y: 8, W: 56, H: 18},
		TimePanel: Rect{X: screenW - 80 - 8, Y: 8, W: 80, H: 18},
	}
}

// FormatClock renders t as "hh:mm AM".
func FormatClock(t time.Time) string {
	return t.Format("03:04 PM")
}

type Theme struct {
	Panel       color.RGBA
	PanelBorder color.RGBA
	Text        color.RGBA
	Tile        color.RGBA
	Accent      color.RGBA
}

var (
	LightTheme = Theme{
		Panel:       color.RGBA{0x9a, 0x9a, 0xa4, 0xe6},
		PanelBorder: color.RGBA{0x4a, 0x4a, 0x52, 0xff},
		Text:        color.RGBA{0xff, 0xff, 0xff, 0xff},
		Tile:        color.RGBA{0xc8, 0xc8, 0xd0, 0xff},
		Accent:      color.RGBA{0xff, 0x6b, 0x6b, 0xff},
	}
	DarkTheme = Theme{
		Panel:       color.RGBA{0x2d, 0x2d, 0x33, 0xe6},
		PanelBorder: color.RGBA{0x10, 0x10, 0x14, 0xff},
		Text:        color.RGBA{0xe0, 0xe0, 0xe8, 0xff},
		Tile:        color.RGBA{0x45, 0x45, 0x50, 0xff},
		Accent:      color.RGBA{0xff, 0x8f, 0x6b, 0xff},
	}
)

func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}
