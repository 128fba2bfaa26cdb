package hud

import (
	"critters/internal/anim"
)

type SidebarState int

const (
	SidebarHidden  SidebarState = iota // Off screen to the left
	SidebarOpening                     // Sliding in
	SidebarOpen                        // Fully visible
	SidebarClosing                     // Sliding out
)

func (s SidebarState) String() string {
	switch s {
	case SidebarHidden:
		return "hidden"
	case SidebarOpening:
		return "opening"
	case SidebarOpen:
		return "open"
	case SidebarClosing:
		return "closing"
	}
	return "unknown"
}

// ShopItems fill the sidebar grid. There is nothing to buy.
var ShopItems = []string{
	"Yarn", "Fish", "Bed", "Bell", "Bowl", "Mouse",
	"Box", "Plant", "Hat", "Scarf", "Brush", "Ball",
}

type HitKind int

const (
	HitNone HitKind = iota
	HitPanel
	HitClose
	HitTile
)

type Hit struct {
	Kind HitKind
	Tile int
}

// Sidebar is the slide-out shop panel.
type Sidebar struct {
	Width    float64
	Height   float64
	Slide    float64
	Columns  int
	Rows     int
	TileSize float64

	left    anim.Tween // x of the panel's left edge
	opening bool
}

func NewSidebar(width, height, slide float64, columns, rows int, tileSize float64) *Sidebar {
	return &Sidebar{
		Width:    width,
		Height:   height,
		Slide:    slide,
		Columns:  columns,
		Rows:     rows,
		TileSize: tileSize,
		left:     anim.NewTween(-width),
	}
}

func (s *Sidebar) Open(now float64) {
	s.opening = true
	s.left.To(now, 0, s.Slide, anim.EaseInOut)
}

func (s *Sidebar) Close(now float64) {
	s.opening = false
	s.left.To(now, -s.Width, s.Slide, anim.EaseInOut)
}

func (s *Sidebar) State(now float64) SidebarState {
	moving := !s.left.Done(now)
	switch {
	case s.opening && moving:
		return SidebarOpening
	case s.opening:
		return SidebarOpen
	case moving:
		return SidebarClosing
	default:
		return SidebarHidden
	}
}

func (s *Sidebar) X(now float64) float64 { return s.left.Value(now) }

func (s *Sidebar) Bounds(now float64) Rect {
	return Rect{X: s.X(now), W: s.Width, H: s.Height}
}

const sidebarMargin = 8

func (s *Sidebar) CloseButton(now float64) Rect {
	const size = 14
	return Rect{X: s.X(now) + s.Width - size - 4, Y: 4, W: size, H: size}
}

// Tile is the rectangle of grid cell i, row-major.
func (s *Sidebar) Tile(now float64, i int) Rect {
	col := i % s.Columns
	row := i / s.Columns
	gap := (s.Width - 2*sidebarMargin - float64(s.Columns)*s.TileSize) / float64(max(s.Columns-1, 1))
	if gap < 0 {
		gap = 0
	}
	return Rect{
		X: s.X(now) + sidebarMargin + float64(col)*(s.TileSize+gap),
		Y: 24 + float64(row)*(s.TileSize+4),
		W: s.TileSize,
		H: s.TileSize,
	}
}

func (s *Sidebar) TileCount() int {
	n := s.Columns * s.Rows
	if n > len(ShopItems) {
		n = len(ShopItems)
	}
	return n
}

// HitTest resolves a screen point against the panel. Hidden panels hit nothing.
func (s *Sidebar) HitTest(now, x, y float64) Hit {
	if s.State(now) == SidebarHidden {
		return Hit{}
	}
	if !s.Bounds(now).Contains(x, y) {
		return Hit{}
	}
	if s.CloseButton(now).Contains(x, y) {
		return Hit{Kind: HitClose}
	}
	for i := 0; i < s.TileCount(); i++ {
		if s.Tile(now, i).Contains(x, y) {
			return Hit{Kind: HitTile, Tile: i}
		}
	}
	return Hit{Kind: HitPanel}
}
