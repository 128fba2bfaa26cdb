// Package viewport turns pinch and pan gestures into a clamped world transform.
//
// The world is drawn at Scale and offset by (X, Y) in screen pixels, so X and
// Y are always <= 0: the top-left of the world never moves right of or below
// the top-left of the view.
package viewport

type Size struct {
	W, H float64
}

type State struct {
	Scale float64
	X, Y  float64
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampScale bounds a zoom level.
func ClampScale(scale, minZoom, maxZoom float64) float64 {
	return clampF(scale, minZoom, maxZoom)
}

// MaxPan is how far the scaled world can slide on each axis.
func MaxPan(scale float64, world, view Size) (float64, float64) {
	mx := world.W*scale - view.W
	my := world.H*scale - view.H
	if mx < 0 {
		mx = 0
	}
	if my < 0 {
		my = 0
	}
	return mx, my
}

// ClampPosition keeps the view rectangle inside the scaled world.
func ClampPosition(s State, world, view Size) State {
	mx, my := MaxPan(s.Scale, world, view)
	s.X = -clampF(-s.X, 0, mx)
	s.Y = -clampF(-s.Y, 0, my)
	return s
}

type Viewport struct {
	State   State
	World   Size
	View    Size
	MinZoom float64
	MaxZoom float64

	initialScale float64
	panStartX    float64
	panStartY    float64
	panning      bool
}

func New(world, view Size, minZoom, maxZoom float64) *Viewport {
	return &Viewport{
		State:        State{Scale: minZoom},
		World:        world,
		View:         view,
		MinZoom:      minZoom,
		MaxZoom:      maxZoom,
		initialScale: minZoom,
	}
}

func (v *Viewport) BeginPinch() {
	v.initialScale = v.State.Scale
}

// Pinch applies a cumulative gesture scale relative to the scale captured by
// BeginPinch, keeping the world point under (ax, ay) fixed on screen.
func (v *Viewport) Pinch(gestureScale, ax, ay float64) {
	newScale := ClampScale(v.initialScale*gestureScale, v.MinZoom, v.MaxZoom)
	if newScale <= v.MinZoom {
		// Back at the origin, but the gesture keeps its starting scale so
		// spreading the fingers again zooms back in.
		v.State = State{Scale: v.MinZoom}
		v.panStartX, v.panStartY = 0, 0
		return
	}

	old := v.State
	wx := (ax - old.X) / old.Scale
	wy := (ay - old.Y) / old.Scale
	next := State{
		Scale: newScale,
		X:     ax - wx*newScale,
		Y:     ay - wy*newScale,
	}
	v.State = ClampPosition(next, v.World, v.View)

	// A pan in flight continues from the adjusted position.
	if v.panning {
		v.panStartX = v.State.X
		v.panStartY = v.State.Y
	}
}

func (v *Viewport) EndPinch() {
	v.initialScale = v.State.Scale
}

// CanPan is false at minimum zoom, where the whole world is visible.
func (v *Viewport) CanPan() bool {
	return v.State.Scale > v.MinZoom
}

func (v *Viewport) BeginPan() {
	v.panning = true
	v.panStartX = v.State.X
	v.panStartY = v.State.Y
}

// Pan moves by the cumulative translation since BeginPan.
func (v *Viewport) Pan(tx, ty float64) {
	if !v.panning || !v.CanPan() {
		return
	}
	next := v.State
	next.X = v.panStartX + tx
	next.Y = v.panStartY + ty
	v.State = ClampPosition(next, v.World, v.View)
}

func (v *Viewport) EndPan() {
	v.panning = false
}

// Reset returns to minimum zoom at the origin.
func (v *Viewport) Reset() {
	v.State = State{Scale: v.MinZoom}
	v.initialScale = v.MinZoom
	v.panStartX, v.panStartY = 0, 0
}

func (v *Viewport) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - v.State.X) / v.State.Scale, (sy - v.State.Y) / v.State.Scale
}

func (v *Viewport) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx*v.State.Scale + v.State.X, wy*v.State.Scale + v.State.Y
}
