// Package input recognises taps, pans and pinches from raw pointer samples.
package input

import "math"

type Kind int

const (
	Tap Kind = iota
	Pan
	Pinch
)

type Phase int

const (
	Began Phase = iota
	Changed
	Ended
)

type Gesture struct {
	Kind  Kind
	Phase Phase

	// X, Y is the tap point, the pan pointer or the pinch focal point.
	X, Y float64
	// DX, DY is the pan translation since Began.
	DX, DY float64
	// Scale is the pinch scale since Began.
	Scale float64
}

type Pointer struct {
	ID   int
	X, Y float64
}

// Sample is the pointer state for one tick.
type Sample struct {
	Pointers         []Pointer
	Wheel            float64
	CursorX, CursorY float64
}

const (
	DefaultSlop      = 4
	DefaultWheelStep = 0.1
)

type Recognizer struct {
	Slop      float64
	WheelStep float64

	tracking     bool
	dragging     bool
	suppress     bool
	startX       float64
	startY       float64
	lastX, lastY float64

	pinching  bool
	startDist float64
}

func NewRecognizer(slop, wheelStep float64) *Recognizer {
	if slop <= 0 {
		slop = DefaultSlop
	}
	if wheelStep <= 0 {
		wheelStep = DefaultWheelStep
	}
	return &Recognizer{Slop: slop, WheelStep: wheelStep}
}

func dist(a, b Pointer) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Feed consumes one tick of input and returns the gestures it completes or
// advances, in order.
func (r *Recognizer) Feed(s Sample) []Gesture {
	var out []Gesture

	if s.Wheel != 0 {
		scale := 1 + r.WheelStep*s.Wheel
		if scale < 0.1 {
			scale = 0.1
		}
		out = append(out,
			Gesture{Kind: Pinch, Phase: Began, X: s.CursorX, Y: s.CursorY, Scale: 1},
			Gesture{Kind: Pinch, Phase: Changed, X: s.CursorX, Y: s.CursorY, Scale: scale},
			Gesture{Kind: Pinch, Phase: Ended, X: s.CursorX, Y: s.CursorY, Scale: scale},
		)
	}

	switch n := len(s.Pointers); {
	case n >= 2:
		a, b := s.Pointers[0], s.Pointers[1]
		fx, fy := (a.X+b.X)/2, (a.Y+b.Y)/2
		if !r.pinching {
			if r.dragging {
				out = append(out, r.pan(Ended))
			}
			r.pinching = true
			r.tracking = false
			r.dragging = false
			r.suppress = true
			r.startDist = dist(a, b)
			out = append(out, Gesture{Kind: Pinch, Phase: Began, X: fx, Y: fy, Scale: 1})
			break
		}
		scale := 1.0
		if r.startDist > 0 {
			scale = dist(a, b) / r.startDist
		}
		out = append(out, Gesture{Kind: Pinch, Phase: Changed, X: fx, Y: fy, Scale: scale})

	case n == 1:
		if r.pinching {
			r.pinching = false
			out = append(out, Gesture{Kind: Pinch, Phase: Ended, X: s.Pointers[0].X, Y: s.Pointers[0].Y})
		}
		if r.suppress {
			break
		}
		p := s.Pointers[0]
		if !r.tracking {
			r.tracking = true
			r.startX, r.startY = p.X, p.Y
			r.lastX, r.lastY = p.X, p.Y
			break
		}
		moved := p.X != r.lastX || p.Y != r.lastY
		r.lastX, r.lastY = p.X, p.Y
		if !r.dragging && math.Hypot(p.X-r.startX, p.Y-r.startY) > r.Slop {
			r.dragging = true
			out = append(out, r.pan(Began), r.pan(Changed))
			break
		}
		if r.dragging && moved {
			out = append(out, r.pan(Changed))
		}

	default:
		switch {
		case r.pinching:
			out = append(out, Gesture{Kind: Pinch, Phase: Ended, X: r.lastX, Y: r.lastY})
		case r.dragging:
			out = append(out, r.pan(Ended))
		case r.tracking && !r.suppress:
			out = append(out, Gesture{Kind: Tap, Phase: Ended, X: r.lastX, Y: r.lastY})
		}
		r.tracking = false
		r.dragging = false
		r.pinching = false
		r.suppress = false
	}

	return out
}

func (r *Recognizer) pan(phase Phase) Gesture {
	return Gesture{
		Kind:  Pan,
		Phase: phase,
		X:     r.lastX,
		Y:     r.lastY,
		DX:    r.lastX - r.startX,
		DY:    r.lastY - r.startY,
	}
}
