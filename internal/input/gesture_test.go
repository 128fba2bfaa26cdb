package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func one(x, y float64) Sample {
	return Sample{Pointers: []Pointer{{ID: 1, X: x, Y: y}}}
}

func two(ax, ay, bx, by float64) Sample {
	return Sample{Pointers: []Pointer{{ID: 1, X: ax, Y: ay}, {ID: 2, X: bx, Y: by}}}
}

func kinds(gs []Gesture) []Kind {
	var out []Kind
	for _, g := range gs {
		out = append(out, g.Kind)
	}
	return out
}

func TestRecognizer_Tap(t *testing.T) {
	r := NewRecognizer(0, 0)
	assert.Empty(t, r.Feed(one(10, 20)))
	assert.Empty(t, r.Feed(one(12, 21)))

	gs := r.Feed(Sample{})
	require.Len(t, gs, 1)
	assert.Equal(t, Tap, gs[0].Kind)
	assert.Equal(t, 12.0, gs[0].X)
	assert.Equal(t, 21.0, gs[0].Y)
}

func TestRecognizer_PanPastSlop(t *testing.T) {
	r := NewRecognizer(4, 0)
	r.Feed(one(10, 10))

	gs := r.Feed(one(20, 10))
	require.Len(t, gs, 2)
	assert.Equal(t, Began, gs[0].Phase)
	assert.Equal(t, Changed, gs[1].Phase)
	assert.Equal(t, 10.0, gs[1].DX)

	assert.Empty(t, r.Feed(one(20, 10)), "no change without movement")

	gs = r.Feed(one(25, 4))
	require.Len(t, gs, 1)
	assert.Equal(t, 15.0, gs[0].DX)
	assert.Equal(t, -6.0, gs[0].DY)

	gs = r.Feed(Sample{})
	require.Len(t, gs, 1)
	assert.Equal(t, Pan, gs[0].Kind)
	assert.Equal(t, Ended, gs[0].Phase)
}

func TestRecognizer_TwoFingerPinch(t *testing.T) {
	r := NewRecognizer(0, 0)

	gs := r.Feed(two(100, 100, 140, 100))
	require.Len(t, gs, 1)
	assert.Equal(t, Pinch, gs[0].Kind)
	assert.Equal(t, Began, gs[0].Phase)
	assert.Equal(t, 120.0, gs[0].X)

	gs = r.Feed(two(80, 100, 160, 100))
	require.Len(t, gs, 1)
	assert.Equal(t, Changed, gs[0].Phase)
	assert.InDelta(t, 2.0, gs[0].Scale, 1e-9)

	// Lifting one finger ends the pinch and never produces a tap.
	gs = r.Feed(one(80, 100))
	assert.Equal(t, []Kind{Pinch}, kinds(gs))
	assert.Equal(t, Ended, gs[0].Phase)
	assert.Empty(t, r.Feed(one(90, 100)))
	assert.Empty(t, r.Feed(Sample{}))
}

func TestRecognizer_PanInterruptedByPinch(t *testing.T) {
	r := NewRecognizer(4, 0)
	r.Feed(one(0, 0))
	r.Feed(one(10, 0))

	gs := r.Feed(two(10, 0, 50, 0))
	assert.Equal(t, []Kind{Pan, Pinch}, kinds(gs))
	assert.Equal(t, Ended, gs[0].Phase)
	assert.Equal(t, Began, gs[1].Phase)
}

func TestRecognizer_WheelIsDiscretePinch(t *testing.T) {
	r := NewRecognizer(0, 0.1)
	gs := r.Feed(Sample{Wheel: 2, CursorX: 30, CursorY: 40})
	require.Len(t, gs, 3)
	assert.Equal(t, []Phase{Began, Changed, Ended}, []Phase{gs[0].Phase, gs[1].Phase, gs[2].Phase})
	assert.InDelta(t, 1.2, gs[1].Scale, 1e-9)
	assert.Equal(t, 30.0, gs[1].X)

	gs = r.Feed(Sample{Wheel: -50})
	assert.Equal(t, 0.1, gs[1].Scale)
}
