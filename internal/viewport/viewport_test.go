package viewport

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViewport() *Viewport {
	size := Size{W: 320, H: 200}
	return New(size, size, 1, 2)
}

func TestPinch_ScaleExample(t *testing.T) {
	v := newTestViewport()

	v.BeginPinch()
	v.Pinch(1.5, 0, 0)
	v.EndPinch()
	assert.Equal(t, 1.5, v.State.Scale)

	v.BeginPinch()
	v.Pinch(1.5, 0, 0)
	v.EndPinch()
	assert.Equal(t, 2.0, v.State.Scale)
}

func TestPinch_IsCumulativeWithinOneGesture(t *testing.T) {
	v := newTestViewport()
	v.BeginPinch()
	v.Pinch(1.2, 160, 100)
	v.Pinch(1.4, 160, 100)
	assert.InDelta(t, 1.4, v.State.Scale, 1e-9)
}

func TestPinch_ReturningToMinResetsPosition(t *testing.T) {
	v := newTestViewport()
	v.BeginPinch()
	v.Pinch(2, 300, 180)
	require.Less(t, v.State.X, 0.0)
	require.Less(t, v.State.Y, 0.0)

	v.Pinch(0.3, 300, 180)
	assert.Equal(t, State{Scale: 1}, v.State)
}

func TestPinch_RecoversAfterTouchingMinWithinOneGesture(t *testing.T) {
	v := newTestViewport()
	v.BeginPinch()
	v.Pinch(1.5, 0, 0)
	v.EndPinch()
	require.Equal(t, 1.5, v.State.Scale)

	v.BeginPinch()
	v.Pinch(0.5, 160, 100)
	assert.Equal(t, State{Scale: 1}, v.State)

	v.Pinch(1.0, 0, 0)
	assert.Equal(t, 1.5, v.State.Scale, "scale is still relative to the gesture start")

	v.Pinch(1.3, 0, 0)
	assert.InDelta(t, 1.95, v.State.Scale, 1e-9)
	v.EndPinch()

	v.BeginPinch()
	v.Pinch(1.0, 0, 0)
	assert.InDelta(t, 1.95, v.State.Scale, 1e-9)
}

func TestPinch_AnchorStaysPut(t *testing.T) {
	v := newTestViewport()
	wx, wy := v.ScreenToWorld(100, 80)

	v.BeginPinch()
	v.Pinch(1.5, 100, 80)

	sx, sy := v.WorldToScreen(wx, wy)
	assert.InDelta(t, 100, sx, 1e-9)
	assert.InDelta(t, 80, sy, 1e-9)
}

func TestPan_IgnoredAtMinZoom(t *testing.T) {
	v := newTestViewport()
	v.BeginPan()
	v.Pan(-50, -50)
	v.EndPan()
	assert.Equal(t, State{Scale: 1}, v.State)
}

func TestPan_ClampsToWorld(t *testing.T) {
	v := newTestViewport()
	v.BeginPinch()
	v.Pinch(2, 0, 0)
	v.EndPinch()

	v.BeginPan()
	v.Pan(-1000, -1000)
	assert.Equal(t, -320.0, v.State.X)
	assert.Equal(t, -200.0, v.State.Y)

	v.Pan(1000, 1000)
	assert.Equal(t, 0.0, v.State.X)
	assert.Equal(t, 0.0, v.State.Y)

	v.Pan(-40, -30)
	assert.Equal(t, -40.0, v.State.X)
	assert.Equal(t, -30.0, v.State.Y)
	v.EndPan()

	// A new pan starts where the last one ended.
	v.BeginPan()
	v.Pan(-10, 0)
	assert.Equal(t, -50.0, v.State.X)
}

func TestClampPosition_SmallWorldPinsToOrigin(t *testing.T) {
	s := ClampPosition(State{Scale: 1, X: -30, Y: 15}, Size{W: 100, H: 100}, Size{W: 320, H: 200})
	assert.Equal(t, State{Scale: 1}, s)
}

func TestInvariants_RandomGestures(t *testing.T) {
	v := newTestViewport()
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 5000; i++ {
		switch rng.Intn(4) {
		case 0:
			v.BeginPinch()
			v.Pinch(0.25+rng.Float64()*2, rng.Float64()*320, rng.Float64()*200)
			v.EndPinch()
		case 1:
			v.BeginPan()
			v.Pan(rng.Float64()*800-400, rng.Float64()*800-400)
			v.EndPan()
		case 2:
			v.Reset()
		case 3:
			// One gesture, several updates.
			v.BeginPinch()
			for j := rng.Intn(5); j >= 0; j-- {
				v.Pinch(0.25+rng.Float64()*2, rng.Float64()*320, rng.Float64()*200)
			}
			v.EndPinch()
		}

		s := v.State
		require.GreaterOrEqual(t, s.Scale, v.MinZoom)
		require.LessOrEqual(t, s.Scale, v.MaxZoom)

		mx, my := MaxPan(s.Scale, v.World, v.View)
		require.GreaterOrEqual(t, -s.X, 0.0)
		require.LessOrEqual(t, -s.X, mx+1e-9)
		require.GreaterOrEqual(t, -s.Y, 0.0)
		require.LessOrEqual(t, -s.Y, my+1e-9)

		if s.Scale == v.MinZoom {
			require.Equal(t, 0.0, s.X)
			require.Equal(t, 0.0, s.Y)
		}
	}
}

func TestReset(t *testing.T) {
	v := newTestViewport()
	v.BeginPinch()
	v.Pinch(2, 320, 200)
	v.Reset()
	assert.Equal(t, State{Scale: 1}, v.State)
}
