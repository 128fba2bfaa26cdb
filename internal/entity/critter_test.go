package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critters/internal/schedule"
)

func testTuning() Tuning {
	return Tuning{
		BoundaryLeft:      50,
		BoundaryRight:     250,
		Speed:             50,
		RestMin:           2,
		RestMax:           4,
		IdleFrameInterval: 0.5,
		WalkFrameInterval: 0.2,
	}
}

func TestCritterState_StartWalkFacing(t *testing.T) {
	s := CritterState{X: 100}

	right := s.StartWalk(0, 200, 50)
	assert.Equal(t, Walking, right.Motion)
	assert.Equal(t, FacingRight, right.Facing)
	assert.InDelta(t, 2.0, right.ArrivesAt(), 1e-9)

	left := s.StartWalk(0, 60, 50)
	assert.Equal(t, FacingLeft, left.Facing)
	assert.InDelta(t, 0.8, left.ArrivesAt(), 1e-9)
}

func TestCritterState_AdvanceInterpolatesAndArrives(t *testing.T) {
	s := CritterState{X: 100}.StartWalk(10, 200, 50)

	mid, arrived := s.Advance(11)
	assert.False(t, arrived)
	assert.InDelta(t, 150.0, mid.X, 1e-9)
	assert.Equal(t, Walking, mid.Motion)

	end, arrived := s.Advance(12)
	assert.True(t, arrived)
	assert.Equal(t, 200.0, end.X)
	assert.Equal(t, Idle, end.Motion)
	assert.Equal(t, 0, end.FrameIndex)

	// Idle critters do not move.
	again, arrived := end.Advance(20)
	assert.False(t, arrived)
	assert.Equal(t, end, again)
}

func TestCritterState_ZeroDistanceWalkArrivesImmediately(t *testing.T) {
	s := CritterState{X: 120}.StartWalk(5, 120, 50)
	got, arrived := s.Advance(5)
	assert.True(t, arrived)
	assert.Equal(t, Idle, got.Motion)
}

func TestCritterState_FrameCycleLoops(t *testing.T) {
	s := CritterState{}
	assert.Equal(t, "cat_orange-idle_1", s.SpriteName())

	s = s.AdvanceFrame(0.5, 0.5)
	assert.Equal(t, 1, s.FrameIndex)
	s = s.AdvanceFrame(1.0, 0.5)
	assert.Equal(t, 0, s.FrameIndex, "three idle frames wrap")

	s = s.StartWalk(0, 200, 50)
	assert.Equal(t, "cat_orange-move_1", s.SpriteName())
	for i := 0; i < 4; i++ {
		s = s.AdvanceFrame(0.2, 0.2)
	}
	assert.Equal(t, 0, s.FrameIndex, "four walk frames wrap")

	s = s.AdvanceFrame(0.1, 0.2)
	assert.Equal(t, 0, s.FrameIndex)
	s = s.AdvanceFrame(0.1, 0.2)
	assert.Equal(t, 1, s.FrameIndex)
}

func TestCritter_TargetsStayInBounds(t *testing.T) {
	sched := schedule.New()
	c := NewCritter(150, 160, testTuning(), rand.New(rand.NewSource(7)), sched)
	c.Start(0)

	now := 0.0
	for i := 0; i < 20000; i++ {
		now += 1.0 / 60
		sched.Poll(now)
		c.Update(now)
		if c.State.Motion == Walking {
			require.GreaterOrEqual(t, c.State.TargetX, 50.0)
			require.LessOrEqual(t, c.State.TargetX, 250.0)
		}
		require.GreaterOrEqual(t, c.State.X, 50.0-1e-9)
		require.LessOrEqual(t, c.State.X, 250.0+1e-9)
	}
}

func TestCritter_CycleNeverStalls(t *testing.T) {
	tuning := testTuning()
	sched := schedule.New()
	c := NewCritter(150, 160, tuning, rand.New(rand.NewSource(3)), sched)
	c.Start(0)

	const step = 1.0 / 60
	maxWalk := (tuning.BoundaryRight-tuning.BoundaryLeft)/tuning.Speed + step
	maxRest := tuning.RestMax + step

	now := 0.0
	last := c.State.Motion
	since := 0.0
	transitions := 0
	for i := 0; i < 60*120; i++ {
		now += step
		sched.Poll(now)
		c.Update(now)
		if c.State.Motion != last {
			transitions++
			last = c.State.Motion
			since = now
			continue
		}
		if last == Walking {
			require.LessOrEqual(t, now-since, maxWalk, "walking too long")
		} else {
			require.LessOrEqual(t, now-since, maxRest, "resting too long")
		}
	}
	assert.Greater(t, transitions, 10)
}

func TestCritter_RestIsScheduledOnArrival(t *testing.T) {
	sched := schedule.New()
	c := NewCritter(100, 160, testTuning(), rand.New(rand.NewSource(1)), sched)
	c.Start(0)
	require.Equal(t, Walking, c.State.Motion)
	assert.Equal(t, 0, sched.Len())

	arrive := c.State.ArrivesAt()
	c.Update(arrive)
	assert.Equal(t, Idle, c.State.Motion)
	require.Equal(t, 1, sched.Len())

	next, _ := sched.Next()
	assert.GreaterOrEqual(t, next-arrive, 2.0)
	assert.LessOrEqual(t, next-arrive, 4.0)

	sched.Poll(next)
	assert.Equal(t, Walking, c.State.Motion)
}

func TestCritter_FreezeIdleHoldsFrame(t *testing.T) {
	sched := schedule.New()
	c := NewCritter(100, 160, testTuning(), rand.New(rand.NewSource(1)), sched)
	c.Update(0)
	c.FreezeIdle = true
	c.Update(2)
	assert.Equal(t, 0, c.State.FrameIndex)

	c.FreezeIdle = false
	c.Update(2.5)
	assert.Equal(t, 1, c.State.FrameIndex)
}

func TestCritter_Contains(t *testing.T) {
	c := NewCritter(100, 160, testTuning(), rand.New(rand.NewSource(1)), schedule.New())
	assert.True(t, c.Contains(100, 150))
	assert.True(t, c.Contains(84, 128))
	assert.False(t, c.Contains(120, 150))
	assert.False(t, c.Contains(100, 161))
}
