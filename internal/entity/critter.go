package entity

import (
	"math"
	"math/rand"

	"critters/internal/schedule"
)

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

type Motion int

const (
	Idle Motion = iota
	Walking
)

func (m Motion) String() string {
	switch m {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	}
	return "unknown"
}

// Sprite names of the bundled orange cat.
var (
	IdleFrames = []string{"cat_orange-idle_1", "cat_orange-idle_2", "cat_orange-idle_3"}
	WalkFrames = []string{"cat_orange-move_1", "cat_orange-move_2", "cat_orange-move_3", "cat_orange-move_4"}
)

// CritterState is the per-tick state of the cat. X is the horizontal centre
// and Y the baseline (feet) in world coordinates.
type CritterState struct {
	X, Y       float64
	Facing     Facing
	Motion     Motion
	FrameIndex int
	TargetX    float64

	startX       float64
	walkStart    float64
	walkDuration float64
	frameClock   float64
}

// StartWalk heads for targetX at speed px/s starting at now.
func (s CritterState) StartWalk(now, targetX, speed float64) CritterState {
	s.Motion = Walking
	s.TargetX = targetX
	s.startX = s.X
	s.walkStart = now
	s.walkDuration = math.Abs(targetX-s.X) / speed
	if targetX > s.X {
		s.Facing = FacingRight
	} else {
		s.Facing = FacingLeft
	}
	s.FrameIndex = 0
	s.frameClock = 0
	return s
}

// Advance moves a walking critter along its path. The second result is true
// on the tick it arrives, at which point it is Idle at TargetX.
func (s CritterState) Advance(now float64) (CritterState, bool) {
	if s.Motion != Walking {
		return s, false
	}
	elapsed := now - s.walkStart
	if elapsed >= s.walkDuration {
		s.X = s.TargetX
		s.Motion = Idle
		s.FrameIndex = 0
		s.frameClock = 0
		return s, true
	}
	t := elapsed / s.walkDuration
	s.X = s.startX + (s.TargetX-s.startX)*t
	return s, false
}

// ArrivesAt is the time a walk reaches its target.
func (s CritterState) ArrivesAt() float64 {
	return s.walkStart + s.walkDuration
}

// AdvanceFrame steps the looping frame cycle by dt seconds.
func (s CritterState) AdvanceFrame(dt, interval float64) CritterState {
	n := len(s.Frames())
	if n == 0 || interval <= 0 {
		return s
	}
	s.frameClock += dt
	for s.frameClock >= interval {
		s.frameClock -= interval
		s.FrameIndex = (s.FrameIndex + 1) % n
	}
	return s
}

func (s CritterState) Frames() []string {
	if s.Motion == Walking {
		return WalkFrames
	}
	return IdleFrames
}

func (s CritterState) SpriteName() string {
	frames := s.Frames()
	return frames[s.FrameIndex%len(frames)]
}

type Tuning struct {
	BoundaryLeft, BoundaryRight float64
	Speed                       float64
	RestMin, RestMax            float64
	IdleFrameInterval           float64
	WalkFrameInterval           float64
}

type Critter struct {
	State CritterState

	// Width and Height of the drawn sprite, used for hit testing.
	Width, Height float64

	// FreezeIdle holds the idle cycle on its current frame.
	FreezeIdle bool

	tuning   Tuning
	rng      *rand.Rand
	sched    *schedule.Scheduler
	lastTick float64
	started  bool
}

func NewCritter(x, y float64, tuning Tuning, rng *rand.Rand, sched *schedule.Scheduler) *Critter {
	return &Critter{
		State:  CritterState{X: x, Y: y},
		Width:  32,
		Height: 32,
		tuning: tuning,
		rng:    rng,
		sched:  sched,
	}
}

// Start kicks off the first walk.
func (c *Critter) Start(now float64) {
	if c.started {
		return
	}
	c.started = true
	c.lastTick = now
	c.walk(now)
}

func (c *Critter) walk(now float64) {
	if c.State.Motion == Walking {
		return
	}
	target := c.tuning.BoundaryLeft + c.rng.Float64()*(c.tuning.BoundaryRight-c.tuning.BoundaryLeft)
	c.State = c.State.StartWalk(now, target, c.tuning.Speed)
}

func (c *Critter) rest(now float64) {
	d := c.tuning.RestMin + c.rng.Float64()*(c.tuning.RestMax-c.tuning.RestMin)
	c.sched.After(now, d, c.walk)
}

// Update advances position and animation to now.
func (c *Critter) Update(now float64) {
	dt := now - c.lastTick
	c.lastTick = now
	if dt < 0 {
		dt = 0
	}

	if c.State.Motion == Walking {
		var arrived bool
		c.State, arrived = c.State.Advance(now)
		if arrived {
			c.rest(now)
			return
		}
		c.State = c.State.AdvanceFrame(dt, c.tuning.WalkFrameInterval)
		return
	}

	if !c.FreezeIdle {
		c.State = c.State.AdvanceFrame(dt, c.tuning.IdleFrameInterval)
	}
}

// Contains reports whether the world point is on the sprite.
func (c *Critter) Contains(x, y float64) bool {
	left := c.State.X - c.Width/2
	top := c.State.Y - c.Height
	return x >= left && x <= left+c.Width && y >= top && y <= c.State.Y
}

func (c *Critter) String() string {
	return c.State.Motion.String()
}
