package anim

import "math"

type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

// EaseInOut is a sine ease, slow at both ends.
func EaseInOut(t float64) float64 {
	return 0.5 - 0.5*math.Cos(math.Pi*t)
}

// Tween moves a value from its current reading to a target over a duration.
// Retargeting mid-flight starts from wherever the value is at that moment.
type Tween struct {
	from, to float64
	start    float64
	duration float64
	ease     Easing
}

func NewTween(value float64) Tween {
	return Tween{from: value, to: value, ease: Linear}
}

func (tw *Tween) To(now, target, duration float64, ease Easing) {
	tw.from = tw.Value(now)
	tw.to = target
	tw.start = now
	tw.duration = duration
	if ease == nil {
		ease = Linear
	}
	tw.ease = ease
}

// Set jumps to v with no animation.
func (tw *Tween) Set(v float64) {
	tw.from, tw.to = v, v
	tw.duration = 0
}

func (tw *Tween) Value(now float64) float64 {
	if tw.duration <= 0 || now >= tw.start+tw.duration {
		return tw.to
	}
	if now <= tw.start {
		return tw.from
	}
	t := (now - tw.start) / tw.duration
	return tw.from + (tw.to-tw.from)*tw.ease(t)
}

func (tw *Tween) Target() float64 { return tw.to }

func (tw *Tween) Done(now float64) bool {
	return tw.duration <= 0 || now >= tw.start+tw.duration
}
