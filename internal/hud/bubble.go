package hud

import (
	"critters/internal/anim"
	"critters/internal/schedule"
)

// Bubble is the thought bubble that pops over the cat when it is tapped.
type Bubble struct {
	FadeIn  float64
	Visible float64
	FadeOut float64

	alpha anim.Tween
	shown bool
}

func NewBubble(fadeIn, visible, fadeOut float64) *Bubble {
	return &Bubble{
		FadeIn:  fadeIn,
		Visible: visible,
		FadeOut: fadeOut,
		alpha:   anim.NewTween(0),
	}
}

// Show fades the bubble in and schedules it to fade out again. It reports
// false and does nothing while the bubble is already up.
func (b *Bubble) Show(now float64, sched *schedule.Scheduler) bool {
	if b.shown {
		return false
	}
	b.shown = true
	b.alpha.To(now, 1, b.FadeIn, anim.Linear)

	sched.After(now, b.Visible, func(t float64) {
		b.alpha.To(t, 0, b.FadeOut, anim.Linear)
		sched.After(t, b.FadeOut, func(float64) {
			b.shown = false
		})
	})
	return true
}

// Shown is true from Show until the fade out completes.
func (b *Bubble) Shown() bool { return b.shown }

func (b *Bubble) Alpha(now float64) float64 { return b.alpha.Value(now) }
