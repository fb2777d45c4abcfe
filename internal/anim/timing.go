package anim

import "time"

// Timing animates a scalar from From to To over Duration starting at Start.
type Timing struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
	Ease     Easing
}

// NewTiming returns a timing with the default ease-in-out curve.
func NewTiming(from, to float64, start time.Time, d time.Duration) Timing {
	return Timing{From: from, To: to, Start: start, Duration: d, Ease: EaseInOutQuad}
}

// Fraction returns the linear progress of t at now, clamped to [0,1].
// A non positive duration completes immediately.
func (t Timing) Fraction(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	f := float64(now.Sub(t.Start)) / float64(t.Duration)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// At samples the animated value at now.
func (t Timing) At(now time.Time) float64 {
	f := t.Fraction(now)
	if t.Ease != nil {
		f = t.Ease(f)
	}
	return lerp(t.From, t.To, f)
}

// Done reports whether the animation has reached its target at now.
func (t Timing) Done(now time.Time) bool {
	return t.Fraction(now) >= 1
}

// End is the instant the animation completes.
func (t Timing) End() time.Time {
	return t.Start.Add(t.Duration)
}

// VecTiming animates a Vec, sharing the Timing clock for both axes.
type VecTiming struct {
	From  Vec
	To    Vec
	Clock Timing
}

// NewVecTiming returns a vector timing over d starting at start.
func NewVecTiming(from, to Vec, start time.Time, d time.Duration) VecTiming {
	return VecTiming{
		From:  from,
		To:    to,
		Clock: Timing{From: 0, To: 1, Start: start, Duration: d, Ease: EaseOutCubic},
	}
}

// At samples the animated vector at now.
func (v VecTiming) At(now time.Time) Vec {
	return v.From.Lerp(v.To, v.Clock.At(now))
}

// Done reports whether the animation has reached its target at now.
func (v VecTiming) Done(now time.Time) bool {
	return v.Clock.Done(now)
}
