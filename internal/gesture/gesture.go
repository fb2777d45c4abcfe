// Package gesture recognizes the drag-to-dismiss gesture of a toast.
//
// The Tracker is a small state machine fed with absolute pointer positions in
// logical points: Idle -> Pressed -> Dragging -> Idle. A gesture is claimed
// only once the pointer has actually moved, so a plain tap stays a tap.
package gesture

import (
	"time"

	"toastkit/internal/anim"
)

const (
	// DismissThreshold is the lateral distance, in points, a release must exceed to dismiss.
	DismissThreshold = 50.0
	// ExitFraction of the viewport width is the lateral exit target of a dismiss.
	ExitFraction = 0.9
	// ExitDuration is the fixed duration of the dismiss animation.
	ExitDuration = 250 * time.Millisecond
)

// Decision is the outcome of releasing a claimed drag.
type Decision int

const (
	SpringBack Decision = iota
	DismissRight
	DismissLeft
)

func (d Decision) String() string {
	switch d {
	case SpringBack:
		return "spring-back"
	case DismissRight:
		return "dismiss-right"
	case DismissLeft:
		return "dismiss-left"
	default:
		return "unknown"
	}
}

// Outcome is a release decision plus the offset the toast must animate to.
type Outcome struct {
	Decision Decision
	Target   anim.Vec
}

// Dismissed reports whether the outcome closes the toast.
func (o Outcome) Dismissed() bool {
	return o.Decision != SpringBack
}

// ShouldClaim reports whether a move with the given displacement starts a drag.
func ShouldClaim(dx, dy float64) bool {
	return dx != 0 || dy != 0
}

// Decide applies the release rule. Boundaries fall to SpringBack.
func Decide(dx, dy, viewportWidth float64) Outcome {
	switch {
	case dx > DismissThreshold:
		return Outcome{Decision: DismissRight, Target: anim.Vec{X: ExitFraction * viewportWidth, Y: dy}}
	case dx < -DismissThreshold:
		return Outcome{Decision: DismissLeft, Target: anim.Vec{X: -ExitFraction * viewportWidth, Y: dy}}
	default:
		return Outcome{Decision: SpringBack}
	}
}

// ReleaseKind tells what a release ended.
type ReleaseKind int

const (
	// ReleaseIgnored is a release without a matching press.
	ReleaseIgnored ReleaseKind = iota
	// ReleaseTap is a release of a press that never became a drag.
	ReleaseTap
	// ReleaseDrag is a release of a claimed drag; Outcome is set.
	ReleaseDrag
)

// Release is the result of Tracker.Release.
type Release struct {
	Kind    ReleaseKind
	Delta   anim.Vec
	Outcome Outcome
}

// Tracker follows one pointer from press to release.
type Tracker struct {
	pressed bool
	claimed bool
	origin  anim.Vec
	delta   anim.Vec
}

// Press starts tracking at p. A press while already tracking restarts the gesture.
func (t *Tracker) Press(p anim.Vec) {
	t.pressed = true
	t.claimed = false
	t.origin = p
	t.delta = anim.Vec{}
}

// Move updates the pointer position. It returns the raw delta from the press
// point and whether the gesture is claimed. claimedNow is true only on the
// move that claimed it.
func (t *Tracker) Move(p anim.Vec) (delta anim.Vec, claimed, claimedNow bool) {
	if !t.pressed {
		return anim.Vec{}, false, false
	}
	d := anim.Vec{X: p.X - t.origin.X, Y: p.Y - t.origin.Y}
	if !t.claimed {
		if !ShouldClaim(d.X, d.Y) {
			return d, false, false
		}
		t.claimed = true
		claimedNow = true
	}
	t.delta = d
	return d, true, claimedNow
}

// Release ends the gesture at p and resets the tracker.
func (t *Tracker) Release(p anim.Vec, viewportWidth float64) Release {
	defer t.Reset()

	if !t.pressed {
		return Release{Kind: ReleaseIgnored}
	}
	if !t.claimed {
		return Release{Kind: ReleaseTap}
	}
	d := anim.Vec{X: p.X - t.origin.X, Y: p.Y - t.origin.Y}
	return Release{
		Kind:    ReleaseDrag,
		Delta:   d,
		Outcome: Decide(d.X, d.Y, viewportWidth),
	}
}

// Reset abandons any gesture in progress.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Pressed reports whether a pointer is down on the toast.
func (t *Tracker) Pressed() bool { return t.pressed }

// Dragging reports whether the current gesture has been claimed.
func (t *Tracker) Dragging() bool { return t.claimed }

// Delta returns the last raw delta of a claimed drag.
func (t *Tracker) Delta() anim.Vec { return t.delta }
