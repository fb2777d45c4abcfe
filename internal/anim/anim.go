// Package anim provides the animated value facility the toast core is built on.
//
// Values are advanced explicitly: a Timing is sampled at a point in time and a
// Spring is stepped once per frame. The frame loop itself is a tea.Tick chain
// started with Frame and re-armed by the receiver while something is moving.
package anim

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FPS is the frame rate of the animation loop.
const FPS = 60

// FrameInterval is the delay between two frames.
const FrameInterval = time.Second / FPS

// FrameMsg is a single animation frame delivered to Owner.
type FrameMsg struct {
	Owner string
	Time  time.Time
}

// Frame schedules the next animation frame for owner.
func Frame(owner string) tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Owner: owner, Time: t}
	})
}

// Vec is a 2D value in logical points.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Lerp interpolates between v and o at t in [0,1].
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{X: lerp(v.X, o.X, t), Y: lerp(v.Y, o.Y, t)}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseOutCubic decelerates towards the end.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOutQuad accelerates then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}
