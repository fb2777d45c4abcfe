package anim

import "github.com/charmbracelet/harmonica"

const (
	springFrequency = 7.0
	springDamping   = 0.6

	// settleEpsilon is the distance and speed, in points, below which a spring is at rest.
	settleEpsilon = 0.5
)

// Spring moves a Vec towards a target with a damped harmonic oscillator.
// It has no fixed duration; it runs until Settled.
type Spring struct {
	spring harmonica.Spring
	pos    Vec
	vel    Vec
	target Vec
}

// NewSpring returns a spring at from heading to target, stepped at FPS.
func NewSpring(from, target Vec) *Spring {
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(FPS), springFrequency, springDamping),
		pos:    from,
		target: target,
	}
}

// Step advances the spring by one frame and returns the new position.
// Once settled the position snaps to the target.
func (s *Spring) Step() Vec {
	s.pos.X, s.vel.X = s.spring.Update(s.pos.X, s.vel.X, s.target.X)
	s.pos.Y, s.vel.Y = s.spring.Update(s.pos.Y, s.vel.Y, s.target.Y)
	if s.Settled() {
		s.pos = s.target
		s.vel = Vec{}
	}
	return s.pos
}

// Settled reports whether the spring is at rest on its target.
func (s *Spring) Settled() bool {
	d := Vec{X: s.pos.X - s.target.X, Y: s.pos.Y - s.target.Y}
	return d.Len() < settleEpsilon && s.vel.Len() < settleEpsilon
}

// Position returns the current position.
func (s *Spring) Position() Vec {
	return s.pos
}

// Target returns the rest position.
func (s *Spring) Target() Vec {
	return s.target
}
