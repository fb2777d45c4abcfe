package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"toastkit/internal/anim"
	"toastkit/internal/gesture"
)

func (t *Toast) onPointer(msg PointerMsg) tea.Cmd {
	if !t.mounted || t.disposed || t.closing() {
		return nil
	}

	switch msg.Kind {
	case PointerPress:
		t.tracker.Press(msg.Pos)

	case PointerMove:
		delta, claimed, claimedNow := t.tracker.Move(msg.Pos)
		if !claimed {
			return nil
		}
		if claimedNow {
			t.spring = nil
			t.drag = anim.Vec{}
			t.log.Debugf("drag claimed")
		}
		t.drag = delta

	case PointerRelease:
		r := t.tracker.Release(msg.Pos, t.env.Viewport().Width)
		switch r.Kind {
		case gesture.ReleaseTap:
			if t.props.OnPress != nil {
				return t.props.OnPress(t.ID())
			}
		case gesture.ReleaseDrag:
			return t.settle(r, t.env.Clock.Now())
		}
	}
	return nil
}

// settle applies a release decision: swipe out and close, or spring back.
func (t *Toast) settle(r gesture.Release, now time.Time) tea.Cmd {
	deferred := t.timeoutDeferred
	t.timeoutDeferred = false
	t.drag = r.Delta
	t.log.Debugf("drag released: %s", r.Outcome.Decision)

	if r.Outcome.Dismissed() {
		t.timers.Cancel(t.closeTimer)
		t.closeTimer = 0

		t.phase = PhaseClosingByDrag
		t.reason = ReasonSwipeRight
		if r.Outcome.Decision == gesture.DismissLeft {
			t.reason = ReasonSwipeLeft
		}
		exit := anim.NewVecTiming(r.Delta, r.Outcome.Target, now, gesture.ExitDuration)
		t.exit = &exit
		return t.startFrames()
	}

	t.spring = anim.NewSpring(r.Delta, anim.Vec{})
	if deferred {
		return tea.Batch(t.beginFade(ReasonTimeout, now), t.startFrames())
	}
	return t.startFrames()
}

func (t *Toast) advanceDrag(now time.Time) (tea.Cmd, bool) {
	switch {
	case t.exit != nil:
		t.drag = t.exit.At(now)
		if t.exit.Done(now) {
			return t.close(t.reason), true
		}
	case t.spring != nil:
		t.drag = t.spring.Step()
		if t.spring.Settled() {
			t.spring = nil
		}
	}
	return nil, false
}
