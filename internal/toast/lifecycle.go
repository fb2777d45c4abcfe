package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"toastkit/internal/anim"
	"toastkit/internal/timer"
)

func (t *Toast) mount() tea.Cmd {
	if t.mounted || t.disposed {
		return nil
	}
	t.mounted = true
	now := t.env.Clock.Now()

	t.phase = PhaseEntering
	t.progress = anim.NewTiming(0, 1, now, t.props.AnimationDuration)
	t.progressVal = 0
	cmds := []tea.Cmd{t.startFrames()}

	if t.props.Duration > 0 {
		h, cmd := t.timers.Schedule(t.props.Duration)
		t.closeTimer = h
		cmds = append(cmds, cmd)
		t.log.Debugf("toast mounted, auto-dismiss in %s", t.props.Duration)
	} else {
		t.log.Debugf("toast mounted without auto-dismiss")
	}

	return tea.Batch(cmds...)
}

func (t *Toast) onTimer(msg timer.FiredMsg) tea.Cmd {
	if t.disposed || !t.timers.Claim(msg) {
		return nil
	}
	if msg.Handle != t.closeTimer {
		return nil
	}
	t.closeTimer = 0

	if t.tracker.Dragging() {
		// Resolved on release: a dismiss drops it, a spring-back starts the fade.
		t.timeoutDeferred = true
		t.log.Debugf("auto-dismiss fired during drag, deferred")
		return nil
	}
	return t.beginFade(ReasonTimeout, msg.Time)
}

// beginFade animates AnimationProgress from its current value to 0; the close
// coordinator fires when it completes. Only the first exit sequence starts.
func (t *Toast) beginFade(reason Reason, now time.Time) tea.Cmd {
	if !t.mounted || t.closing() {
		return nil
	}
	t.timers.CancelAll()
	t.closeTimer = 0
	t.timeoutDeferred = false

	if t.tracker.Dragging() {
		t.tracker.Reset()
		t.spring = anim.NewSpring(t.drag, anim.Vec{})
	}

	from := t.progress.At(now)
	t.phase = PhaseClosingByTimer
	t.reason = reason
	t.progress = anim.NewTiming(from, 0, now, t.props.AnimationDuration)
	t.log.Debugf("exit animation started (%s)", reason)

	return t.startFrames()
}

func (t *Toast) advanceLifecycle(now time.Time) (tea.Cmd, bool) {
	t.progressVal = t.progress.At(now)

	switch t.phase {
	case PhaseEntering:
		if t.progress.Done(now) {
			t.phase = PhaseVisible
		}
	case PhaseClosingByTimer:
		if t.progress.Done(now) {
			return t.close(t.reason), true
		}
	}
	return nil, false
}
