package toast

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toastkit/internal/anim"
	"toastkit/internal/gesture"
	"toastkit/internal/timer"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// sim plays the role of the Bubble Tea runtime with a simulated clock: it
// delivers the close timer when due (even if cancelled, as tea.Tick would) and
// frames every FrameInterval while the toast keeps its frame loop running.
type sim struct {
	t       *testing.T
	clk     *fakeClock
	toast   *Toast
	onClose int
	pressed []string

	timerHandle timer.Handle
	timerDue    time.Time
	nextFrame   time.Time

	closedAt time.Duration
	closed   []ClosedMsg
}

func newSim(t *testing.T, opts Options) *sim {
	s := &sim{t: t, clk: &fakeClock{now: t0}, closedAt: -1}
	opts.ID = "toast-1"
	opts.OnPress = func(id string) tea.Cmd {
		s.pressed = append(s.pressed, id)
		return nil
	}
	s.toast = New(Props{
		Options: opts,
		Message: "hello",
		OnClose: func() { s.onClose++ },
	}, Env{
		Clock:    s.clk,
		Viewport: func() Viewport { return Viewport{Width: 800, Height: 480, Cols: 100, Rows: 30} },
	})
	return s
}

func (s *sim) mount() {
	require.NotNil(s.t, s.toast.Init())
	if s.toast.closeTimer != 0 {
		s.timerHandle = s.toast.closeTimer
		s.timerDue = s.clk.now.Add(s.toast.props.Duration)
	}
	s.nextFrame = s.clk.now.Add(anim.FrameInterval)
}

func (s *sim) elapsed() time.Duration { return s.clk.now.Sub(t0) }

func (s *sim) deliver(msg tea.Msg) {
	wasClosed := s.toast.Closed()
	_, cmd := s.toast.Update(msg)
	if !wasClosed && s.toast.Closed() {
		s.closedAt = s.elapsed()
		require.NotNil(s.t, cmd)
		closed, ok := cmd().(ClosedMsg)
		require.True(s.t, ok)
		s.closed = append(s.closed, closed)
	}
}

func (s *sim) run(d time.Duration) {
	end := s.clk.now.Add(d)
	for s.clk.now.Before(end) {
		s.clk.now = s.clk.now.Add(time.Millisecond)
		now := s.clk.now

		if s.timerHandle != 0 && !now.Before(s.timerDue) {
			h := s.timerHandle
			s.timerHandle = 0
			s.deliver(timer.FiredMsg{Owner: s.toast.ID(), Handle: h, Time: now})
		}

		if !s.toast.ticking {
			s.nextFrame = now.Add(anim.FrameInterval)
			continue
		}
		if !now.Before(s.nextFrame) {
			s.nextFrame = now.Add(anim.FrameInterval)
			s.deliver(anim.FrameMsg{Owner: s.toast.ID(), Time: now})
		}
	}
}

func (s *sim) pointer(kind PointerKind, x, y float64) {
	s.deliver(PointerMsg{ID: s.toast.ID(), Kind: kind, Pos: anim.Vec{X: x, Y: y}})
}

func (s *sim) drag(dx, dy float64) {
	s.pointer(PointerPress, 100, 40)
	s.pointer(PointerMove, 100+dx/2, 40+dy/2)
	s.pointer(PointerMove, 100+dx, 40+dy)
	s.pointer(PointerRelease, 100+dx, 40+dy)
}

func TestInitStartsEntranceBeforeTimer(t *testing.T) {
	s := newSim(t, Options{Duration: time.Second, AnimationDuration: 100 * time.Millisecond})
	s.mount()

	assert.Equal(t, PhaseEntering, s.toast.Phase())
	assert.True(t, s.toast.ticking)
	assert.Equal(t, 1, s.toast.timers.Pending())
	assert.Zero(t, s.toast.Progress())

	s.run(150 * time.Millisecond)
	assert.Equal(t, PhaseVisible, s.toast.Phase())
	assert.Equal(t, 1.0, s.toast.Progress())
	assert.False(t, s.toast.ticking, "frame loop must stop once nothing moves")
}

func TestInitTwiceIsNoop(t *testing.T) {
	s := newSim(t, Options{Duration: time.Second})
	s.mount()

	assert.Nil(t, s.toast.Init())
	assert.Equal(t, 1, s.toast.timers.Pending())
}

func TestAutoDismissClosesOnceAfterDurationAndAnimation(t *testing.T) {
	s := newSim(t, Options{Duration: 100 * time.Millisecond, AnimationDuration: 10 * time.Millisecond})
	s.mount()

	s.run(time.Second)

	require.Equal(t, 1, s.onClose)
	require.Len(t, s.closed, 1)
	assert.Equal(t, ClosedMsg{ID: "toast-1", Reason: ReasonTimeout}, s.closed[0])
	assert.GreaterOrEqual(t, s.closedAt, 110*time.Millisecond)
	assert.Less(t, s.closedAt, 200*time.Millisecond)
	assert.Equal(t, PhaseClosed, s.toast.Phase())
	assert.Zero(t, s.toast.Progress())
}

func TestAutoDismissNeverBeforeDurationPlusAnimation(t *testing.T) {
	for _, d := range []time.Duration{1 * time.Millisecond, 50 * time.Millisecond, 400 * time.Millisecond} {
		for _, ad := range []time.Duration{0, 30 * time.Millisecond, 250 * time.Millisecond} {
			s := newSim(t, Options{Duration: d, AnimationDuration: ad})
			s.mount()
			s.run(2 * time.Second)

			assert.Equal(t, 1, s.onClose, "duration=%s animation=%s", d, ad)
			assert.GreaterOrEqual(t, s.closedAt, d+ad, "duration=%s animation=%s", d, ad)
		}
	}
}

func TestZeroDurationNeverAutoDismisses(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		s := newSim(t, Options{Duration: d, AnimationDuration: 50 * time.Millisecond})
		s.mount()
		s.run(10 * time.Second)

		assert.Zero(t, s.onClose)
		assert.Zero(t, s.toast.timers.Pending())
		assert.Equal(t, PhaseVisible, s.toast.Phase())
	}
}

func TestDragDismissRight(t *testing.T) {
	s := newSim(t, Options{Duration: 5 * time.Second, AnimationDuration: 50 * time.Millisecond})
	s.mount()
	s.run(100 * time.Millisecond)

	s.drag(60, 5)
	releasedAt := s.elapsed()

	require.Equal(t, PhaseClosingByDrag, s.toast.Phase())
	require.NotNil(t, s.toast.exit)
	assert.Equal(t, anim.Vec{X: 0.9 * 800, Y: 5}, s.toast.exit.To)
	assert.Zero(t, s.toast.timers.Pending(), "a recognized dismiss cancels the auto-dismiss timer")

	s.run(gesture.ExitDuration - 10*time.Millisecond)
	assert.Zero(t, s.onClose)

	// Run past the original auto-dismiss deadline: the stale timer fire must not close again.
	s.run(6 * time.Second)
	require.Equal(t, 1, s.onClose)
	require.Len(t, s.closed, 1)
	assert.Equal(t, ReasonSwipeRight, s.closed[0].Reason)
	assert.GreaterOrEqual(t, s.closedAt-releasedAt, gesture.ExitDuration)
}

func TestDragDismissLeft(t *testing.T) {
	s := newSim(t, Options{Duration: 0, AnimationDuration: 50 * time.Millisecond})
	s.mount()
	s.run(100 * time.Millisecond)

	s.drag(-80, 0)
	require.NotNil(t, s.toast.exit)
	assert.Equal(t, anim.Vec{X: -720, Y: 0}, s.toast.exit.To)

	s.run(time.Second)
	assert.Equal(t, 1, s.onClose)
	assert.Equal(t, ReasonSwipeLeft, s.toast.Reason())
}

func TestDragSpringBack(t *testing.T) {
	for _, dx := range []float64{-10, 50, -50, 0.5} {
		s := newSim(t, Options{Duration: 0, AnimationDuration: 50 * time.Millisecond})
		s.mount()
		s.run(100 * time.Millisecond)

		s.drag(dx, 12)
		assert.NotNil(t, s.toast.spring, "dx=%v", dx)
		assert.Equal(t, PhaseVisible, s.toast.Phase())

		s.run(3 * time.Second)
		assert.Zero(t, s.onClose, "dx=%v", dx)
		assert.Equal(t, anim.Vec{}, s.toast.DragOffset(), "dx=%v", dx)
		assert.False(t, s.toast.Closed())
		assert.False(t, s.toast.ticking)
	}
}

func TestDragFollowsRawDelta(t *testing.T) {
	s := newSim(t, Options{Duration: 0})
	s.mount()

	s.pointer(PointerPress, 10, 10)
	s.pointer(PointerMove, 33, 4)
	assert.True(t, s.toast.Dragging())
	assert.Equal(t, anim.Vec{X: 23, Y: -6}, s.toast.DragOffset())

	s.pointer(PointerMove, -7, 10)
	assert.Equal(t, anim.Vec{X: -17, Y: 0}, s.toast.DragOffset())
}

func TestTapIsNotClaimed(t *testing.T) {
	s := newSim(t, Options{Duration: 0})
	s.mount()

	s.pointer(PointerPress, 10, 10)
	s.pointer(PointerMove, 10, 10)
	assert.False(t, s.toast.Dragging())

	s.pointer(PointerRelease, 10, 10)
	assert.Equal(t, []string{"toast-1"}, s.pressed)
	assert.Nil(t, s.toast.spring)
	assert.Nil(t, s.toast.exit)
}

func TestTimeoutDuringDragIsDeferred(t *testing.T) {
	t.Run("A spring-back release starts the deferred fade.", func(t *testing.T) {
		s := newSim(t, Options{Duration: 200 * time.Millisecond, AnimationDuration: 20 * time.Millisecond})
		s.mount()
		s.run(100 * time.Millisecond)

		s.pointer(PointerPress, 100, 40)
		s.pointer(PointerMove, 120, 40)
		s.run(200 * time.Millisecond)
		assert.Equal(t, PhaseVisible, s.toast.Phase())
		assert.True(t, s.toast.timeoutDeferred)

		s.pointer(PointerRelease, 120, 40)
		assert.Equal(t, PhaseClosingByTimer, s.toast.Phase())

		s.run(time.Second)
		assert.Equal(t, 1, s.onClose)
		assert.Equal(t, ReasonTimeout, s.toast.Reason())
	})

	t.Run("A dismiss release drops the deferred fade.", func(t *testing.T) {
		s := newSim(t, Options{Duration: 200 * time.Millisecond, AnimationDuration: 20 * time.Millisecond})
		s.mount()
		s.run(100 * time.Millisecond)

		s.pointer(PointerPress, 100, 40)
		s.pointer(PointerMove, 120, 40)
		s.run(200 * time.Millisecond)
		s.pointer(PointerRelease, 200, 40)
		assert.Equal(t, PhaseClosingByDrag, s.toast.Phase())

		s.run(time.Second)
		assert.Equal(t, 1, s.onClose)
		assert.Equal(t, ReasonSwipeRight, s.toast.Reason())
	})
}

func TestPointerIgnoredWhileClosing(t *testing.T) {
	s := newSim(t, Options{Duration: 100 * time.Millisecond, AnimationDuration: 200 * time.Millisecond})
	s.mount()
	s.run(110 * time.Millisecond)
	require.Equal(t, PhaseClosingByTimer, s.toast.Phase())

	s.drag(200, 0)
	assert.Nil(t, s.toast.exit)
	assert.Equal(t, PhaseClosingByTimer, s.toast.Phase())

	s.run(time.Second)
	assert.Equal(t, 1, s.onClose)
	assert.Equal(t, ReasonTimeout, s.toast.Reason())
}

func TestExplicitClose(t *testing.T) {
	s := newSim(t, Options{Duration: 0, AnimationDuration: 40 * time.Millisecond})
	s.mount()
	s.run(100 * time.Millisecond)

	require.NotNil(t, s.toast.Close())
	assert.Nil(t, s.toast.Close(), "only one exit sequence starts")
	assert.Equal(t, PhaseClosingByTimer, s.toast.Phase())

	s.run(time.Second)
	assert.Equal(t, 1, s.onClose)
	assert.Equal(t, ReasonExplicit, s.toast.Reason())
}

func TestCloseIsIdempotent(t *testing.T) {
	s := newSim(t, Options{Duration: 0})
	s.mount()

	require.NotNil(t, s.toast.close(ReasonExplicit))
	assert.Nil(t, s.toast.close(ReasonTimeout))
	assert.Nil(t, s.toast.close(ReasonSwipeLeft))

	assert.Equal(t, 1, s.onClose)
	assert.Equal(t, ReasonExplicit, s.toast.Reason())
}

func TestUnmountCancelsPendingTimer(t *testing.T) {
	s := newSim(t, Options{Duration: 100 * time.Millisecond, AnimationDuration: 10 * time.Millisecond})
	s.mount()
	s.run(50 * time.Millisecond)

	s.toast.Unmount()
	assert.Zero(t, s.toast.timers.Pending())

	s.run(time.Second)
	assert.Zero(t, s.onClose)
	assert.Empty(t, s.closed)
	assert.Empty(t, s.toast.View())
}

func TestUnmountDuringExitAnimation(t *testing.T) {
	s := newSim(t, Options{Duration: 100 * time.Millisecond, AnimationDuration: 100 * time.Millisecond})
	s.mount()
	s.run(130 * time.Millisecond)
	require.Equal(t, PhaseClosingByTimer, s.toast.Phase())

	s.toast.Unmount()

	// A frame that was already in flight arrives after teardown.
	s.deliver(anim.FrameMsg{Owner: s.toast.ID(), Time: s.clk.now.Add(time.Second)})
	assert.Zero(t, s.onClose)
	assert.False(t, s.toast.Closed())
	assert.Nil(t, s.toast.Close())
}

func TestUpdateIgnoresOtherOwners(t *testing.T) {
	s := newSim(t, Options{Duration: 100 * time.Millisecond})
	s.mount()

	_, cmd := s.toast.Update(timer.FiredMsg{Owner: "other", Handle: s.toast.closeTimer, Time: t0})
	assert.Nil(t, cmd)
	_, cmd = s.toast.Update(anim.FrameMsg{Owner: "other", Time: t0.Add(time.Hour)})
	assert.Nil(t, cmd)
	_, cmd = s.toast.Update(PointerMsg{ID: "other", Kind: PointerPress})
	assert.Nil(t, cmd)

	assert.Equal(t, 1, s.toast.timers.Pending())
	assert.Equal(t, PhaseEntering, s.toast.Phase())
}

func TestTransform(t *testing.T) {
	tests := map[string]struct {
		opts     Options
		progress float64
		drag     anim.Vec
		exp      Transform
	}{
		"Bottom slide-in starts below.": {
			opts:     Options{Placement: PlacementBottom},
			progress: 0,
			exp:      Transform{Offset: anim.Vec{Y: EntranceOffset}, Opacity: 0, Scale: 1},
		},
		"Top slide-in starts above.": {
			opts:     Options{Placement: PlacementTop},
			progress: 0,
			exp:      Transform{Offset: anim.Vec{Y: -EntranceOffset}, Opacity: 0, Scale: 1},
		},
		"Slide-in at rest composes the drag offset.": {
			opts:     Options{Placement: PlacementTop},
			progress: 1,
			drag:     anim.Vec{X: 30, Y: -4},
			exp:      Transform{Offset: anim.Vec{X: 30, Y: -4}, Opacity: 1, Scale: 1},
		},
		"Zoom-in starts scaled down without offset.": {
			opts:     Options{AnimationType: AnimationZoomIn},
			progress: 0,
			exp:      Transform{Opacity: 0, Scale: ZoomFrom},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			tst := New(Props{Options: test.opts}, Env{})
			tst.progressVal = test.progress
			tst.drag = test.drag

			got := tst.Transform()
			assert.InDelta(t, test.exp.Offset.X, got.Offset.X, 1e-9)
			assert.InDelta(t, test.exp.Offset.Y, got.Offset.Y, 1e-9)
			assert.InDelta(t, test.exp.Opacity, got.Opacity, 1e-9)
			assert.InDelta(t, test.exp.Scale, got.Scale, 1e-9)
		})
	}
}
