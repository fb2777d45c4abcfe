package toast

import (
	tea "github.com/charmbracelet/bubbletea"

	"toastkit/internal/anim"
	"toastkit/internal/gesture"
	"toastkit/internal/log"
	"toastkit/internal/timer"
)

// Toast is one active notification. It is not safe for concurrent use; like
// any Bubble Tea model it is only touched from the program's Update loop.
type Toast struct {
	props Props
	env   Env
	log   log.Logger

	phase    Phase
	mounted  bool
	disposed bool
	ticking  bool

	// Lifecycle timer: AnimationProgress and the pending close timer.
	progress        anim.Timing
	progressVal     float64
	timers          *timer.Set
	closeTimer      timer.Handle
	timeoutDeferred bool

	// Gesture tracker: DragOffset and its settle animation.
	tracker gesture.Tracker
	drag    anim.Vec
	exit    *anim.VecTiming
	spring  *anim.Spring

	// Close coordinator guard.
	closed bool
	reason Reason
}

// New builds a toast with all of its animated values and its timer set in place.
// Negative durations are treated as zero.
func New(p Props, env Env) *Toast {
	env.defaults()
	if p.AnimationDuration < 0 {
		p.AnimationDuration = 0
	}
	if p.Duration < 0 {
		p.Duration = 0
	}

	return &Toast{
		props:    p,
		env:      env,
		log:      env.Logger.WithValues(log.Kv{"toast-id": p.ID, "toast-type": p.Type.String()}),
		phase:    PhaseIdle,
		progress: anim.NewTiming(0, 0, env.Clock.Now(), 0),
		timers:   timer.NewSet(p.ID),
	}
}

// ID returns the toast id.
func (t *Toast) ID() string { return t.props.ID }

// Type returns the toast type.
func (t *Toast) Type() Type { return t.props.Type }

// Message returns the toast message.
func (t *Toast) Message() string { return t.props.Message }

// Data returns the arbitrary payload of the options.
func (t *Toast) Data() any { return t.props.Data }

// Props returns the props the toast was built from.
func (t *Toast) Props() Props { return t.props }

// Phase returns the lifecycle phase.
func (t *Toast) Phase() Phase { return t.phase }

// Progress returns AnimationProgress as of the last frame.
func (t *Toast) Progress() float64 { return t.progressVal }

// DragOffset returns the drag offset as of the last event or frame.
func (t *Toast) DragOffset() anim.Vec { return t.drag }

// Dragging reports whether a drag gesture is claimed.
func (t *Toast) Dragging() bool { return t.tracker.Dragging() }

// Closed reports whether the close coordinator has fired.
func (t *Toast) Closed() bool { return t.closed }

// Reason returns why the toast closed or is closing.
func (t *Toast) Reason() Reason { return t.reason }

// Disposed reports whether the toast was unmounted.
func (t *Toast) Disposed() bool { return t.disposed }

// Presentation resolves the current presentation.
func (t *Toast) Presentation() Presentation { return Present(t.props) }

// Init mounts the toast: it starts the entrance animation and then arms the
// auto-dismiss timer when the duration is positive.
func (t *Toast) Init() tea.Cmd {
	return t.mount()
}

// Update routes frame, timer and pointer messages addressed to this toast.
// Messages for other owners are ignored.
func (t *Toast) Update(msg tea.Msg) (*Toast, tea.Cmd) {
	switch msg := msg.(type) {
	case anim.FrameMsg:
		if msg.Owner != t.ID() {
			return t, nil
		}
		return t, t.onFrame(msg)
	case timer.FiredMsg:
		if msg.Owner != t.ID() {
			return t, nil
		}
		return t, t.onTimer(msg)
	case PointerMsg:
		if msg.ID != t.ID() {
			return t, nil
		}
		return t, t.onPointer(msg)
	}
	return t, nil
}

// Close starts the same exit fade as a timeout and closes when it completes.
func (t *Toast) Close() tea.Cmd {
	if t.disposed {
		return nil
	}
	return t.beginFade(ReasonExplicit, t.env.Clock.Now())
}

// Unmount tears the toast down. Pending timers are cancelled and later
// messages become no-ops. OnClose is not called.
func (t *Toast) Unmount() {
	if t.disposed {
		return
	}
	n := t.timers.CancelAll()
	t.disposed = true
	t.mounted = false
	t.ticking = false
	t.exit = nil
	t.spring = nil
	t.tracker.Reset()
	t.log.Debugf("toast unmounted, %d pending timers cancelled", n)
}

func (t *Toast) onFrame(msg anim.FrameMsg) tea.Cmd {
	if t.disposed || t.closed {
		t.ticking = false
		return nil
	}
	now := msg.Time

	if cmd, done := t.advanceLifecycle(now); done {
		return cmd
	}
	if cmd, done := t.advanceDrag(now); done {
		return cmd
	}

	if t.animating() {
		return anim.Frame(t.ID())
	}
	t.ticking = false
	return nil
}

func (t *Toast) animating() bool {
	return t.phase == PhaseEntering ||
		t.phase == PhaseClosingByTimer ||
		t.exit != nil ||
		t.spring != nil
}

func (t *Toast) startFrames() tea.Cmd {
	if t.ticking || t.disposed || t.closed {
		return nil
	}
	t.ticking = true
	return anim.Frame(t.ID())
}

// closing reports whether an exit sequence has started.
func (t *Toast) closing() bool {
	return t.phase == PhaseClosingByTimer || t.phase == PhaseClosingByDrag || t.phase == PhaseClosed
}
