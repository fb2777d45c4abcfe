package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"toastkit/internal/log"
)

const (
	// DefaultDuration is the auto-dismiss delay of DefaultOptions.
	DefaultDuration = 5 * time.Second
	// DefaultAnimationDuration is the entrance/exit duration of DefaultOptions.
	DefaultAnimationDuration = 250 * time.Millisecond
)

// Options are the per-toast settings chosen by whoever pushes the toast.
type Options struct {
	// ID is assigned by the manager and stable for the toast's life.
	ID   string
	Icon string
	Type Type
	// Duration before auto-dismiss. Zero or negative never auto-dismisses.
	Duration          time.Duration
	Placement         Placement
	Style             lipgloss.Style
	TextStyle         lipgloss.Style
	AnimationDuration time.Duration
	AnimationType     AnimationType

	SuccessIcon string
	DangerIcon  string
	WarningIcon string

	NormalColor  lipgloss.Color
	SuccessColor lipgloss.Color
	DangerColor  lipgloss.Color
	WarningColor lipgloss.Color

	// OnPress is invoked with the toast id on a tap that did not become a drag.
	OnPress func(id string) tea.Cmd
	// Data is an arbitrary payload for custom renderers.
	Data any
}

// DefaultOptions returns the options used when the caller sets nothing.
func DefaultOptions() Options {
	return Options{
		Type:              TypeNormal,
		Duration:          DefaultDuration,
		Placement:         PlacementBottom,
		AnimationDuration: DefaultAnimationDuration,
		AnimationType:     AnimationSlideIn,
	}
}

// RenderFunc renders a whole toast.
type RenderFunc func(t *Toast) string

// Props is everything a Toast is constructed from.
type Props struct {
	Options

	Message string
	// OnClose is called exactly once when the toast closes.
	OnClose func()

	// RenderToast replaces the default layout for every type.
	RenderToast RenderFunc
	// RenderType replaces the layout for an exact type tag. It wins over RenderToast.
	RenderType map[string]RenderFunc
}

// Clock tells the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Viewport is the host surface size, in logical points and in cells.
type Viewport struct {
	Width, Height float64
	Cols, Rows    int
}

// DefaultViewport is used when the host provides no viewport query.
var DefaultViewport = Viewport{Width: 800, Height: 480, Cols: 100, Rows: 30}

// Env holds the collaborators a toast needs from its host.
type Env struct {
	Clock Clock
	// Viewport is queried whenever the current surface size is needed.
	Viewport func() Viewport
	// Backdrop is the color a fading toast blends into.
	Backdrop lipgloss.Color
	Logger   log.Logger
}

func (e *Env) defaults() {
	if e.Clock == nil {
		e.Clock = ClockFunc(time.Now)
	}
	if e.Viewport == nil {
		e.Viewport = func() Viewport { return DefaultViewport }
	}
	if e.Backdrop == "" {
		e.Backdrop = lipgloss.Color("#1a1b26")
	}
	if e.Logger == nil {
		e.Logger = log.Noop
	}
}
