// Package host is a minimal toast manager for a Bubble Tea program.
//
// It assigns ids, mounts and unmounts toasts, routes frame, timer and pointer
// messages to their owner, and composes the visible toasts over the base view.
// Toasts are laid out in push order; there is no queueing or stacking policy.
//
// The host works in two coordinate systems: terminal cells, used for layout
// and mouse hit testing, and logical points, used by the toasts. CellWidth and
// CellHeight convert between them.
package host

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oklog/ulid/v2"

	"toastkit/internal/anim"
	"toastkit/internal/log"
	"toastkit/internal/state"
	"toastkit/internal/timer"
	"toastkit/internal/toast"
)

const (
	// DefaultCellWidth is the width of a terminal cell in points.
	DefaultCellWidth = 8.0
	// DefaultCellHeight is the height of a terminal cell in points.
	DefaultCellHeight = 16.0

	edgeMargin = 1
)

// Config configures a Host. Zero fields take defaults.
type Config struct {
	CellWidth  float64
	CellHeight float64
	Backdrop   lipgloss.Color
	Clock      toast.Clock
	// NewID assigns ids to pushed toasts that have none.
	NewID  func() string
	Logger log.Logger
}

func (c *Config) defaults() {
	if c.CellWidth <= 0 {
		c.CellWidth = DefaultCellWidth
	}
	if c.CellHeight <= 0 {
		c.CellHeight = DefaultCellHeight
	}
	if c.NewID == nil {
		c.NewID = NewULID
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
}

// NewULID returns a new lexically sortable toast id.
func NewULID() string {
	return ulid.Make().String()
}

// Host owns the active toasts of a program.
type Host struct {
	cfg Config
	log log.Logger

	toasts     []*toast.Toast
	cols, rows int
	// captured is the toast that received the last press, until release.
	captured string
}

// New returns an empty host sized to toast.DefaultViewport until the first
// tea.WindowSizeMsg arrives.
func New(cfg Config) *Host {
	cfg.defaults()
	return &Host{
		cfg:  cfg,
		log:  cfg.Logger.WithValues(log.Kv{"component": "toast-host"}),
		cols: toast.DefaultViewport.Cols,
		rows: toast.DefaultViewport.Rows,
	}
}

// Viewport answers the toasts' viewport query with the current terminal size.
func (h *Host) Viewport() toast.Viewport {
	return toast.Viewport{
		Width:  float64(h.cols) * h.cfg.CellWidth,
		Height: float64(h.rows) * h.cfg.CellHeight,
		Cols:   h.cols,
		Rows:   h.rows,
	}
}

// Push mounts a new toast and returns its id with the command starting it.
// An empty id is assigned; a duplicate id is rejected.
func (h *Host) Push(p toast.Props) (string, tea.Cmd) {
	if p.ID == "" {
		p.ID = h.cfg.NewID()
	}
	if h.find(p.ID) != nil {
		h.log.Warningf("toast %q already active, push ignored", p.ID)
		return "", nil
	}

	t := toast.New(p, toast.Env{
		Clock:    h.cfg.Clock,
		Viewport: h.Viewport,
		Backdrop: h.cfg.Backdrop,
		Logger:   h.cfg.Logger,
	})
	h.toasts = append(h.toasts, t)
	h.log.Debugf("toast %s pushed (%s)", p.ID, p.Type)

	return p.ID, t.Init()
}

// Toasts returns the active toasts in push order.
func (h *Host) Toasts() []*toast.Toast {
	return h.toasts
}

// Len returns the number of active toasts.
func (h *Host) Len() int {
	return len(h.toasts)
}

// Get returns the active toast with id, or nil.
func (h *Host) Get(id string) *toast.Toast {
	return h.find(id)
}

// Update handles the messages the host is responsible for and returns the
// follow-up command. Unrelated messages are ignored.
func (h *Host) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.cols, h.rows = msg.Width, msg.Height
		return nil

	case tea.MouseMsg:
		return h.onMouse(msg)

	case anim.FrameMsg:
		return h.route(msg.Owner, msg)

	case timer.FiredMsg:
		return h.route(msg.Owner, msg)

	case toast.PointerMsg:
		return h.route(msg.ID, msg)

	case toast.ClosedMsg:
		h.remove(msg.ID)
		h.log.Debugf("toast %s removed (%s)", msg.ID, msg.Reason)
		return nil

	case state.DismissMsg:
		t := h.find(msg.ID)
		if msg.ID == "" && len(h.toasts) > 0 {
			t = h.toasts[len(h.toasts)-1]
		}
		if t == nil {
			return nil
		}
		return t.Close()

	case state.DismissAllMsg:
		cmds := make([]tea.Cmd, 0, len(h.toasts))
		for _, t := range h.toasts {
			cmds = append(cmds, t.Close())
		}
		return tea.Batch(cmds...)
	}

	return nil
}

// UnmountAll tears down every toast without closing it.
func (h *Host) UnmountAll() {
	for _, t := range h.toasts {
		t.Unmount()
	}
	h.toasts = nil
	h.captured = ""
}

// route delivers msg to the toast with id. Messages for toasts that are gone are dropped.
func (h *Host) route(id string, msg tea.Msg) tea.Cmd {
	t := h.find(id)
	if t == nil {
		return nil
	}
	_, cmd := t.Update(msg)
	return cmd
}

func (h *Host) find(id string) *toast.Toast {
	for _, t := range h.toasts {
		if t.ID() == id {
			return t
		}
	}
	return nil
}

func (h *Host) remove(id string) {
	for i, t := range h.toasts {
		if t.ID() != id {
			continue
		}
		t.Unmount()
		h.toasts = append(h.toasts[:i], h.toasts[i+1:]...)
		if h.captured == id {
			h.captured = ""
		}
		return
	}
}

// onMouse turns terminal mouse events into toast pointer events. The toast
// under a left press captures the pointer until release.
func (h *Host) onMouse(msg tea.MouseMsg) tea.Cmd {
	pos := h.toPoints(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		p, ok := h.hitTest(msg.X, msg.Y)
		if !ok {
			return nil
		}
		h.captured = p.toast.ID()
		return h.route(h.captured, toast.PointerMsg{ID: h.captured, Kind: toast.PointerPress, Pos: pos})

	case tea.MouseActionMotion:
		if h.captured == "" {
			return nil
		}
		return h.route(h.captured, toast.PointerMsg{ID: h.captured, Kind: toast.PointerMove, Pos: pos})

	case tea.MouseActionRelease:
		if h.captured == "" {
			return nil
		}
		id := h.captured
		h.captured = ""
		return h.route(id, toast.PointerMsg{ID: id, Kind: toast.PointerRelease, Pos: pos})
	}
	return nil
}

func (h *Host) toPoints(col, row int) anim.Vec {
	return anim.Vec{X: float64(col) * h.cfg.CellWidth, Y: float64(row) * h.cfg.CellHeight}
}

// placed is a rendered toast with its cell rectangle.
type placed struct {
	toast      *toast.Toast
	view       string
	x, y, w, h int
}

func (p placed) contains(col, row int) bool {
	return col >= p.x && col < p.x+p.w && row >= p.y && row < p.y+p.h
}

// layout renders every visible toast and places it: centered horizontally,
// stacked from the top or bottom edge in push order, shifted by its transform.
func (h *Host) layout() []placed {
	out := make([]placed, 0, len(h.toasts))
	top, bottom := edgeMargin, h.rows-edgeMargin

	for _, t := range h.toasts {
		view := t.View()
		if view == "" {
			continue
		}
		w, ht := lipgloss.Width(view), lipgloss.Height(view)

		var y int
		if t.Props().Placement == toast.PlacementTop {
			y = top
			top += ht
		} else {
			bottom -= ht
			y = bottom
		}

		tr := t.Transform()
		x := (h.cols-w)/2 + int(math.Round(tr.Offset.X/h.cfg.CellWidth))
		y += int(math.Round(tr.Offset.Y / h.cfg.CellHeight))

		out = append(out, placed{toast: t, view: view, x: x, y: y, w: w, h: ht})
	}
	return out
}

// hitTest returns the topmost toast covering the cell.
func (h *Host) hitTest(col, row int) (placed, bool) {
	ps := h.layout()
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].contains(col, row) {
			return ps[i], true
		}
	}
	return placed{}, false
}

// View draws the visible toasts over base.
func (h *Host) View(base string) string {
	for _, p := range h.layout() {
		base = overlay(base, p.view, p.x, p.y, h.cols)
	}
	return base
}
