// Package internal provides the core application model and state management for Toastkit's TUI.
//
// This package implements the Bubble Tea model pattern for the interactive demo.
// The model handles:
//   - Screen transitions between the main menu, settings and about screens
//   - Turning menu selections into toast pushes on the toast host
//   - Forwarding window, mouse, frame and timer messages to the host
//   - Persisting settings toggled from the settings screen
//   - Running the optional system monitor and pushing its alerts as toasts
//
// The main Model struct contains all UI state and implements the tea.Model interface
// for integration with the Bubble Tea framework.
package internal

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"toastkit/internal/handlers"
	"toastkit/internal/host"
	"toastkit/internal/log"
	"toastkit/internal/screens"
	"toastkit/internal/state"
	"toastkit/internal/sysmon"
	"toastkit/internal/toast"
)

// sampleTimeout bounds a single system monitor sample.
const sampleTimeout = 2 * time.Second

// Model represents the complete application state for the Toastkit TUI.
// The toast host is shared by pointer, so copies of the Model made by the
// Bubble Tea runtime all see the same toasts.
type Model struct {
	// Screen and navigation state
	screen  screens.Screen
	cursor  int
	choices []string

	// Display dimensions
	width  int
	height int

	// Configuration
	cfg     Config
	cfgPath string // empty keeps settings in memory only
	symbols SymbolSet
	log     log.Logger

	// Toasts
	host   *host.Host
	pushed int
	status string

	// System monitor
	source   sysmon.Source
	monitor  *sysmon.Monitor
	sampling bool // a Tick/Sample chain is in flight

	mainMenu     *handlers.MainMenuHandler
	settingsMenu *handlers.SettingsMenuHandler
}

// Option customizes InitialModel.
type Option func(*options)

type options struct {
	cfgPath string
	logger  log.Logger
	source  sysmon.Source
	clock   toast.Clock
	newID   func() string
}

// WithConfigPath saves toggled settings to path.
func WithConfigPath(path string) Option {
	return func(o *options) { o.cfgPath = path }
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSource replaces the system usage source of the monitor.
func WithSource(src sysmon.Source) Option {
	return func(o *options) { o.source = src }
}

// WithClock replaces the clock the toasts animate with.
func WithClock(c toast.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithIDs replaces the toast id generator.
func WithIDs(f func() string) Option {
	return func(o *options) { o.newID = f }
}

// InitialModel creates a new Model on the main menu.
func InitialModel(cfg Config, opts ...Option) Model {
	o := options{logger: log.Noop, source: sysmon.System{}}
	for _, opt := range opts {
		opt(&o)
	}

	symbols := CurrentSymbols
	if cfg.Display.ASCII {
		symbols = ASCIISymbols
	}

	return Model{
		screen:  screens.ScreenMain,
		choices: screens.MainMenuChoices,
		width:   toast.DefaultViewport.Cols,
		height:  toast.DefaultViewport.Rows,
		cfg:     cfg,
		cfgPath: o.cfgPath,
		symbols: symbols,
		log:     o.logger,
		host: host.New(host.Config{
			CellWidth:  cfg.Display.CellWidth,
			CellHeight: cfg.Display.CellHeight,
			Backdrop:   backgroundColor,
			Clock:      o.clock,
			NewID:      o.newID,
			Logger:     o.logger,
		}),
		source:       o.source,
		sampling:     cfg.Monitor.Enabled,
		monitor:      sysmon.NewMonitor(cfg.Thresholds()),
		mainMenu:     handlers.NewMainMenuHandler(),
		settingsMenu: handlers.NewSettingsMenuHandler(),
	}
}

// Host returns the toast host.
func (m Model) Host() *host.Host {
	return m.host
}

// Init greets with a toast and takes the first system sample when the monitor is enabled.
func (m Model) Init() tea.Cmd {
	welcome := func() tea.Msg {
		return state.PushMsg{Type: toast.TypeSuccess, Message: "Welcome to " + AppName + "! Drag me sideways to dismiss."}
	}
	if !m.sampling {
		return welcome
	}
	return tea.Batch(welcome, sysmon.Sample(m.source, sampleTimeout))
}

// Update implements tea.Model.Update() and handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.host.Update(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case state.PushMsg:
		return m, m.push(msg)

	case state.PressedMsg:
		m.status = fmt.Sprintf("%s Pressed toast %s", m.symbols.Pin, shortID(msg.ID))
		return m, nil

	case state.ToggleMsg:
		return m, m.toggle(msg.Setting)

	case toast.ClosedMsg:
		m.status = fmt.Sprintf("Toast %s closed (%s)", shortID(msg.ID), msg.Reason)
		return m, m.host.Update(msg)

	case sysmon.TickMsg:
		if !m.cfg.Monitor.Enabled {
			m.sampling = false
			return m, nil
		}
		return m, sysmon.Sample(m.source, sampleTimeout)

	case sysmon.ReadingMsg:
		return m, m.onReading(msg)
	}

	// Mouse, frames, timers and dismissals belong to the host.
	return m, m.host.Update(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.host.UnmountAll()
		return m, tea.Quit
	}

	// Any other key leaves the about screen
	if m.screen == screens.ScreenAbout {
		m.goTo(screens.ScreenMain)
		return m, nil
	}

	switch msg.String() {
	case "q":
		if m.screen == screens.ScreenMain {
			m.host.UnmountAll()
			return m, tea.Quit
		}
		m.goTo(screens.ScreenMain)
		return m, nil

	case "esc":
		m.goTo(screens.ScreenMain)
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
		return m, nil

	case "enter", " ":
		return m.handleSelection()

	case "d":
		return m, m.host.Update(state.DismissMsg{})

	case "x":
		return m, m.host.Update(state.DismissAllMsg{})
	}
	return m, nil
}

// handleSelection routes the cursor to the handler of the current screen.
func (m Model) handleSelection() (tea.Model, tea.Cmd) {
	var (
		next screens.Screen
		cmd  tea.Cmd
	)
	switch m.screen {
	case screens.ScreenMain:
		if m.cursor == screens.MainExit {
			m.host.UnmountAll()
		}
		next, cmd = m.mainMenu.HandleSelection(m.cursor)
	case screens.ScreenSettings:
		next, cmd = m.settingsMenu.HandleSelection(m.cursor)
	default:
		return m, nil
	}

	if next != m.screen {
		m.goTo(next)
	}
	return m, cmd
}

func (m *Model) goTo(s screens.Screen) {
	m.screen = s
	m.cursor = 0
	m.choices = m.menuChoices()
}

func (m *Model) menuChoices() []string {
	if m.screen == screens.ScreenSettings {
		return screens.SettingsChoices(m.cfg.Toast.Placement, m.cfg.Toast.Animation, m.cfg.Monitor.Enabled)
	}
	return screens.GetMenuChoices(m.screen)
}

// push builds the toast props for msg from the configured defaults and mounts it.
func (m *Model) push(msg state.PushMsg) tea.Cmd {
	m.pushed++

	opts := m.cfg.ToastOptions(m.symbols)
	opts.Type = msg.Type
	opts.Data = m.pushed
	if msg.Sticky {
		opts.Duration = 0
	}
	opts.OnPress = func(id string) tea.Cmd {
		return func() tea.Msg { return state.PressedMsg{ID: id} }
	}

	logger := m.log
	props := toast.Props{
		Options: opts,
		Message: msg.Message,
		OnClose: func() { logger.Debugf("toast %q closed", msg.Message) },
		RenderType: map[string]toast.RenderFunc{
			handlers.CustomTypeTag: renderInfoToast,
		},
	}
	if msg.CustomRender {
		props.RenderToast = renderCardToast
	}

	_, cmd := m.host.Push(props)
	return cmd
}

// toggle flips a setting, refreshes the settings menu and persists the change.
func (m *Model) toggle(s state.Setting) tea.Cmd {
	var cmd tea.Cmd

	switch s {
	case state.SettingPlacement:
		if toast.ParsePlacement(m.cfg.Toast.Placement) == toast.PlacementTop {
			m.cfg.Toast.Placement = toast.PlacementBottom.String()
		} else {
			m.cfg.Toast.Placement = toast.PlacementTop.String()
		}
	case state.SettingAnimation:
		if toast.ParseAnimationType(m.cfg.Toast.Animation) == toast.AnimationZoomIn {
			m.cfg.Toast.Animation = toast.AnimationSlideIn.String()
		} else {
			m.cfg.Toast.Animation = toast.AnimationZoomIn.String()
		}
	case state.SettingMonitor:
		m.cfg.Monitor.Enabled = !m.cfg.Monitor.Enabled
		if m.cfg.Monitor.Enabled {
			cmd = m.startMonitor()
		}
	}

	if m.screen == screens.ScreenSettings {
		m.choices = m.menuChoices()
	}

	if m.cfgPath == "" {
		return cmd
	}
	if err := SaveConfig(m.cfgPath, m.cfg); err != nil {
		m.log.Warningf("could not save settings: %s", err)
		m.status = "Could not save settings: " + err.Error()
	}
	return cmd
}

// startMonitor samples right away unless a sampling chain is already running.
func (m *Model) startMonitor() tea.Cmd {
	if m.sampling {
		return nil
	}
	m.sampling = true
	return sysmon.Sample(m.source, sampleTimeout)
}

// onReading turns level changes into toasts and schedules the next sample.
func (m *Model) onReading(msg sysmon.ReadingMsg) tea.Cmd {
	if !m.cfg.Monitor.Enabled {
		m.sampling = false
		return nil
	}

	next := sysmon.Tick(m.cfg.Monitor.Interval)
	if msg.Err != nil {
		m.log.Warningf("system monitor sample failed: %s", msg.Err)
		return next
	}

	cmds := []tea.Cmd{next}
	for _, a := range m.monitor.Observe(msg.Reading) {
		m.log.WithValues(log.Kv{"type": a.Type.String()}).Infof("system monitor: %s", a.Message)
		cmds = append(cmds, m.push(state.PushMsg{Type: a.Type, Message: a.Message}))
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.View(): the current screen with the toasts drawn on top.
func (m Model) View() string {
	var base string
	switch m.screen {
	case screens.ScreenMain:
		base = m.renderMainMenu()
	case screens.ScreenSettings:
		base = m.renderSettings()
	case screens.ScreenAbout:
		base = m.renderAbout()
	default:
		base = "Unknown screen"
	}
	return m.host.View(base)
}

// shortID trims ulids for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}
