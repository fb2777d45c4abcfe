// Package internal provides configuration management and persistent storage for user preferences.
//
// This module handles:
//   - Loading the YAML configuration file with defaults for every missing field
//   - Validating toast, display and monitor settings
//   - Saving settings changed from the settings screen, atomically
//
// The configuration lives at ~/.config/toastkit/config.yaml. A missing file is
// not an error for callers that only want defaults: LoadConfig returns the
// defaults together with ErrConfigNotFound.
package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"toastkit/internal/host"
	"toastkit/internal/sysmon"
	"toastkit/internal/toast"
)

// ErrConfigNotFound is returned by LoadConfig when the config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// Config is the persistent application configuration.
type Config struct {
	Toast   ToastConfig   `yaml:"toast"`
	Display DisplayConfig `yaml:"display"`
	Monitor MonitorConfig `yaml:"monitor"`
}

// ToastConfig holds the defaults applied to every pushed toast.
type ToastConfig struct {
	// Duration before auto-dismiss; 0 keeps toasts until dismissed.
	Duration          time.Duration `yaml:"duration"`
	AnimationDuration time.Duration `yaml:"animation_duration"`
	Placement         string        `yaml:"placement"`
	Animation         string        `yaml:"animation"`

	// Per-type overrides. Empty icons fall back to the active symbol set,
	// empty colors to the built-in defaults.
	SuccessIcon  string `yaml:"success_icon,omitempty"`
	DangerIcon   string `yaml:"danger_icon,omitempty"`
	WarningIcon  string `yaml:"warning_icon,omitempty"`
	NormalColor  string `yaml:"normal_color,omitempty"`
	SuccessColor string `yaml:"success_color,omitempty"`
	DangerColor  string `yaml:"danger_color,omitempty"`
	WarningColor string `yaml:"warning_color,omitempty"`
}

// DisplayConfig describes the terminal surface.
type DisplayConfig struct {
	// CellWidth and CellHeight are the size of a terminal cell in points.
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	ASCII      bool    `yaml:"ascii"`
}

// MonitorConfig configures the system usage monitor.
type MonitorConfig struct {
	Enabled       bool          `yaml:"enabled"`
	Interval      time.Duration `yaml:"interval"`
	MemoryWarning float64       `yaml:"memory_warning"`
	MemoryDanger  float64       `yaml:"memory_danger"`
	CPUWarning    float64       `yaml:"cpu_warning"`
	CPUDanger     float64       `yaml:"cpu_danger"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Toast: ToastConfig{
			Duration:          toast.DefaultDuration,
			AnimationDuration: toast.DefaultAnimationDuration,
			Placement:         toast.PlacementBottom.String(),
			Animation:         toast.AnimationSlideIn.String(),
		},
		Display: DisplayConfig{
			CellWidth:  host.DefaultCellWidth,
			CellHeight: host.DefaultCellHeight,
		},
		Monitor: MonitorConfig{
			Interval:      5 * time.Second,
			MemoryWarning: sysmon.DefaultThresholds.MemoryWarning,
			MemoryDanger:  sysmon.DefaultThresholds.MemoryDanger,
			CPUWarning:    sysmon.DefaultThresholds.CPUWarning,
			CPUDanger:     sysmon.DefaultThresholds.CPUDanger,
		},
	}
}

// Validate checks the configuration for values the application cannot use.
func (c Config) Validate() error {
	if c.Toast.Duration < 0 {
		return fmt.Errorf("toast duration must not be negative, got: %s", c.Toast.Duration)
	}
	if c.Toast.AnimationDuration < 0 {
		return fmt.Errorf("toast animation duration must not be negative, got: %s", c.Toast.AnimationDuration)
	}
	switch c.Toast.Placement {
	case toast.PlacementTop.String(), toast.PlacementBottom.String():
	default:
		return fmt.Errorf("toast placement must be top or bottom, got: %q", c.Toast.Placement)
	}
	switch c.Toast.Animation {
	case toast.AnimationSlideIn.String(), toast.AnimationZoomIn.String():
	default:
		return fmt.Errorf("toast animation must be slide-in or zoom-in, got: %q", c.Toast.Animation)
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("display cell size must be positive, got: %gx%g", c.Display.CellWidth, c.Display.CellHeight)
	}
	if c.Monitor.Enabled && c.Monitor.Interval <= 0 {
		return fmt.Errorf("monitor interval must be positive, got: %s", c.Monitor.Interval)
	}
	if c.Monitor.MemoryWarning > c.Monitor.MemoryDanger {
		return fmt.Errorf("monitor memory warning (%g) is above danger (%g)", c.Monitor.MemoryWarning, c.Monitor.MemoryDanger)
	}
	if c.Monitor.CPUWarning > c.Monitor.CPUDanger {
		return fmt.Errorf("monitor cpu warning (%g) is above danger (%g)", c.Monitor.CPUWarning, c.Monitor.CPUDanger)
	}
	return nil
}

// ToastOptions converts the toast section into default toast options.
// Icons not configured come from symbols.
func (c Config) ToastOptions(symbols SymbolSet) toast.Options {
	pick := func(v, def string) string {
		if v != "" {
			return v
		}
		return def
	}

	opts := toast.DefaultOptions()
	opts.Duration = c.Toast.Duration
	opts.AnimationDuration = c.Toast.AnimationDuration
	opts.Placement = toast.ParsePlacement(c.Toast.Placement)
	opts.AnimationType = toast.ParseAnimationType(c.Toast.Animation)
	opts.SuccessIcon = pick(c.Toast.SuccessIcon, symbols.Success)
	opts.DangerIcon = pick(c.Toast.DangerIcon, symbols.Danger)
	opts.WarningIcon = pick(c.Toast.WarningIcon, symbols.Warning)
	opts.NormalColor = lipgloss.Color(c.Toast.NormalColor)
	opts.SuccessColor = lipgloss.Color(c.Toast.SuccessColor)
	opts.DangerColor = lipgloss.Color(c.Toast.DangerColor)
	opts.WarningColor = lipgloss.Color(c.Toast.WarningColor)
	return opts
}

// Thresholds returns the monitor thresholds.
func (c Config) Thresholds() sysmon.Thresholds {
	return sysmon.Thresholds{
		MemoryWarning: c.Monitor.MemoryWarning,
		MemoryDanger:  c.Monitor.MemoryDanger,
		CPUWarning:    c.Monitor.CPUWarning,
		CPUDanger:     c.Monitor.CPUDanger,
	}
}

// ConfigPath returns the default configuration file path, ~/.config/toastkit/config.yaml.
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "toastkit", "config.yaml"), nil
}

// LoadConfig reads the configuration at path on top of the defaults. When the
// file does not exist it returns the defaults and an error wrapping ErrConfigNotFound.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes cfg to path, creating its directory. The file is written
// to a temporary file first and renamed into place.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp config file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename config file: %w", err)
	}

	return nil
}
