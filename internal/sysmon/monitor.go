package sysmon

import (
	"fmt"

	"toastkit/internal/toast"
)

// Level is the severity of a metric.
type Level int

const (
	LevelOK Level = iota
	LevelWarning
	LevelDanger
)

func (l Level) String() string {
	switch l {
	case LevelOK:
		return "ok"
	case LevelWarning:
		return "warning"
	case LevelDanger:
		return "danger"
	default:
		return "unknown"
	}
}

// Thresholds are the usage percentages at which a metric becomes a warning
// or a danger.
type Thresholds struct {
	MemoryWarning float64
	MemoryDanger  float64
	CPUWarning    float64
	CPUDanger     float64
}

// DefaultThresholds are used for zero Thresholds fields.
var DefaultThresholds = Thresholds{
	MemoryWarning: 80,
	MemoryDanger:  95,
	CPUWarning:    85,
	CPUDanger:     97,
}

// Alert is a toast worth showing after a level change.
type Alert struct {
	Type    toast.Type
	Message string
}

// Monitor tracks the level of each metric between readings.
type Monitor struct {
	th  Thresholds
	mem Level
	cpu Level
}

// NewMonitor returns a monitor with every metric at LevelOK.
func NewMonitor(th Thresholds) *Monitor {
	if th.MemoryWarning <= 0 {
		th.MemoryWarning = DefaultThresholds.MemoryWarning
	}
	if th.MemoryDanger <= 0 {
		th.MemoryDanger = DefaultThresholds.MemoryDanger
	}
	if th.CPUWarning <= 0 {
		th.CPUWarning = DefaultThresholds.CPUWarning
	}
	if th.CPUDanger <= 0 {
		th.CPUDanger = DefaultThresholds.CPUDanger
	}
	return &Monitor{th: th}
}

// Levels returns the current memory and CPU levels.
func (m *Monitor) Levels() (memory, cpu Level) {
	return m.mem, m.cpu
}

// Observe records r and returns one alert per metric whose level changed.
func (m *Monitor) Observe(r Reading) []Alert {
	var alerts []Alert

	if l := level(r.MemoryPercent, m.th.MemoryWarning, m.th.MemoryDanger); l != m.mem {
		m.mem = l
		alerts = append(alerts, alert("Memory", l, r.MemoryPercent))
	}
	if l := level(r.CPUPercent, m.th.CPUWarning, m.th.CPUDanger); l != m.cpu {
		m.cpu = l
		alerts = append(alerts, alert("CPU", l, r.CPUPercent))
	}
	return alerts
}

func level(v, warning, danger float64) Level {
	switch {
	case v >= danger:
		return LevelDanger
	case v >= warning:
		return LevelWarning
	default:
		return LevelOK
	}
}

func alert(metric string, l Level, v float64) Alert {
	switch l {
	case LevelDanger:
		return Alert{Type: toast.TypeDanger, Message: fmt.Sprintf("%s usage critical: %.0f%%", metric, v)}
	case LevelWarning:
		return Alert{Type: toast.TypeWarning, Message: fmt.Sprintf("%s usage high: %.0f%%", metric, v)}
	default:
		return Alert{Type: toast.TypeSuccess, Message: fmt.Sprintf("%s usage back to normal: %.0f%%", metric, v)}
	}
}
