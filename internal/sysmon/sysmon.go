// Package sysmon samples system memory and CPU usage and turns threshold
// crossings into toast alerts.
//
// Sampling runs off the Update loop as tea.Cmd values: Tick waits for the next
// interval, Sample reads the Source once. The Monitor is edge triggered, so a
// level that stays put produces no further alerts.
package sysmon

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Reading is one sample of system usage, in percent.
type Reading struct {
	MemoryPercent float64
	CPUPercent    float64
}

// Source reads the current system usage.
type Source interface {
	Sample(ctx context.Context) (Reading, error)
}

// System is the gopsutil backed Source.
type System struct{}

// Sample reads virtual memory usage and the CPU usage since the previous call.
// The first call on a process reports the CPU usage since boot.
func (System) Sample(ctx context.Context) (Reading, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Reading{}, fmt.Errorf("reading memory usage: %w", err)
	}

	cpus, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return Reading{}, fmt.Errorf("reading cpu usage: %w", err)
	}
	var c float64
	if len(cpus) > 0 {
		c = cpus[0]
	}

	return Reading{MemoryPercent: vm.UsedPercent, CPUPercent: c}, nil
}

// TickMsg tells the receiver a new sample is due.
type TickMsg struct {
	Time time.Time
}

// ReadingMsg carries the result of Sample.
type ReadingMsg struct {
	Reading Reading
	Err     error
}

// Tick schedules the next sample.
func Tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// Sample reads src once, giving up after timeout.
func Sample(src Source, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		r, err := src.Sample(ctx)
		return ReadingMsg{Reading: r, Err: err}
	}
}
