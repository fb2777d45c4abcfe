// Package state holds the tea.Msg types shared by the application model,
// the menu handlers and the toast host.
package state

import "toastkit/internal/toast"

// PushMsg asks the application to show a new toast. Fields left empty are
// filled in from the configured defaults.
type PushMsg struct {
	Type    toast.Type
	Message string
	// Sticky toasts never auto-dismiss.
	Sticky bool
	// CustomRender replaces the default layout with the whole-toast renderer.
	CustomRender bool
}

// DismissMsg closes one toast through its exit animation. An empty ID
// targets the most recently pushed toast.
type DismissMsg struct {
	ID string
}

// DismissAllMsg closes every active toast.
type DismissAllMsg struct{}

// PressedMsg reports a tap on a toast that did not turn into a drag.
type PressedMsg struct {
	ID string
}

// Setting is a user preference that can be toggled from the settings screen.
type Setting int

const (
	SettingPlacement Setting = iota
	SettingAnimation
	SettingMonitor
)

// ToggleMsg flips a setting.
type ToggleMsg struct {
	Setting Setting
}
