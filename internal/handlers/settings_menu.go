package handlers

import (
	"toastkit/internal/screens"
	"toastkit/internal/state"

	tea "github.com/charmbracelet/bubbletea"
)

// SettingsMenuHandler handles settings menu selections
type SettingsMenuHandler struct{}

// NewSettingsMenuHandler creates a new settings menu handler
func NewSettingsMenuHandler() *SettingsMenuHandler {
	return &SettingsMenuHandler{}
}

// HandleSelection toggles the selected setting or goes back to the main menu.
func (h *SettingsMenuHandler) HandleSelection(cursor int) (screen screens.Screen, cmd tea.Cmd) {
	switch cursor {
	case screens.SettingsPlacement:
		return screens.ScreenSettings, toggle(state.SettingPlacement)
	case screens.SettingsAnimation:
		return screens.ScreenSettings, toggle(state.SettingAnimation)
	case screens.SettingsMonitor:
		return screens.ScreenSettings, toggle(state.SettingMonitor)
	case screens.SettingsBack:
		return screens.ScreenMain, nil
	}
	return screens.ScreenSettings, nil
}

func toggle(s state.Setting) tea.Cmd {
	return func() tea.Msg {
		return state.ToggleMsg{Setting: s}
	}
}
