package handlers

import (
	"toastkit/internal/screens"
	"toastkit/internal/state"
	"toastkit/internal/toast"

	tea "github.com/charmbracelet/bubbletea"
)

// CustomTypeTag is the type tag of the custom-type demo toast. The application
// registers a per-type renderer for it.
const CustomTypeTag = "info"

// MainMenuHandler handles main menu selections and returns the next screen state
type MainMenuHandler struct{}

// NewMainMenuHandler creates a new main menu handler
func NewMainMenuHandler() *MainMenuHandler {
	return &MainMenuHandler{}
}

// HandleSelection processes a main menu selection and returns the next state.
// Toast entries stay on the main menu and return a command pushing the toast.
func (h *MainMenuHandler) HandleSelection(cursor int) (screen screens.Screen, cmd tea.Cmd) {
	switch cursor {
	case screens.MainNormal:
		return screens.ScreenMain, push(state.PushMsg{Type: toast.TypeNormal, Message: "Hello from toastkit"})
	case screens.MainSuccess:
		return screens.ScreenMain, push(state.PushMsg{Type: toast.TypeSuccess, Message: "Settings saved"})
	case screens.MainDanger:
		return screens.ScreenMain, push(state.PushMsg{Type: toast.TypeDanger, Message: "Connection lost"})
	case screens.MainWarning:
		return screens.ScreenMain, push(state.PushMsg{Type: toast.TypeWarning, Message: "Battery is running low"})
	case screens.MainCustomType:
		return screens.ScreenMain, push(state.PushMsg{Type: toast.Custom(CustomTypeTag), Message: "A new version is available"})
	case screens.MainSticky:
		return screens.ScreenMain, push(state.PushMsg{Type: toast.TypeNormal, Message: "I stay until you swipe me away", Sticky: true})
	case screens.MainCustomRender:
		return screens.ScreenMain, push(state.PushMsg{Type: toast.TypeNormal, Message: "Rendered by a custom function", CustomRender: true})
	case screens.MainSettings:
		return screens.ScreenSettings, nil
	case screens.MainAbout:
		return screens.ScreenAbout, nil
	case screens.MainExit:
		return screens.ScreenMain, tea.Quit
	}
	return screens.ScreenMain, nil
}

func push(msg state.PushMsg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
