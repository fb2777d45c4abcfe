package screens

import "fmt"

// Menu choice constants for different screens
var (
	// MainMenuChoices defines the main menu options in the correct order
	MainMenuChoices = []string{
		"💬 Normal Toast",
		"✅ Success Toast",
		"🛑 Danger Toast",
		"⚠️ Warning Toast",
		"🧩 Custom Type Toast",
		"📌 Sticky Toast",
		"🎨 Custom Rendered Toast",
		"⚙️ Settings",
		"ℹ️ About",
		"❌ Exit",
	}
)

// Main menu positions.
const (
	MainNormal = iota
	MainSuccess
	MainDanger
	MainWarning
	MainCustomType
	MainSticky
	MainCustomRender
	MainSettings
	MainAbout
	MainExit
)

// Settings menu positions.
const (
	SettingsPlacement = iota
	SettingsAnimation
	SettingsMonitor
	SettingsBack
)

// SettingsChoices builds the settings menu showing the current values.
func SettingsChoices(placement, animation string, monitor bool) []string {
	state := "off"
	if monitor {
		state = "on"
	}
	return []string{
		fmt.Sprintf("📍 Placement: %s", placement),
		fmt.Sprintf("🎞️ Animation: %s", animation),
		fmt.Sprintf("📊 System Monitor: %s", state),
		"⬅️ Back",
	}
}

// GetMenuChoices returns the static menu choices for a given screen.
// Settings choices depend on the current configuration and are built with SettingsChoices.
func GetMenuChoices(screen Screen) []string {
	switch screen {
	case ScreenMain:
		return MainMenuChoices
	default:
		return []string{}
	}
}
