package screens

// Screen represents the different screens/views in the application
type Screen int

// Screen constants define all possible screens in the application
const (
	ScreenMain Screen = iota
	ScreenSettings
	ScreenAbout
)

// String returns the string representation of a screen
func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "Main Menu"
	case ScreenSettings:
		return "Settings"
	case ScreenAbout:
		return "About"
	default:
		return "Unknown"
	}
}
