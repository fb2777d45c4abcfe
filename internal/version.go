// Package internal provides version information and build metadata for Toastkit.
//
// This module centralizes all version-related constants and provides formatted strings
// for consistent display across the application. To update the version, simply change
// the AppVersion constant - all other version strings will be automatically updated.
package internal

// Application metadata constants.
// These constants define the core identity and versioning information for Toastkit.
const (
	// AppName is the official name of the application
	AppName = "Toastkit"

	// AppVersion follows semantic versioning (major.minor.patch)
	AppVersion = "0.4.2"

	// AppAuthor contains author information
	AppAuthor = "the Toastkit authors"

	// AppDesc is the tagline/description used in UI and documentation
	AppDesc = "Swipeable Toast Notifications for the Terminal"
)

// GetVersionString returns just the version number for programmatic use.
// Example: "0.4.2"
func GetVersionString() string {
	return AppVersion
}

// GetFullVersionString returns the application name with version for display.
// Example: "Toastkit v0.4.2"
func GetFullVersionString() string {
	return AppName + " v" + AppVersion
}

// GetSubtitle returns a compact version and author string for UI footers.
// Example: "v0.4.2 by the Toastkit authors"
func GetSubtitle() string {
	return "v" + AppVersion + " by " + AppAuthor
}

// GetAboutText returns the standard about text for help screens.
// Example: "Toastkit v0.4.2 - Swipeable Toast Notifications for the Terminal"
func GetAboutText() string {
	return AppName + " v" + AppVersion + " - " + AppDesc
}
