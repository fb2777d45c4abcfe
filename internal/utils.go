// Package internal provides shared helpers for the Toastkit application.
package internal

import (
	"os"
	"path/filepath"
)

// LogFilePath determines the location of the toastkit log file.
// The TUI owns the terminal, so logs go to ~/.cache/toastkit/toastkit.log,
// falling back to /tmp/toastkit.log if the cache directory cannot be created.
// When running with sudo, the original user's home directory is used.
func LogFilePath() string {
	var homeDir string
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" {
		homeDir = "/home/" + sudoUser
	} else {
		var err error
		homeDir, err = os.UserHomeDir()
		if err != nil {
			return "/tmp/toastkit.log"
		}
	}

	logDir := filepath.Join(homeDir, ".cache", "toastkit")
	if err := os.MkdirAll(logDir, 0755); err == nil {
		return filepath.Join(logDir, "toastkit.log")
	}

	return "/tmp/toastkit.log"
}
