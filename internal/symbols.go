// Package internal provides Unicode symbol definitions with fallback support for cross-platform compatibility.
//
// The per-type toast icons default to the active symbol set, so terminals that
// cannot draw emoji still get a readable icon.
package internal

import (
	"os"
	"strings"
)

// SymbolSet defines a collection of symbols used throughout the UI
type SymbolSet struct {
	// Toast icons
	Success string
	Danger  string
	Warning string
	Info    string

	// Menu and decoration
	Cursor  string
	Bullet  string
	Sparkle string
	Pin     string
}

// UnicodeSymbols provides rich Unicode symbols for modern terminals
var UnicodeSymbols = SymbolSet{
	Success: "✓",
	Danger:  "✗",
	Warning: "⚠",
	Info:    "ℹ",

	Cursor:  "❯",
	Bullet:  "•",
	Sparkle: "✨",
	Pin:     "📌",
}

// ASCIISymbols provides ASCII-only fallbacks for compatibility
var ASCIISymbols = SymbolSet{
	Success: "[OK]",
	Danger:  "[X]",
	Warning: "[!]",
	Info:    "[i]",

	Cursor:  ">",
	Bullet:  "*",
	Sparkle: "*",
	Pin:     "[P]",
}

// CurrentSymbols holds the active symbol set based on terminal capabilities
var CurrentSymbols SymbolSet

func init() {
	CurrentSymbols = detectSymbolSet()
}

// detectSymbolSet determines the appropriate symbol set based on terminal capabilities
func detectSymbolSet() SymbolSet {
	// Check for explicit ASCII mode via environment variable
	if v := os.Getenv("TOASTKIT_ASCII"); v == "1" || v == "true" {
		return ASCIISymbols
	}

	// Check TERM environment variable for known problematic terminals
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "dumb" || term == "vt100" || strings.HasPrefix(term, "xterm-mono") {
		return ASCIISymbols
	}

	// Check for Windows Console (cmd.exe) which has limited Unicode support
	if os.Getenv("COMSPEC") != "" && os.Getenv("WT_SESSION") == "" {
		return ASCIISymbols
	}

	// Only use ASCII over SSH if the locale doesn't support UTF-8
	if os.Getenv("SSH_CLIENT") != "" || os.Getenv("SSH_TTY") != "" {
		locale := strings.ToLower(os.Getenv("LANG"))
		if !strings.Contains(locale, "utf-8") && !strings.Contains(locale, "utf8") {
			return ASCIISymbols
		}
	}

	return UnicodeSymbols
}

// ForceASCII switches to ASCII symbols regardless of terminal detection
func ForceASCII() {
	CurrentSymbols = ASCIISymbols
}

// ForceUnicode switches to Unicode symbols regardless of terminal detection
func ForceUnicode() {
	CurrentSymbols = UnicodeSymbols
}
