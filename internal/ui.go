package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"toastkit/internal/toast"
)

// Styles
var (
	// Tokyo Night palette
	primaryColor    = lipgloss.Color("#7aa2f7") // blue
	secondaryColor  = lipgloss.Color("#9ece6a") // green
	accentColor     = lipgloss.Color("#bb9af7") // purple
	warningColor    = lipgloss.Color("#e0af68") // yellow
	textColor       = lipgloss.Color("#c0caf5") // foreground
	dimColor        = lipgloss.Color("#565f89") // comment
	backgroundColor = lipgloss.Color("#1a1b26") // background
	borderColor     = lipgloss.Color("#414868") // border

	titleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true).
			Align(lipgloss.Center).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Align(lipgloss.Center).
			MarginBottom(1)

	menuItemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2).
			Foreground(textColor)

	selectedMenuItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				PaddingRight(2).
				Background(primaryColor).
				Foreground(backgroundColor).
				Bold(true)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 3).
			Margin(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Align(lipgloss.Center)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Align(lipgloss.Center).
			Italic(true).
			MarginTop(1)

	infoBoxStyle = lipgloss.NewStyle().
			Background(borderColor).
			Foreground(textColor).
			Padding(0, 1)

	// Toast renderers
	infoToastStyle = lipgloss.NewStyle().
			Foreground(backgroundColor).
			Background(primaryColor).
			Bold(true).
			Padding(0, 2)

	cardToastStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(backgroundColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

const banner = `╔╦╗┌─┐┌─┐┌─┐┌┬┐┬┌─┬┌┬┐
 ║ │ │├─┤└─┐ │ ├┴┐│ │
 ╩ └─┘┴ ┴└─┘ ┴ ┴ ┴┴ ┴ `

// Render the main menu
func (m Model) renderMainMenu() string {
	var s strings.Builder

	s.WriteString(m.renderHeader() + "\n\n")
	s.WriteString(m.renderMenu())

	info := infoBoxStyle.Render(fmt.Sprintf("%d active %s %s %s %s",
		m.host.Len(), pluralToasts(m.host.Len()), m.symbols.Bullet,
		m.cfg.Toast.Placement, m.cfg.Toast.Animation))
	s.WriteString("\n" + info + "\n")

	s.WriteString(m.renderStatus())
	s.WriteString("\n" + m.renderHelp())

	return m.frame(s.String())
}

// Render the settings menu
func (m Model) renderSettings() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("⚙️ Settings") + "\n\n")
	s.WriteString(m.renderMenu())

	if path := m.cfgPath; path != "" {
		s.WriteString("\n" + infoBoxStyle.Render("Saved to "+path) + "\n")
	}

	s.WriteString(m.renderStatus())
	s.WriteString("\n" + m.renderHelp())

	return m.frame(s.String())
}

// Render about screen
func (m Model) renderAbout() string {
	var s strings.Builder

	s.WriteString(m.renderHeader() + "\n\n")

	about := GetAboutText() + `

Powered by Bubble Tea, Lipgloss & Harmonica

` + m.symbols.Bullet + ` Toasts fade or zoom in and dismiss themselves after a while
` + m.symbols.Bullet + ` Drag a toast sideways past 50pt and let go to swipe it away
` + m.symbols.Bullet + ` A shorter drag springs back into place
` + m.symbols.Bullet + ` Click a toast without dragging to press it

Log: ` + LogFilePath() + `

Press any key to return to main menu`

	s.WriteString(lipgloss.NewStyle().
		Foreground(textColor).
		Margin(0, 2).
		Align(lipgloss.Left).
		Render(about))

	return m.frame(s.String())
}

// Render header with the banner
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(primaryColor).Bold(true).Render(banner)
	desc := titleStyle.Render(AppDesc)
	subtitle := subtitleStyle.Render(GetSubtitle())

	return lipgloss.JoinVertical(lipgloss.Center, title, desc, subtitle)
}

func (m Model) renderMenu() string {
	var s strings.Builder
	for i, choice := range m.choices {
		if m.cursor == i {
			s.WriteString(selectedMenuItemStyle.Render(m.symbols.Cursor+" "+choice) + "\n")
		} else {
			s.WriteString(menuItemStyle.Render("  "+choice) + "\n")
		}
	}
	return s.String()
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	return "\n" + statusStyle.Render(m.status) + "\n"
}

// Render help text
func (m Model) renderHelp() string {
	return helpStyle.Render("↑/↓: navigate • enter: select • d: dismiss newest • x: dismiss all • drag: swipe • q: quit")
}

// frame centers content in a bordered box filling the terminal.
func (m Model) frame(content string) string {
	box := borderStyle.Width(max(m.width-8, 20)).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func pluralToasts(n int) string {
	if n == 1 {
		return "toast"
	}
	return "toasts"
}

// renderInfoToast is the per-type renderer registered for the custom info tag.
func renderInfoToast(t *toast.Toast) string {
	return infoToastStyle.Render(CurrentSymbols.Info + "  " + t.Message())
}

// renderCardToast is the whole-toast renderer: a bordered card showing the
// push sequence carried in the toast data.
func renderCardToast(t *toast.Toast) string {
	head := lipgloss.NewStyle().Foreground(accentColor).Bold(true).Render(CurrentSymbols.Sparkle + " " + AppName)
	if n, ok := t.Data().(int); ok {
		head += lipgloss.NewStyle().Foreground(dimColor).Render(fmt.Sprintf("  #%d", n))
	}
	return cardToastStyle.Render(head + "\n" + t.Message())
}
